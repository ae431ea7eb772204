// Package patch applies declarative YAML manifests of tree mutations
// through the DOM facade. A manifest is an ordered list of operations;
// application is fail-fast and reports the index of the offending op.
package patch

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is an ordered list of mutations.
type Manifest struct {
	Ops []Op `yaml:"ops"`
}

// Op is a single mutation. Do selects the operation; the remaining fields
// are operation-specific and ignored elsewhere.
type Op struct {
	Do     string `yaml:"do"`
	Target string `yaml:"target,omitempty"`

	// update
	Content string   `yaml:"content,omitempty"`
	As      string   `yaml:"as,omitempty"` // html (default) or text
	Options []string `yaml:"options,omitempty"`

	// set-attr / remove-attr
	Name  string `yaml:"name,omitempty"`
	Value string `yaml:"value,omitempty"`

	// add-class / remove-class / toggle
	Class string `yaml:"class,omitempty"`
	Force *bool  `yaml:"force,omitempty"`

	// style
	Styles map[string]string `yaml:"styles,omitempty"`

	// append / create
	Markup   string            `yaml:"markup,omitempty"`
	Position string            `yaml:"position,omitempty"`
	Tag      string            `yaml:"tag,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Parent   string            `yaml:"parent,omitempty"`

	// load
	Src string `yaml:"src,omitempty"`
	ID  string `yaml:"id,omitempty"`
}

// Load reads a manifest from r.
func Load(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

// LoadFile reads a manifest from a file on disk.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}
