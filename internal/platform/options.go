package platform

import (
	"log/slog"

	"github.com/aretw0/domkit/pkg/core"
)

// options holds the internal configuration for the domkit facade.
type options struct {
	tree         core.Tree
	logger       *slog.Logger
	hiddenClass  string
	disabledAttr string
	scope        string
}

// Option defines a functional option for configuring domkit.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		hiddenClass:  core.DefaultHiddenClass,
		disabledAttr: core.DefaultDisabledAttr,
	}
}

// WithLogger sets the logger receiving not-found diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHiddenClass overrides the marker class used by Show/Hide/Toggle.
// Defaults to "hidden".
func WithHiddenClass(class string) Option {
	return func(o *options) {
		o.hiddenClass = class
	}
}

// WithDisabledAttr overrides the marker attribute used by Disable/Enable.
// Defaults to "disabled".
func WithDisabledAttr(name string) Option {
	return func(o *options) {
		o.disabledAttr = name
	}
}

// WithTree injects a custom tree adapter. If provided, the default
// net/html adapter is skipped.
func WithTree(tree core.Tree) Option {
	return func(o *options) {
		o.tree = tree
	}
}

// WithScope restricts default selector resolution to the first node
// matching the given selector instead of the document root.
func WithScope(selector string) Option {
	return func(o *options) {
		o.scope = selector
	}
}
