package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/domkit"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "domkit",
	Short: "A DOM utility toolbox for HTML documents on disk",
	Long: `domkit resolves selectors against parsed HTML documents and applies
mutations to them: content updates, attributes, classes, structural edits
and declarative patch manifests. Documents are rewritten in place.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// expandGlobs resolves doublestar patterns against the filesystem. A
// plain path with no glob match is passed through when it exists.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(p); statErr == nil {
				files = append(files, p)
				continue
			}
			return nil, fmt.Errorf("no files match %q", p)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// saveDocument renders the document back to its file.
func saveDocument(d *domkit.DOM, path string) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
