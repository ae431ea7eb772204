package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/domkit"
	"github.com/aretw0/domkit/pkg/patch"
)

var applyDryRun bool

var applyCmd = &cobra.Command{
	Use:   "apply [manifest.yaml] [file...]",
	Short: "Apply a patch manifest to HTML files",
	Long: `Apply the ordered mutations of a YAML patch manifest to one or more
HTML files. Application is fail-fast: the first failing op aborts the
file, which is then left unwritten.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		manifest, err := patch.LoadFile(args[0])
		if err != nil {
			fatal("Error loading manifest", err)
		}

		files, err := expandGlobs(args[1:])
		if err != nil {
			fatal("Error expanding patterns", err)
		}

		for _, file := range files {
			d, err := domkit.Open(file, domkit.WithLogger(slog.Default()))
			if err != nil {
				fatal(fmt.Sprintf("Error opening %s", file), err)
			}

			applied, err := manifest.Apply(d)
			if err != nil {
				fatal(fmt.Sprintf("Error patching %s", file), err)
			}

			if applyDryRun {
				fmt.Printf("%s: %d ops (dry run, not written)\n", file, applied)
				continue
			}
			if err := saveDocument(d, file); err != nil {
				fatal(fmt.Sprintf("Error writing %s", file), err)
			}
			fmt.Printf("%s: %d ops applied\n", file, applied)
		}
	},
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Apply without rewriting files")
	rootCmd.AddCommand(applyCmd)
}
