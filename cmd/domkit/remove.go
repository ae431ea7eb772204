package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/domkit"
)

var removeAll bool

var removeCmd = &cobra.Command{
	Use:   "remove [selector] [file...]",
	Short: "Detach matching nodes",
	Long: `Detach the first node matching the selector (or every match with
--all) and rewrite the file in place.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		selector := args[0]
		files, err := expandGlobs(args[1:])
		if err != nil {
			fatal("Error expanding patterns", err)
		}

		for _, file := range files {
			d, err := domkit.Open(file, domkit.WithLogger(slog.Default()))
			if err != nil {
				fatal(fmt.Sprintf("Error opening %s", file), err)
			}

			if removeAll {
				nodes, err := d.GetAll(domkit.Sel(selector))
				if err != nil {
					fatal(fmt.Sprintf("Error resolving %q", selector), err)
				}
				for _, n := range nodes {
					if err := d.Remove(domkit.Ref(n)); err != nil {
						fatal(fmt.Sprintf("Error removing from %s", file), err)
					}
				}
			} else if err := d.Remove(domkit.Sel(selector)); err != nil {
				fatal(fmt.Sprintf("Error removing from %s", file), err)
			}

			if err := saveDocument(d, file); err != nil {
				fatal(fmt.Sprintf("Error writing %s", file), err)
			}
		}
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "Remove every match instead of the first")
	rootCmd.AddCommand(removeCmd)
}
