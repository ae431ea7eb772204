package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/domkit"
)

var setAll bool

var setCmd = &cobra.Command{
	Use:   "set [selector] [name] [value] [file...]",
	Short: "Set an attribute on matching nodes",
	Long: `Set an attribute on the first node matching the selector (or every
match with --all) and rewrite the file in place.`,
	Args: cobra.MinimumNArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		selector, name, value := args[0], args[1], args[2]
		files, err := expandGlobs(args[3:])
		if err != nil {
			fatal("Error expanding patterns", err)
		}

		for _, file := range files {
			d, err := domkit.Open(file, domkit.WithLogger(slog.Default()))
			if err != nil {
				fatal(fmt.Sprintf("Error opening %s", file), err)
			}

			if setAll {
				_, err = d.Each(domkit.Sel(selector), func(n domkit.Node, _ int) {
					_, _ = d.SetAttr(domkit.Ref(n), name, value)
				})
			} else {
				_, err = d.SetAttr(domkit.Sel(selector), name, value)
			}
			if err != nil {
				fatal(fmt.Sprintf("Error updating %s", file), err)
			}

			if err := saveDocument(d, file); err != nil {
				fatal(fmt.Sprintf("Error writing %s", file), err)
			}
		}
	},
}

func init() {
	setCmd.Flags().BoolVar(&setAll, "all", false, "Apply to every match instead of the first")
	rootCmd.AddCommand(setCmd)
}
