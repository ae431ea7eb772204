package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/domkit"
)

var (
	queryXPath bool
	queryText  bool
	queryFirst bool
)

var queryCmd = &cobra.Command{
	Use:   "query [selector] [file...]",
	Short: "Print nodes matching a selector",
	Long: `Resolve a CSS selector (or an XPath expression with --xpath) against one
or more HTML files and print the matching nodes. File arguments accept
doublestar glob patterns (e.g. 'site/**/*.html').`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		selector := args[0]
		files, err := expandGlobs(args[1:])
		if err != nil {
			fatal("Error expanding patterns", err)
		}

		found := 0
		for _, file := range files {
			d, err := domkit.Open(file, domkit.WithLogger(slog.Default()))
			if err != nil {
				fatal(fmt.Sprintf("Error opening %s", file), err)
			}

			nodes, err := resolveNodes(d, selector)
			if err != nil {
				fatal(fmt.Sprintf("Error resolving %q in %s", selector, file), err)
			}

			for _, n := range nodes {
				found++
				if queryText {
					fmt.Println(strings.TrimSpace(d.Tree().Text(n)))
					continue
				}
				if err := d.Tree().RenderNode(os.Stdout, n); err != nil {
					fatal("Error rendering node", err)
				}
				fmt.Println()
			}
		}

		if found == 0 {
			fmt.Fprintf(os.Stderr, "no nodes match %q\n", selector)
			os.Exit(1)
		}
	},
}

func resolveNodes(d *domkit.DOM, selector string) ([]domkit.Node, error) {
	if queryXPath {
		nodes, err := d.XPath(selector)
		if err != nil {
			return nil, err
		}
		if queryFirst && len(nodes) > 1 {
			nodes = nodes[:1]
		}
		return nodes, nil
	}
	if queryFirst {
		n, err := d.Get(domkit.Sel(selector))
		if err != nil {
			if errors.Is(err, domkit.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return []domkit.Node{n}, nil
	}
	return d.GetAll(domkit.Sel(selector))
}

func init() {
	queryCmd.Flags().BoolVar(&queryXPath, "xpath", false, "Treat the selector as an XPath expression")
	queryCmd.Flags().BoolVar(&queryText, "text", false, "Print text content instead of markup")
	queryCmd.Flags().BoolVar(&queryFirst, "first", false, "Print only the first match per file")
	rootCmd.AddCommand(queryCmd)
}
