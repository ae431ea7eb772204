package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/domkit"
	domlifecycle "github.com/aretw0/domkit/pkg/adapters/lifecycle"
)

var renderWatch bool

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Parse and re-render a document",
	Long: `Parse an HTML file and print the normalized serialization. With
--watch the document is re-parsed and re-rendered every time the backing
file changes, until interrupted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]
		d, err := domkit.Open(file, domkit.WithLogger(slog.Default()))
		if err != nil {
			fatal(fmt.Sprintf("Error opening %s", file), err)
		}

		if err := d.Render(os.Stdout); err != nil {
			fatal("Error rendering document", err)
		}
		fmt.Println()

		if !renderWatch {
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		events, err := d.Watch(ctx)
		if err != nil {
			fatal("Error watching document", err)
		}

		// Bridge to the lifecycle event interface so the watch loop is
		// supervised like any other source.
		source := domlifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting watch source", err)
		}

		for e := range source.Events() {
			slog.Debug("document changed", "event", e.String())
			if err := d.Render(os.Stdout); err != nil {
				fatal("Error rendering document", err)
			}
			fmt.Println()
		}
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "Re-render on changes to the backing file")
	rootCmd.AddCommand(renderCmd)
}
