package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/domkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of domkit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("domkit version %s\n", domkit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
