package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of halo-core",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("halo-core version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
