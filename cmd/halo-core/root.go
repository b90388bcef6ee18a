package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "halo-core",
	Short: "Titan-X HALO behavioural telemetry service",
	Long: `halo-core runs the Titan-X Core behavioural engine: sessions accumulate
friction, hesitation and pace signals and answer rolling-summary queries
over a small HTTP API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "Path to the YAML config file")
}
