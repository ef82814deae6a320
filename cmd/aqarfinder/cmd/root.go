// Package cmd implements the CLI commands for the aqarfinder server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aqarfinder",
	Short: "Browse apartment listings aggregated from multiple providers",
	Long: "aqarfinder normalizes apartment listings from heterogeneous provider\n" +
		"feeds (CSV uploads, partner APIs, synthetic demo data) into one canonical\n" +
		"schema and serves filtered, deduplicated results over an HTTP API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
