// Package cmd implements the CLI commands for listing-valuator.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "listing-valuator",
	Short: "Value vehicle listings and recommend them to buyers",
	Long: "An API service that prices vehicles from comparable marketplace listings, " +
		"adjusts prices by seller history, and ranks listings for each user from their engagement.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
