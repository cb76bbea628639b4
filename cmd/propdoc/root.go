package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "propdoc",
	Short: "Harvest style-property documentation into generated data files",
	Long: `Extract value grammars and usage examples for style properties from the
Unity USS and Mozilla CSS documentation corpora, and patch them into the
generated property-data file of the enclosing project.`,
	// Default behavior: run harvest when no subcommand is given.
	// We must call loadConfig here because PreRunE of harvestCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runHarvest(harvestCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".propdoc.yaml", "Config file path")

	rootCmd.AddCommand(harvestCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
