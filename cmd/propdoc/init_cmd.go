package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .propdoc.yaml config file",
	Long:  `Create a .propdoc.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".propdoc.yaml"); err == nil && !force {
			return fmt.Errorf(".propdoc.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".propdoc.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .propdoc.yaml")
		return nil
	},
}

const defaultConfig = `# propdoc configuration
# Docs: https://github.com/yacobolo/propdoc

# Shared settings
verbose: false

# Harvest settings
harvest:
  # root: ""              # default: walk up from the working directory to go.mod
  unity-doc: "data/USS_property_format_*.md"
  mozilla-doc: "data/Mozilla_CSS_properties_*.md"
  target: internal/uss/property_data.gen.go
  dry-run: false
  output-format: summary   # summary | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
