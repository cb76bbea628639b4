package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/propdoc"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Extract documentation and patch the property-data file",
	Long: `Run the full pipeline: locate the project root by walking upward until a
go.mod manifest is found, read the Unity and Mozilla documentation, extract
value grammars and usage examples, and rewrite the Format, ExamplesUnity and
ExamplesMozilla fields of matching records in the target file.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runHarvest,
}

func init() {
	f := harvestCmd.Flags()
	f.String("root", "", "Project root (default: walk up from the working directory)")
	// String defaults stay empty so unset flags do not shadow config-file
	// values; the real defaults are applied in buildHarvestConfig.
	f.String("unity-doc", "", "Glob for the Unity USS documentation, relative to root (default "+propdoc.DefaultUnityDoc+")")
	f.String("mozilla-doc", "", "Glob for the Mozilla CSS documentation, relative to root (default "+propdoc.DefaultMozillaDoc+")")
	f.String("target", "", "Generated property-data file to patch, relative to root (default "+propdoc.DefaultTargetFile+")")
	f.Bool("dry-run", false, "Extract and merge but do not write the target file")
	f.String("output-format", "", "Output format: summary|json")
}

func runHarvest(_ *cobra.Command, _ []string) error {
	config := buildHarvestConfig()

	result, err := propdoc.Harvest(config)
	if err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if quiet {
		return nil
	}

	outputFormat := getStringWithFallback("output-format", "harvest.output-format", "")
	if propdoc.DetermineOutputFormat(outputFormat) == propdoc.OutputJSON {
		return propdoc.WriteJSON(os.Stdout, result)
	}

	useColors := propdoc.ShouldUseColors(getBoolWithFallback("color", "color", false))
	reporter := propdoc.NewReporter(os.Stdout, useColors)
	reporter.PrintSummary(*result)
	reporter.PrintWarnings(*result)

	return nil
}
