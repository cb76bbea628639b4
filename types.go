package propdoc

// Default locations, relative to the project root. The document patterns are
// globs so that versioned documentation dumps (e.g. USS_property_format_6.0.md)
// resolve without configuration changes; the lexically newest match wins.
const (
	DefaultUnityDoc   = "data/USS_property_format_*.md"
	DefaultMozillaDoc = "data/Mozilla_CSS_properties_*.md"
	DefaultTargetFile = "internal/uss/property_data.gen.go"
)

// Config holds harvest configuration
type Config struct {
	Root       string // Project root override; empty = walk up from the working directory
	UnityDoc   string // Glob for the Unity USS documentation, relative to root
	MozillaDoc string // Glob for the Mozilla CSS documentation, relative to root
	TargetFile string // Generated property-data file to patch, relative to root
	DryRun     bool   // Extract and merge but skip the final write
	Verbose    bool   // Enable debug logging
}

// Result contains harvest stats
type Result struct {
	Root           string // Resolved project root
	UnityDocPath   string // Resolved Unity document path
	MozillaDocPath string // Resolved Mozilla document path
	TargetPath     string // Resolved target file path

	FormatsFound    int // Grammar strings extracted from the Unity doc
	UnityExamples   int // Properties with Unity usage examples
	MozillaExamples int // Properties with Mozilla usage examples
	RecordsUpdated  int // Target records whose fields were rewritten
	FieldsInserted  int // Optional fields added to records that lacked them

	Warnings []string // Non-fatal problems (typically unmatched property names)
	DryRun   bool     // True when the target file was not written
}

// OutputFormat represents the summary output format
type OutputFormat string

const (
	// OutputSummary shows styled counts and warnings (interactive default)
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports the harvest result in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format based on flags
func DetermineOutputFormat(formatFlag string) OutputFormat {
	if formatFlag == string(OutputJSON) {
		return OutputJSON
	}
	return OutputSummary
}
