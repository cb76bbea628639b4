package propdoc

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Root      string        `json:"root"`
	Documents JSONDocuments `json:"documents"`
	Counts    JSONCounts    `json:"counts"`
	Warnings  []string      `json:"warnings"`
	DryRun    bool          `json:"dry_run"`
}

// JSONDocuments lists the resolved input and output paths
type JSONDocuments struct {
	Unity   string `json:"unity"`
	Mozilla string `json:"mozilla"`
	Target  string `json:"target"`
}

// JSONCounts contains extraction and merge statistics
type JSONCounts struct {
	Formats         int `json:"formats"`
	UnityExamples   int `json:"unity_examples"`
	MozillaExamples int `json:"mozilla_examples"`
	RecordsUpdated  int `json:"records_updated"`
	FieldsInserted  int `json:"fields_inserted"`
}

// WriteJSON writes the harvest result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Root:      result.Root,
		Documents: JSONDocuments{
			Unity:   result.UnityDocPath,
			Mozilla: result.MozillaDocPath,
			Target:  result.TargetPath,
		},
		Counts: JSONCounts{
			Formats:         result.FormatsFound,
			UnityExamples:   result.UnityExamples,
			MozillaExamples: result.MozillaExamples,
			RecordsUpdated:  result.RecordsUpdated,
			FieldsInserted:  result.FieldsInserted,
		},
		Warnings: warnings,
		DryRun:   result.DryRun,
	}
}
