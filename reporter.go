package propdoc

import (
	"fmt"
	"io"
	"os"
)

// Reporter formats harvest results for the operator. The counts are
// diagnostic output, not a machine-readable contract; tooling should use the
// JSON output format instead.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled.
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintSummary outputs extraction and merge counts.
func (r *Reporter) PrintSummary(result Result) {
	header := "Harvest complete"
	if result.DryRun {
		header = "Harvest complete (dry run, target not written)"
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, header, r.useColors))

	fmt.Fprintf(r.w, "  Project root:      %s\n", result.Root)
	fmt.Fprintf(r.w, "  Unity doc:         %s\n", result.UnityDocPath)
	fmt.Fprintf(r.w, "  Mozilla doc:       %s\n", result.MozillaDocPath)
	fmt.Fprintf(r.w, "  Target file:       %s\n", result.TargetPath)
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "  Formats found:     %d\n", result.FormatsFound)
	fmt.Fprintf(r.w, "  Unity examples:    %d\n", result.UnityExamples)
	fmt.Fprintf(r.w, "  Mozilla examples:  %d\n", result.MozillaExamples)
	fmt.Fprintf(r.w, "  Records updated:   %d\n", result.RecordsUpdated)

	if result.FieldsInserted > 0 {
		fmt.Fprintf(r.w, "  Fields inserted:   %d\n", result.FieldsInserted)
	}
}

// PrintWarnings outputs non-fatal problems, typically extracted property
// names with no record in the target file.
func (r *Reporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "  - %s\n", warning)
	}
}
