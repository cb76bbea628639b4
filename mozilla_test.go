package propdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMozillaExamplesTryIt(t *testing.T) {
	content := "Width\n" +
		"=====\n" +
		"\n" +
		"[Try it]\n" +
		"\n" +
		"width: 100%;\n" +
		"width: 20em;\n" +
		"height: 50%;\n" +
		"\n" +
		"[Specifications]\n" +
		"\n" +
		"width: 999px;\n"

	got := ExtractMozillaExamples(content)
	require.Contains(t, got, "width")
	// Only declarations for the heading's own property, and nothing after
	// the section closes.
	assert.Equal(t, "width: 100%;\nwidth: 20em;", got["width"])
}

func TestExtractMozillaExamplesCSSBlock(t *testing.T) {
	content := "Margin\n" +
		"======\n" +
		"\n" +
		"[Examples]\n" +
		"\n" +
		"css\n" +
		"\n" +
		"    .box {\n" +
		"      margin: 1em auto;\n" +
		"    }\n" +
		"\n" +
		"The example above centers the box.\n" +
		"\n" +
		"    margin: 99px;\n"

	got := ExtractMozillaExamples(content)
	// The selector body is collected, the declaration after the block ends
	// is not.
	assert.Equal(t, map[string]string{"margin": "margin: 1em auto;"}, got)
}

func TestExtractMozillaExamplesCSSBlockSkipsCommentsAndGrammar(t *testing.T) {
	content := "Padding\n" +
		"=======\n" +
		"\n" +
		"css\n" +
		"\n" +
		"    /* padding: not a real example */\n" +
		"    <padding-value>\n" +
		"    padding: 1em 2em;\n"

	got := ExtractMozillaExamples(content)
	assert.Equal(t, "padding: 1em 2em;", got["padding"])
}

func TestExtractMozillaExamplesHeadingResetsSections(t *testing.T) {
	content := "Width\n" +
		"=====\n" +
		"\n" +
		"[Try it]\n" +
		"\n" +
		"width: 100%;\n" +
		"\n" +
		"Height\n" +
		"======\n" +
		"\n" +
		"height: 10vh;\n"

	got := ExtractMozillaExamples(content)
	assert.Equal(t, "width: 100%;", got["width"])
	// The Try it section does not leak past the Height heading.
	assert.NotContains(t, got, "height")
}

func TestExtractMozillaExamplesCaseInsensitiveHeading(t *testing.T) {
	content := "OPACITY\n" +
		"=======\n" +
		"\n" +
		"[Try it]\n" +
		"\n" +
		"Opacity: 0.5;\n"

	got := ExtractMozillaExamples(content)
	assert.Equal(t, "opacity: 0.5;", got["opacity"])
}

func TestExtractMozillaExamplesFlushesAtEOF(t *testing.T) {
	content := "Color\n" +
		"=====\n" +
		"\n" +
		"css\n" +
		"\n" +
		"    color: rebeccapurple;"

	got := ExtractMozillaExamples(content)
	assert.Equal(t, "color: rebeccapurple;", got["color"])
}

func TestExtractMozillaExamplesNoHeadingNoOutput(t *testing.T) {
	content := "[Try it]\n\nwidth: 100%;\n"
	got := ExtractMozillaExamples(content)
	assert.Empty(t, got)
}
