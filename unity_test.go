package propdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUnityExamplesHeadingScoped(t *testing.T) {
	content := "### `opacity`\n" +
		"\n" +
		"Examples\n" +
		"\n" +
		"    opacity: 0.5;\n" +
		"    opacity: 1;\n" +
		"\n" +
		"Prose continues here.\n"

	got := ExtractUnityExamples(content)
	require.Contains(t, got, "opacity")
	assert.Equal(t, "opacity: 0.5;\nopacity: 1;", got["opacity"])
}

func TestExtractUnityExamplesNormalizesSpacing(t *testing.T) {
	content := "## `flex-grow`\n" +
		"\n" +
		"USS Examples\n" +
		"\n" +
		"    flex-grow:0.5;\n"

	got := ExtractUnityExamples(content)
	assert.Equal(t, "flex-grow: 0.5;", got["flex-grow"])
}

func TestExtractUnityExamplesStopsAtNextHeading(t *testing.T) {
	content := "### `opacity`\n" +
		"\n" +
		"Examples\n" +
		"\n" +
		"    opacity: 0.5;\n" +
		"\n" +
		"### `rotate`\n" +
		"\n" +
		"Examples\n" +
		"\n" +
		"    rotate: 45deg;\n"

	got := ExtractUnityExamples(content)
	assert.Equal(t, "opacity: 0.5;", got["opacity"])
	assert.Equal(t, "rotate: 45deg;", got["rotate"])
}

func TestExtractUnityExamplesHeadingWithoutNameIsInert(t *testing.T) {
	content := "### Additional notes\n" +
		"\n" +
		"Examples\n" +
		"\n" +
		"    width: 100px;\n"

	got := ExtractUnityExamples(content)
	// No heading-scoped owner; the sweep still attributes the line to its
	// declared property name.
	assert.Equal(t, map[string]string{"width": "width: 100px;"}, got)
}

func TestExtractUnityExamplesSkipsCommentsAndProse(t *testing.T) {
	content := "### `translate`\n" +
		"\n" +
		"Examples\n" +
		"\n" +
		"    // moves the element right\n" +
		"    translate: 10px 0;\n" +
		"    some prose without a separator\n"

	got := ExtractUnityExamples(content)
	assert.Equal(t, "translate: 10px 0;", got["translate"])
}

func TestSweepInlineExamplesDedupesInOrder(t *testing.T) {
	content := "Some introduction.\n" +
		"\n" +
		"    margin: 0 auto;\n" +
		"    margin: 10px;\n" +
		"\n" +
		"Later in the document:\n" +
		"\n" +
		"    margin: 0 auto;\n"

	got := ExtractUnityExamples(content)
	assert.Equal(t, "margin: 0 auto;\nmargin: 10px;", got["margin"])
}

func TestSweepInlineExamplesSkipsGrammarLines(t *testing.T) {
	content := "    padding: <length> | <percentage>;\n" +
		"    padding: 4px;\n"

	got := ExtractUnityExamples(content)
	assert.Equal(t, "padding: 4px;", got["padding"])
}

func TestSweepInlineExamplesDoesNotOverrideHeadingCapture(t *testing.T) {
	content := "### `cursor`\n" +
		"\n" +
		"Examples\n" +
		"\n" +
		"    cursor: arrow;\n" +
		"\n" +
		"Unrelated later usage:\n" +
		"\n" +
		"    cursor: text;\n"

	got := ExtractUnityExamples(content)
	assert.Equal(t, "cursor: arrow;", got["cursor"])
}

func TestExtractUnityExamplesDeterministic(t *testing.T) {
	content := "### `opacity`\n\nExamples\n\n    opacity: 0.5;\n\n    margin: 4px;\n"
	first := ExtractUnityExamples(content)
	second := ExtractUnityExamples(content)
	assert.Equal(t, first, second)
}
