package propdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mergeFixture = `package uss

var propertyData = []PropertyInfo{
	{
		Name:            "opacity",
		Description:     "Element opacity.",
		Format:          nil,
		ExamplesUnity:   nil,
		ExamplesMozilla: nil,
	},
	{
		Name:            "width",
		Description:     "Element width.",
		Format:          nil,
		ExamplesUnity:   nil,
		ExamplesMozilla: nil,
	},
	{
		Name:        "legacy-prop",
		Description: "Record predating the optional fields.",
	},
}
`

func TestMergeRecordsRewritesMatchedFields(t *testing.T) {
	formats := map[string]string{"width": "<length> | <percentage>;"}
	unity := map[string]string{"width": "width: 100px;\nwidth: 50%;"}

	out, stats, err := MergeRecords([]byte(mergeFixture), formats, unity, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.RecordsUpdated)
	assert.Empty(t, stats.Warnings)

	s := string(out)
	assert.Contains(t, s, `strptr("<length> | <percentage>;")`)
	assert.Contains(t, s, `strptr("width: 100px;\nwidth: 50%;")`)
	// Mozilla has nothing for width; the field stays an explicit nil.
	assert.Contains(t, s, "ExamplesMozilla: nil")
}

func TestMergeRecordsLeavesUnmentionedRecordsByteIdentical(t *testing.T) {
	out, _, err := MergeRecords([]byte(mergeFixture),
		map[string]string{"width": "<length> | <percentage>;"}, nil, nil)
	require.NoError(t, err)

	// The opacity record is not in the merge set; its text is untouched.
	opacityBlock := "{\n" +
		"\t\tName:            \"opacity\",\n" +
		"\t\tDescription:     \"Element opacity.\",\n" +
		"\t\tFormat:          nil,\n" +
		"\t\tExamplesUnity:   nil,\n" +
		"\t\tExamplesMozilla: nil,\n" +
		"\t},"
	assert.Contains(t, string(out), opacityBlock)
}

func TestMergeRecordsIdempotent(t *testing.T) {
	formats := map[string]string{"width": "<length> | <percentage>;"}
	mozilla := map[string]string{"opacity": "opacity: 0.5;"}

	once, _, err := MergeRecords([]byte(mergeFixture), formats, nil, mozilla)
	require.NoError(t, err)

	twice, _, err := MergeRecords(once, formats, nil, mozilla)
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

func TestMergeRecordsNoMappingsIsNoOp(t *testing.T) {
	out, stats, err := MergeRecords([]byte(mergeFixture), nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, mergeFixture, string(out))
	assert.Zero(t, stats.RecordsUpdated)
}

func TestMergeRecordsEscapingRoundTrip(t *testing.T) {
	example := "width: \"odd\\value\";\nwidth: 100%;\t/* tab */"
	out, _, err := MergeRecords([]byte(mergeFixture), nil,
		map[string]string{"width": example}, nil)
	require.NoError(t, err)

	records, err := parseTargetRecords(out)
	require.NoError(t, err)

	var got string
	for _, rec := range records {
		if rec.name != "width" {
			continue
		}
		sp, ok := rec.fields[fieldExamplesUnity]
		require.True(t, ok)
		value, present, err := decodeOptString(string(out[sp.start:sp.end]))
		require.NoError(t, err)
		require.True(t, present)
		got = value
	}
	assert.Equal(t, example, got)
}

func TestMergeRecordsWarnsOnUnmatchedName(t *testing.T) {
	out, stats, err := MergeRecords([]byte(mergeFixture),
		map[string]string{"no-such-prop": "<length>;"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, mergeFixture, string(out))
	require.Len(t, stats.Warnings, 1)
	assert.Contains(t, stats.Warnings[0], `"no-such-prop"`)
	assert.Zero(t, stats.RecordsUpdated)
}

func TestMergeRecordsInsertsMissingFields(t *testing.T) {
	unity := map[string]string{"legacy-prop": "legacy-prop: 1;"}
	out, stats, err := MergeRecords([]byte(mergeFixture), nil, unity, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FieldsInserted)
	want := "Description: \"Record predating the optional fields.\",\n" +
		"\t\tFormat: nil,\n" +
		"\t\tExamplesUnity: strptr(\"legacy-prop: 1;\"),\n" +
		"\t\tExamplesMozilla: nil,"
	assert.Contains(t, string(out), want)

	// The patched file still parses and the inserted fields are found.
	records, err := parseTargetRecords(out)
	require.NoError(t, err)
	for _, rec := range records {
		if rec.name == "legacy-prop" {
			assert.Contains(t, rec.fields, fieldFormat)
			assert.Contains(t, rec.fields, fieldExamplesMozilla)
		}
	}
}

func TestMergeRecordsRefusesSingleLineLiteral(t *testing.T) {
	src := "package uss\n\nvar propertyData = []PropertyInfo{\n" +
		"\t{Name: \"width\", Description: \"Element width.\"},\n" +
		"}\n"

	out, stats, err := MergeRecords([]byte(src),
		map[string]string{"width": "<length> | <percentage>;"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, src, string(out))
	require.NotEmpty(t, stats.Warnings)
	assert.Contains(t, stats.Warnings[0], "single-line literal")
}

func TestMergeRecordsParseError(t *testing.T) {
	_, _, err := MergeRecords([]byte("this is not go source"), nil, nil, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse target file"))
}

func TestMergedNamesSortedUnion(t *testing.T) {
	names := mergedNames(
		map[string]string{"width": ""},
		map[string]string{"margin": "", "width": ""},
		map[string]string{"opacity": ""},
	)
	assert.Equal(t, []string{"margin", "opacity", "width"}, names)
}

func TestDecodeOptString(t *testing.T) {
	value, present, err := decodeOptString(`strptr("a\nb")`)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "a\nb", value)

	_, present, err = decodeOptString("nil")
	require.NoError(t, err)
	assert.False(t, present)

	_, _, err = decodeOptString(`someOtherCall("x")`)
	require.Error(t, err)
}
