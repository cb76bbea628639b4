package propdoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"
)

// Field names recognized in target records. Every other field of a record is
// outside this tool's concern and must never be touched.
const (
	fieldName            = "Name"
	fieldDescription     = "Description"
	fieldFormat          = "Format"
	fieldExamplesUnity   = "ExamplesUnity"
	fieldExamplesMozilla = "ExamplesMozilla"
)

// patchedFields are rewritten for every property in the merge set, in this
// order when they have to be inserted.
var patchedFields = []string{fieldFormat, fieldExamplesUnity, fieldExamplesMozilla}

// MergeStats contains merge pass counters
type MergeStats struct {
	RecordsUpdated int
	FieldsInserted int
	Warnings       []string
}

// span is a half-open byte range into the source file.
type span struct {
	start, end int
}

// targetRecord is one property entry located in the target file: the byte
// spans of its field value expressions, keyed by field name.
type targetRecord struct {
	name   string
	fields map[string]span
}

// edit replaces src[start:end) with text; start == end inserts.
type edit struct {
	span
	text string
}

// MergeRecords locates the record for each extracted property name in the
// target file text and rewrites its Format, ExamplesUnity and ExamplesMozilla
// fields in place. Present values are embedded as escaped string literals via
// the strptr helper; absent values are written as an explicit nil so that
// consumers can tell "no example" from "empty example". All other bytes of
// the file are preserved exactly, and names without a matching record produce
// a warning instead of an error.
func MergeRecords(src []byte, formats, unity, mozilla map[string]string) ([]byte, *MergeStats, error) {
	records, err := parseTargetRecords(src)
	if err != nil {
		return nil, nil, fmt.Errorf("parse target file: %w", err)
	}

	byName := make(map[string]*targetRecord, len(records))
	for i := range records {
		byName[records[i].name] = &records[i]
	}

	stats := &MergeStats{}
	var edits []edit

	for _, name := range mergedNames(formats, unity, mozilla) {
		rec, ok := byName[name]
		if !ok {
			stats.Warnings = append(stats.Warnings,
				fmt.Sprintf("no target record for property %q", name))
			continue
		}

		values := map[string]string{
			fieldFormat:          formats[name],
			fieldExamplesUnity:   unity[name],
			fieldExamplesMozilla: mozilla[name],
		}
		present := map[string]bool{
			fieldFormat:          hasKey(formats, name),
			fieldExamplesUnity:   hasKey(unity, name),
			fieldExamplesMozilla: hasKey(mozilla, name),
		}

		for _, field := range patchedFields {
			rendered := renderOptString(values[field], present[field])

			if sp, exists := rec.fields[field]; exists {
				if string(src[sp.start:sp.end]) != rendered {
					edits = append(edits, edit{span: sp, text: rendered})
				}
				continue
			}

			// The record predates this field: insert it after the
			// description (after the name when there is no description),
			// copying the anchor line's indentation.
			anchor, ok := rec.fields[fieldDescription]
			if !ok {
				anchor = rec.fields[fieldName]
			}
			at, indent, ok := insertionPoint(src, anchor)
			if !ok {
				stats.Warnings = append(stats.Warnings,
					fmt.Sprintf("record %q: cannot insert %s into a single-line literal", name, field))
				continue
			}
			edits = append(edits, edit{
				span: span{start: at, end: at},
				text: "\n" + indent + field + ": " + rendered + ",",
			})
			stats.FieldsInserted++
		}

		stats.RecordsUpdated++
	}

	return applyEdits(src, edits), stats, nil
}

// parseTargetRecords parses the target file and collects every composite
// literal carrying a Name string field. Matching by syntax rather than by
// text keeps field lookup robust against reordering and whitespace drift.
func parseTargetRecords(src []byte) ([]targetRecord, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "target.go", src, 0)
	if err != nil {
		return nil, err
	}

	offset := func(p token.Pos) int {
		return fset.Position(p).Offset
	}

	var records []targetRecord
	ast.Inspect(file, func(n ast.Node) bool {
		lit, ok := n.(*ast.CompositeLit)
		if !ok {
			return true
		}

		fields := make(map[string]span)
		var name string
		for _, elt := range lit.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}
			fields[key.Name] = span{offset(kv.Value.Pos()), offset(kv.Value.End())}

			if key.Name == fieldName {
				if lit, ok := kv.Value.(*ast.BasicLit); ok && lit.Kind == token.STRING {
					if unquoted, err := strconv.Unquote(lit.Value); err == nil {
						name = unquoted
					}
				}
			}
		}

		if name != "" {
			records = append(records, targetRecord{name: name, fields: fields})
		}
		return true
	})

	return records, nil
}

// mergedNames returns the union of property names across the three mappings,
// sorted for deterministic processing and warning order.
func mergedNames(formats, unity, mozilla map[string]string) []string {
	seen := make(map[string]bool)
	for _, m := range []map[string]string{formats, unity, mozilla} {
		for name := range m {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hasKey(m map[string]string, name string) bool {
	_, ok := m[name]
	return ok
}

// renderOptString renders an optional-string field value for embedding in
// the target file. strconv.Quote escapes backslashes, double quotes and
// newlines so the round trip back through strconv.Unquote is exact.
func renderOptString(value string, present bool) string {
	if !present {
		return "nil"
	}
	return "strptr(" + strconv.Quote(value) + ")"
}

// decodeOptString is the inverse of renderOptString.
func decodeOptString(expr string) (string, bool, error) {
	if expr == "nil" {
		return "", false, nil
	}
	inner, found := strings.CutPrefix(expr, "strptr(")
	if !found || !strings.HasSuffix(inner, ")") {
		return "", false, fmt.Errorf("not an optional string expression: %s", expr)
	}
	value, err := strconv.Unquote(strings.TrimSuffix(inner, ")"))
	if err != nil {
		return "", false, fmt.Errorf("unquote %s: %w", expr, err)
	}
	return value, true, nil
}

// insertionPoint finds where to splice a new field after the anchor field:
// just before the newline ending the anchor's line. The returned indent is
// the anchor line's leading whitespace. Splicing requires one-field-per-line
// records, so a closing brace on the anchor line reports failure.
func insertionPoint(src []byte, anchor span) (int, string, bool) {
	at := anchor.end
	for at < len(src) && src[at] != '\n' {
		if src[at] == '}' {
			return 0, "", false
		}
		at++
	}

	lineStart := anchor.start
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}
	indentEnd := lineStart
	for indentEnd < len(src) && (src[indentEnd] == ' ' || src[indentEnd] == '\t') {
		indentEnd++
	}

	return at, string(src[lineStart:indentEnd]), true
}

// applyEdits applies edits back to front so earlier offsets stay valid.
// Insertions at the same offset keep their generation order.
func applyEdits(src []byte, edits []edit) []byte {
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].start < edits[j].start
	})

	out := append([]byte(nil), src...)
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
	}
	return out
}
