package propdoc

import (
	"regexp"
	"strings"
)

var backtickNameRe = regexp.MustCompile("`([^`]+)`")

// examplesMarkers are the accepted forms of the marker line that opens an
// example accumulation region under the current heading, compared
// case-insensitively against the trimmed line.
var examplesMarkers = map[string]bool{
	"examples":     true,
	"**examples**": true,
	"uss examples": true,
	"c# examples":  true,
}

func isExamplesMarker(line string) bool {
	return examplesMarkers[strings.ToLower(strings.TrimSpace(line))]
}

// ExtractUnityExamples scans Unity USS documentation for usage examples.
//
// Pass one follows headings: a `##`/`###` heading with a backticked token
// names the current property, a marker line ("Examples" and friends) opens
// accumulation, and indented declaration lines collect until the first
// unindented non-blank line or the next heading. Lines that repeat the
// property name are normalized to `property: value` spacing.
//
// Pass two sweeps the whole document for `name: value;` usage lines of
// properties that pass one never captured, because not every property in the
// corpus has its own heading-scoped example section.
func ExtractUnityExamples(content string) map[string]string {
	lines := strings.Split(content, "\n")
	examples := make(map[string]string)

	var current string
	var buf []string
	inExamples := false

	flush := func() {
		if current != "" && len(buf) > 0 {
			examples[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = nil
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "##"):
			flush()
			heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if m := backtickNameRe.FindStringSubmatch(heading); m != nil {
				current = m[1]
			} else {
				// Headings without a backticked name do not start an
				// example region.
				current = ""
			}
			inExamples = false

		case isExamplesMarker(line):
			inExamples = true
			buf = nil

		case inExamples && current != "":
			if strings.HasPrefix(line, indentPrefix) && strings.TrimSpace(line) != "" {
				code := strings.TrimSpace(line[len(indentPrefix):])
				if !strings.Contains(code, ":") || strings.HasPrefix(code, "//") {
					continue
				}
				if strings.HasPrefix(code, current+":") {
					// Normalize whitespace around the separator.
					value := strings.TrimSpace(code[len(current)+1:])
					buf = append(buf, current+": "+value)
				} else {
					buf = append(buf, code)
				}
			} else if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, " ") {
				// Unindented non-blank content ends the example region.
				flush()
				inExamples = false
			}
		}
	}
	flush()

	sweepInlineExamples(lines, examples)
	return examples
}

// sweepInlineExamples collects `name: value;` usage lines for properties not
// captured via headings. For each newly seen name it gathers every matching
// line in the document, deduplicated in first-seen order. Grammar lines
// (placeholder or alternation metacharacters) and comments are excluded.
func sweepInlineExamples(lines []string, examples map[string]string) {
	for _, line := range lines {
		if !strings.HasPrefix(line, indentPrefix) {
			continue
		}
		code := strings.TrimSpace(line)
		if !strings.HasSuffix(code, ";") {
			continue
		}
		if strings.HasPrefix(code, "/*") || strings.HasPrefix(code, "//") {
			continue
		}
		if strings.ContainsAny(code, "|<>") {
			continue
		}

		name, _, ok := parseDeclarationLine(code)
		if !ok {
			continue
		}
		if _, captured := examples[name]; captured {
			continue
		}

		var collected []string
		seen := make(map[string]bool)
		for _, cand := range lines {
			if !strings.HasPrefix(cand, indentPrefix) {
				continue
			}
			c := strings.TrimSpace(cand)
			if !strings.Contains(c, name+":") || !strings.HasSuffix(c, ";") {
				continue
			}
			if strings.ContainsAny(c, "|<>") ||
				strings.HasPrefix(c, "/*") || strings.HasPrefix(c, "//") {
				continue
			}
			if seen[c] {
				continue
			}
			seen[c] = true
			collected = append(collected, c)
		}

		if len(collected) > 0 {
			examples[name] = strings.Join(collected, "\n")
		}
	}
}
