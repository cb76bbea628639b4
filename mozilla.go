package propdoc

import "strings"

// ExtractMozillaExamples scans Mozilla CSS documentation for usage examples.
//
// Headings are structural: a line immediately followed by a line of `=`
// characters names the current property (lower-cased) and resets all section
// state. Bracket tags open the Try it / Syntax / Examples sections; a bare
// `css` line opens a css block. Inside Try it, terminated declarations whose
// name equals the current property are kept in normalized form; inside a css
// block, indented lines mentioning the current property are kept verbatim.
// Buffers flush when a new heading begins and at end of document.
func ExtractMozillaExamples(content string) map[string]string {
	lines := strings.Split(content, "\n")
	examples := make(map[string]string)
	sc := newDocScanner()

	var current string
	var buf []string

	flush := func() {
		if current != "" && len(buf) > 0 {
			examples[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = nil
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Underline-style heading: this line is a property name when the
		// next line is a run of '=' characters.
		if trimmed != "" && i+1 < len(lines) &&
			strings.HasPrefix(strings.TrimSpace(lines[i+1]), "===") {
			flush()
			current = strings.ToLower(trimmed)
			sc.resetSections()
			continue
		}

		ln := sc.next(line)
		if ln.marker || ln.fence {
			continue
		}
		if current == "" {
			continue
		}

		switch ln.section {
		case sectionTryIt:
			if strings.Contains(line, ":") && strings.Contains(line, ";") {
				if name, value, ok := parseDeclarationLine(line); ok {
					if strings.ToLower(name) == current {
						buf = append(buf, strings.ToLower(name)+": "+value+";")
					}
				}
			}
		case sectionCSSBlock:
			// Selector-example exclusion does not apply here: css blocks
			// wrap declarations in selector bodies and those lines are
			// wanted verbatim.
			if strings.HasPrefix(line, indentPrefix) && trimmed != "" {
				code := strings.TrimSpace(line[len(indentPrefix):])
				if strings.Contains(code, current) && strings.Contains(code, ":") &&
					!strings.HasPrefix(code, "/*") && !strings.HasPrefix(code, "<") {
					buf = append(buf, code)
				}
			}
		}
	}
	flush()

	return examples
}
