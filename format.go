package propdoc

import "strings"

// ExtractFormats scans Unity USS documentation for value-grammar strings.
// Grammar lines live in fixed-indent code blocks as `property: grammar`
// pairs; selector-style CSS examples and literal value samples are skipped.
// The last occurrence of a property name wins.
func ExtractFormats(content string) map[string]string {
	formats := make(map[string]string)
	sc := newDocScanner()

	for _, line := range strings.Split(content, "\n") {
		ln := sc.next(line)
		if ln.fence || ln.excluded || !ln.indented {
			continue
		}

		code := strings.TrimSpace(ln.code)
		if strings.HasPrefix(code, "/*") || strings.HasPrefix(code, "*/") {
			continue
		}

		colon := strings.Index(code, ":")
		if colon < 0 {
			continue
		}
		name := strings.TrimSpace(code[:colon])
		spec := strings.TrimSpace(code[colon+1:])

		if !isPropertyName(name) || spec == "" {
			continue
		}
		if looksLikeLiteralValue(spec) {
			continue
		}
		// A grammar description carries a placeholder or alternation
		// delimiter; anything else is an ordinary CSS value line.
		if !strings.ContainsAny(spec, "<|") {
			continue
		}

		formats[name] = spec
	}

	return formats
}
