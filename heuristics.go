package propdoc

import (
	"regexp"
	"strings"
	"unicode"
)

// literalSpecMaxLen is the length below which a terminated value is assumed
// to be a concrete CSS value rather than a grammar description.
const literalSpecMaxLen = 20

// namedColors lists color keywords that mark a value as a literal example
// rather than a grammar string.
var namedColors = map[string]bool{
	"red":     true,
	"blue":    true,
	"green":   true,
	"yellow":  true,
	"orange":  true,
	"purple":  true,
	"black":   true,
	"white":   true,
	"gray":    true,
	"grey":    true,
	"cyan":    true,
	"magenta": true,
	"pink":    true,
	"brown":   true,
}

var (
	// unitValueRe matches a number carrying a CSS unit suffix (12px, 0.5s, 100%).
	unitValueRe = regexp.MustCompile(`\d+(\.\d+)?(px|em|rem|pt|deg|ms|s|%)`)
	// shortDecimalRe matches bare short decimal literals like 0.5.
	shortDecimalRe = regexp.MustCompile(`\b\d\.\d+\b`)
)

// looksLikeLiteralValue reports whether spec reads like a concrete CSS value
// (`10px;`, `red;`, `initial;`) instead of a value grammar. Grammar strings
// are long, unterminated, or carry placeholder metacharacters; literal values
// end with a statement terminator and contain short literal-looking tokens.
func looksLikeLiteralValue(spec string) bool {
	if !strings.HasSuffix(spec, ";") {
		return false
	}
	if spec == "initial;" {
		return true
	}
	if len(spec) < literalSpecMaxLen {
		return true
	}
	if unitValueRe.MatchString(spec) {
		return true
	}
	if shortDecimalRe.MatchString(spec) {
		return true
	}
	return containsNamedColor(spec)
}

// containsNamedColor checks spec word-by-word against the color table.
func containsNamedColor(spec string) bool {
	words := strings.FieldsFunc(spec, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if namedColors[strings.ToLower(w)] {
			return true
		}
	}
	return false
}

// isPropertyName rejects names with selector or directive characters:
// class selectors (`.`), id selectors (`#`), descendant combinators (space)
// and at-rules (`@`).
func isPropertyName(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, ".# ") {
		return false
	}
	return !strings.HasPrefix(name, "@")
}
