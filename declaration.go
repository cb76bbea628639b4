package propdoc

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parseDeclarationLine extracts the first `name: value;` declaration from a
// line using the CSS lexer, so that values containing colons, strings or
// functions tokenize correctly. Surrounding markup (selectors, braces) is
// skipped; the declaration must be terminated by a semicolon.
func parseDeclarationLine(line string) (name, value string, ok bool) {
	lexer := css.NewLexer(parse.NewInputString(line))

	const (
		wantName = iota
		wantColon
		wantValue
	)

	state := wantName
	var val strings.Builder

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// EOF without a terminated declaration
			return "", "", false
		}

		switch state {
		case wantName:
			if tt == css.IdentToken {
				name = string(data)
				state = wantColon
			}
		case wantColon:
			switch tt {
			case css.ColonToken:
				state = wantValue
			case css.WhitespaceToken:
				// between name and colon
			case css.IdentToken:
				// consecutive idents: keep the most recent candidate
				name = string(data)
			default:
				name = ""
				state = wantName
			}
		case wantValue:
			if tt == css.SemicolonToken {
				v := strings.TrimSpace(val.String())
				if name != "" && v != "" {
					return name, v, true
				}
				name = ""
				val.Reset()
				state = wantName
				continue
			}
			val.WriteString(string(data))
		}
	}
}
