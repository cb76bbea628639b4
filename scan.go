package propdoc

import "strings"

// indentPrefix is the fixed indentation both corpora use for code samples.
const indentPrefix = "    "

// blockState tracks where the scanner is relative to indented code blocks.
type blockState int

const (
	// blockNormal means the current line is ordinary prose or markup.
	blockNormal blockState = iota
	// blockIndented means the current line carries de-indented code content.
	blockIndented
	// blockExcluded means the scanner is inside a selector-style CSS example
	// (`.name { ... }`) whose lines must not be treated as property code.
	blockExcluded
)

// sectionKind tracks which bracket-tagged section (or bare css block) is open.
// Only the Mozilla corpus uses sections; the Unity extractors ignore them.
type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionTryIt
	sectionSyntax
	sectionExamples
	sectionCSSBlock
)

// scanLine is the classification of a single input line.
type scanLine struct {
	raw      string
	code     string      // de-indented content, set when indented is true
	indented bool        // line is a code line inside an indented block
	excluded bool        // line belongs to an excluded CSS example
	fence    bool        // line is a triple-backtick fence marker
	marker   bool        // line is a section tag or css-block opener, consumed by the scanner
	section  sectionKind // section open while this line was read
}

// docScanner is the line-oriented state machine shared by all extractors.
// Block state and section state are tracked independently: the Unity-style
// extractors consume indentation and exclusion, the Mozilla extractor
// consumes sections, and fence markers are skipped for both conventions.
type docScanner struct {
	block   blockState
	section sectionKind
}

func newDocScanner() *docScanner {
	return &docScanner{block: blockNormal, section: sectionNone}
}

// resetSections clears all section state, used when a new property heading
// begins.
func (s *docScanner) resetSections() {
	s.section = sectionNone
}

// next advances the state machine by one line and classifies it.
func (s *docScanner) next(line string) scanLine {
	trimmed := strings.TrimSpace(line)

	// Fence markers delimit a different code-block convention; they are
	// recognized and skipped without toggling any state.
	if strings.HasPrefix(trimmed, "```") {
		return scanLine{raw: line, fence: true, section: s.section}
	}

	// Bracket-tagged section markers: a known label opens that section, any
	// other label acts as a section boundary and clears everything.
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && len(trimmed) > 2 {
		switch strings.ToLower(trimmed) {
		case "[try it]":
			s.section = sectionTryIt
		case "[syntax]":
			s.section = sectionSyntax
		case "[examples]":
			s.section = sectionExamples
		default:
			s.section = sectionNone
		}
		return scanLine{raw: line, marker: true, section: s.section}
	}

	// A bare `css` token opens a css block. Case-sensitive.
	if trimmed == "css" {
		s.section = sectionCSSBlock
		return scanLine{raw: line, marker: true, section: s.section}
	}

	// A css block closes on a narrative phrase, a sub-heading, or unindented
	// non-blank content. The closing line itself is still classified below.
	if s.section == sectionCSSBlock &&
		(strings.HasPrefix(trimmed, "The ") ||
			strings.HasPrefix(trimmed, "###") ||
			(trimmed != "" && !strings.HasPrefix(line, " "))) {
		s.section = sectionNone
	}

	// Indented code lines.
	if strings.HasPrefix(line, indentPrefix) && trimmed != "" {
		code := line[len(indentPrefix):]
		codeTrimmed := strings.TrimSpace(code)

		if s.block == blockExcluded {
			// A lone closing brace exits the excluded example; the line
			// itself is discarded either way.
			if codeTrimmed == "}" {
				s.block = blockNormal
			}
			return scanLine{raw: line, excluded: true, section: s.section}
		}

		// A selector-like code line opens an excluded CSS example.
		if strings.HasPrefix(codeTrimmed, ".") && strings.Contains(code, "{") {
			s.block = blockExcluded
			return scanLine{raw: line, excluded: true, section: s.section}
		}

		s.block = blockIndented
		return scanLine{raw: line, code: code, indented: true, section: s.section}
	}

	// Non-indented lines while excluded stay excluded; the example only
	// closes on its brace.
	if s.block == blockExcluded {
		return scanLine{raw: line, excluded: true, section: s.section}
	}

	s.block = blockNormal
	return scanLine{raw: line, section: s.section}
}
