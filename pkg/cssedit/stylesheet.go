package cssedit

import "github.com/yaklabco/edittree/pkg/span"

// RuleSource is one top-level rule located inside a stylesheet: its full
// text from the selector through the closing brace, and the byte offset of
// that text within the stylesheet.
type RuleSource struct {
	Text   string
	Offset int
}

// Span returns the span the rule text occupies within the stylesheet.
func (rs RuleSource) Span() span.Span {
	return span.Of(rs.Offset, rs.Text)
}

// FindRule locates the first top-level rule whose selector text (trimmed)
// equals selector. Rules nested inside at-rule blocks are not searched;
// block-less at-rules like @import are skipped.
func FindRule(stylesheet, selector string) (RuleSource, error) {
	pos := 0
	for pos < len(stylesheet) {
		pos = skipInsignificantAt(stylesheet, pos)
		if pos >= len(stylesheet) {
			break
		}

		preludeStart := pos
		i := pos
	prelude:
		for i < len(stylesheet) {
			switch c := stylesheet[i]; {
			case c == '{' || c == ';':
				break prelude
			case c == '"' || c == '\'':
				i = skipStringAt(stylesheet, i)
			case c == '/' && i+1 < len(stylesheet) && stylesheet[i+1] == '*':
				i = skipCommentAt(stylesheet, i)
			default:
				i++
			}
		}
		if i >= len(stylesheet) {
			break
		}
		if stylesheet[i] == ';' {
			// Block-less at-rule (@import, @charset).
			pos = i + 1
			continue
		}

		closing := matchingBrace(stylesheet, i)
		if closing < 0 {
			return RuleSource{}, &ParseError{Offset: i, Msg: "unbalanced braces"}
		}

		selStart, selEnd := trimmedBounds(stylesheet, preludeStart, i)
		if stylesheet[selStart:selEnd] == selector {
			return RuleSource{
				Text:   stylesheet[selStart : closing+1],
				Offset: selStart,
			}, nil
		}
		pos = closing + 1
	}
	return RuleSource{}, &RuleNotFoundError{Selector: selector}
}

// Replace splices an edited rule back over rs's span in the stylesheet and
// returns the new stylesheet text.
func (rs RuleSource) Replace(stylesheet, edited string) string {
	return span.Splice(stylesheet, edited, rs.Span())
}

// skipInsignificantAt consumes whitespace and comments starting at i.
func skipInsignificantAt(src string, i int) int {
	for i < len(src) {
		switch c := src[i]; {
		case isSpace(c):
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipCommentAt(src, i)
		default:
			return i
		}
	}
	return i
}
