// Package cssedit implements the CSS grammar for edit containers: a Rule is
// a container over one CSS rule (or a bare declaration list) whose elements
// are the property declarations.
package cssedit

import (
	"strings"

	"github.com/yaklabco/edittree/pkg/config"
	"github.com/yaklabco/edittree/pkg/edit"
	"github.com/yaklabco/edittree/pkg/span"
)

// Rule is an editable view over a single CSS rule. The embedded container
// provides the structured API; the CSS grammar supplies insertion points,
// separator handling, and footprint widening.
type Rule struct {
	*edit.Container
}

// ParseRule parses source as either a full rule ("sel { decls }") or a bare
// declaration list ("a:1;b:2") with default formatting fallbacks. base is
// the rule's offset within the enclosing document, used only for absolute
// addressing.
func ParseRule(source string, base int) (*Rule, error) {
	return ParseRuleWith(source, base, config.DefaultFormat())
}

// ParseRuleWith is ParseRule with explicit formatting fallbacks.
func ParseRuleWith(source string, base int, format config.Format) (*Rule, error) {
	bodyStart, bodyEnd := 0, len(source)
	name := edit.Token{}

	if open := indexTopLevel(source, '{'); open >= 0 {
		closing := matchingBrace(source, open)
		if closing < 0 {
			return nil, &ParseError{Offset: open, Msg: "unbalanced braces"}
		}
		selStart, selEnd := trimmedBounds(source, 0, open)
		name = edit.Token{Start: selStart, Value: source[selStart:selEnd]}
		bodyStart, bodyEnd = open+1, closing
	}

	c := edit.NewContainer(Grammar{Format: format}, source, name, base)
	for _, d := range scanDeclarations(source, bodyStart, bodyEnd) {
		c.Append(edit.NewElement(c, d.name, d.value))
	}
	return &Rule{Container: c}, nil
}

// Grammar implements edit.Grammar for CSS declaration lists. Format supplies
// the fallback style; the style already present in the rule wins.
type Grammar struct {
	Format config.Format
}

// Add splices a new "name: value;" declaration into the rule. at is the list
// position to insert before; negative appends after the last declaration
// (or inside the braces of an empty rule).
func (g Grammar) Add(c *edit.Container, name, value string, at int) (*edit.Element, error) {
	colon, gap := g.styleOf(c)
	decl := name + colon + value
	els := c.Elements()

	var insertPos, nameOff int
	var text string

	switch {
	case at >= 0 && at < len(els):
		insertPos = els[at].NameSpan(false).Start
		text = decl + ";" + gap
	case len(els) > 0:
		last := els[len(els)-1]
		end, hadSemi := semiEnd(c, last)
		insertPos = end
		if hadSemi {
			text = gap + decl + ";"
			nameOff = len(gap)
		} else {
			text = ";" + gap + decl
			nameOff = 1 + len(gap)
		}
	default:
		if open := indexTopLevel(c.Source(), '{'); open >= 0 {
			insertPos = open + 1
		} else {
			insertPos = len(c.Source())
		}
		text = decl + ";"
	}

	c.ReplaceSpan(text, span.New(insertPos, 0))

	nameTok := edit.Token{Start: insertPos + nameOff, Value: name}
	valTok := edit.Token{Start: nameTok.End() + len(colon), Value: value}
	e := edit.NewElement(c, nameTok, &valTok)
	c.InsertAt(at, e)
	return e, nil
}

// FullSpan widens a declaration's footprint to its full text plus the
// trailing ';' and any whitespace run following it, so removal takes the
// separator along. The widened end never crosses the closing brace.
func (g Grammar) FullSpan(e *edit.Element) span.Span {
	c := e.Container()
	src := c.Source()
	start := e.NameSpan(false).Start

	end, hadSemi := semiEnd(c, e)
	if hadSemi {
		for end < len(src) && src[end] != '}' && isSpace(src[end]) {
			end++
		}
	}
	return span.Span{Start: start, End: end}
}

// MaterializeValue gives a value to a declaration that was parsed without
// one ("border" becomes "border: thin").
func (g Grammar) MaterializeValue(e *edit.Element, value string) error {
	c := e.Container()
	colon, _ := g.styleOf(c)
	at := e.NameSpan(false).End

	c.ReplaceSpan(colon+value, span.New(at, 0))
	e.BindValue(edit.Token{Start: at + len(colon), Value: value})
	return nil
}

// styleOf infers the rule's colon and inter-declaration whitespace style
// from its existing declarations, falling back to the configured format.
func (g Grammar) styleOf(c *edit.Container) (colon, gap string) {
	colon = ":"
	if g.Format.SpaceAfterColon {
		colon = ": "
	}

	els := c.Elements()
	for _, e := range els {
		if e.HasValue() {
			between := c.Source()[e.NameSpan(false).End:e.ValueSpan(false).Start]
			if strings.TrimSpace(between) == ":" {
				colon = between
			}
			break
		}
	}

	for i := 0; i+1 < len(els); i++ {
		end, hadSemi := semiEnd(c, els[i])
		if !hadSemi {
			continue
		}
		between := c.Source()[end:els[i+1].NameSpan(false).Start]
		if strings.TrimSpace(between) == "" {
			gap = between
			break
		}
	}
	return colon, gap
}

// semiEnd returns the offset just past the ';' terminating e's text, with
// hadSemi false (and the text end returned) when no ';' follows.
func semiEnd(c *edit.Container, e *edit.Element) (int, bool) {
	src := c.Source()
	end := e.NameSpan(false).End
	if e.HasValue() {
		end = e.ValueSpan(false).End
	}

	i := end
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	if i < len(src) && src[i] == ';' {
		return i + 1, true
	}
	return end, false
}

// trimmedBounds returns the bounds of src[start:end] with surrounding
// whitespace removed.
func trimmedBounds(src string, start, end int) (int, int) {
	for start < end && isSpace(src[start]) {
		start++
	}
	for end > start && isSpace(src[end-1]) {
		end--
	}
	return start, end
}
