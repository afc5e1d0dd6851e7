// Package htmledit implements the HTML grammar for edit containers: a Tag
// is a container over a single start tag whose elements are its attributes.
package htmledit

import (
	"strings"

	"github.com/yaklabco/edittree/pkg/config"
	"github.com/yaklabco/edittree/pkg/edit"
	"github.com/yaklabco/edittree/pkg/span"
)

// Tag is an editable view over one HTML start tag. The embedded container
// provides the structured API; the HTML grammar supplies insertion points,
// quoting, and footprint widening.
type Tag struct {
	*edit.Container
}

// ParseTag parses a single start tag fragment like `<div class="card">`
// with default formatting fallbacks. base is the tag's offset within the
// enclosing document, used only for absolute addressing.
func ParseTag(source string, base int) (*Tag, error) {
	return ParseTagWith(source, base, config.DefaultFormat())
}

// ParseTagWith is ParseTag with explicit formatting fallbacks.
func ParseTagWith(source string, base int, format config.Format) (*Tag, error) {
	if len(source) == 0 || source[0] != '<' {
		return nil, &ParseError{Offset: 0, Msg: "expected '<'"}
	}
	if len(source) > 1 && source[1] == '/' {
		return nil, &ParseError{Offset: 1, Msg: "expected a start tag, not an end tag"}
	}

	pos := 1
	nameStart := pos
	for pos < len(source) && isNameByte(source[pos]) {
		pos++
	}
	if pos == nameStart {
		return nil, &ParseError{Offset: pos, Msg: "missing tag name"}
	}
	name := edit.Token{Start: nameStart, Value: source[nameStart:pos]}

	c := edit.NewContainer(Grammar{Format: format}, source, name, base)
	for {
		attr, ok, err := scanAttr(source, &pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		c.Append(edit.NewElement(c, attr.name, attr.value))
	}
	return &Tag{Container: c}, nil
}

// attribute is one scanned attribute. value is nil for a bare attribute
// like `disabled`.
type attribute struct {
	name  edit.Token
	value *edit.Token
}

// scanAttr scans the next attribute starting at *pos, advancing *pos past
// it. ok is false once the tag closer (or end of input) is reached.
func scanAttr(src string, pos *int) (attribute, bool, error) {
	i := *pos
	for i < len(src) {
		if isSpace(src[i]) {
			i++
			continue
		}
		// A slash that does not form "/>" is insignificant between
		// attributes; HTML parsers drop it.
		if src[i] == '/' && (i+1 >= len(src) || src[i+1] != '>') {
			i++
			continue
		}
		break
	}
	if i >= len(src) {
		*pos = i
		return attribute{}, false, nil
	}
	if src[i] == '>' || src[i] == '/' {
		*pos = i
		return attribute{}, false, nil
	}

	nameStart := i
	for i < len(src) && !isSpace(src[i]) && src[i] != '=' && src[i] != '>' && src[i] != '/' {
		i++
	}
	attr := attribute{name: edit.Token{Start: nameStart, Value: src[nameStart:i]}}

	// Whitespace around '=' is legal.
	j := i
	for j < len(src) && isSpace(src[j]) {
		j++
	}
	if j >= len(src) || src[j] != '=' {
		*pos = i
		return attr, true, nil
	}
	j++
	for j < len(src) && isSpace(src[j]) {
		j++
	}
	if j >= len(src) {
		return attribute{}, false, &ParseError{Offset: j, Msg: "attribute value missing"}
	}

	if q := src[j]; q == '"' || q == '\'' {
		j++
		valStart := j
		for j < len(src) && src[j] != q {
			j++
		}
		if j >= len(src) {
			return attribute{}, false, &ParseError{Offset: valStart, Msg: "unterminated attribute value"}
		}
		tok := edit.Token{Start: valStart, Value: src[valStart:j]}
		attr.value = &tok
		*pos = j + 1
		return attr, true, nil
	}

	valStart := j
	for j < len(src) && !isSpace(src[j]) && src[j] != '>' {
		j++
	}
	tok := edit.Token{Start: valStart, Value: src[valStart:j]}
	attr.value = &tok
	*pos = j
	return attr, true, nil
}

// Grammar implements edit.Grammar for HTML start tags. Format supplies the
// quote style for newly written values.
type Grammar struct {
	Format config.Format
}

// Add splices a new `name="value"` attribute into the tag. at is the list
// position to insert before; negative appends just before the tag closer.
func (g Grammar) Add(c *edit.Container, name, value string, at int) (*edit.Element, error) {
	q := string(g.Format.Quote.Char())
	decl := name + "=" + q + value + q
	els := c.Elements()

	var insertPos, nameOff int
	var text string

	if at >= 0 && at < len(els) {
		insertPos = els[at].NameSpan(false).Start
		text = decl + " "
	} else {
		insertPos = closerPos(c.Source())
		text = decl
		if insertPos > 0 && !isSpace(c.Source()[insertPos-1]) {
			text = " " + decl
			nameOff = 1
		}
	}

	c.ReplaceSpan(text, span.New(insertPos, 0))

	nameTok := edit.Token{Start: insertPos + nameOff, Value: name}
	valTok := edit.Token{Start: nameTok.End() + 2, Value: value}
	e := edit.NewElement(c, nameTok, &valTok)
	c.InsertAt(at, e)
	return e, nil
}

// FullSpan widens an attribute's footprint to cover the whitespace run
// before its name and the closing quote after its value, so removal leaves
// a clean tag behind.
func (g Grammar) FullSpan(e *edit.Element) span.Span {
	src := e.Container().Source()
	start := e.NameSpan(false).Start
	for start > 0 && isSpace(src[start-1]) {
		start--
	}

	end := e.NameSpan(false).End
	if e.HasValue() {
		vs := e.ValueSpan(false)
		end = vs.End
		if q := src[vs.Start-1]; (q == '"' || q == '\'') && end < len(src) && src[end] == q {
			end++
		}
	}
	return span.Span{Start: start, End: end}
}

// MaterializeValue gives a value to a bare attribute, rewriting `disabled`
// to `disabled="..."` with the configured quote style.
func (g Grammar) MaterializeValue(e *edit.Element, value string) error {
	c := e.Container()
	q := string(g.Format.Quote.Char())
	at := e.NameSpan(false).End

	c.ReplaceSpan("="+q+value+q, span.New(at, 0))
	e.BindValue(edit.Token{Start: at + 2, Value: value})
	return nil
}

// closerPos returns the insertion point just before the tag closer: the '/'
// of a self-closing "/>" or the final '>'. Falls back to the end of the
// source for fragments missing a closer.
func closerPos(src string) int {
	if strings.HasSuffix(src, "/>") {
		return len(src) - 2
	}
	if i := strings.LastIndexByte(src, '>'); i >= 0 {
		return i
	}
	return len(src)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == ':' || c == '_':
		return true
	default:
		return false
	}
}
