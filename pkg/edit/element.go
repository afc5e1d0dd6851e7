package edit

import "github.com/yaklabco/edittree/pkg/span"

// noValuePos marks an element that has no value token: its value is empty
// and its value span has zero length, anchored at the sentinel.
const noValuePos = -1

// Element is one named child of a container: a name/value pair remembering
// the byte offsets of both parts within the container's source. The back
// reference to the container is non-owning; the container owns the element's
// lifetime and the underlying text, and every mutation delegates to the
// container's splice routine.
type Element struct {
	container *Container
	name      string
	value     string
	namePos   int
	valuePos  int
}

// NewElement creates an element bound to c from its name token and optional
// value token. A nil value token marks an element with no value part. The
// element is not attached to the child list; see Container.Append.
func NewElement(c *Container, name Token, value *Token) *Element {
	e := &Element{
		container: c,
		name:      name.Value,
		namePos:   name.Start,
		valuePos:  noValuePos,
	}
	if value != nil {
		e.value = value.Value
		e.valuePos = value.Start
	}
	return e
}

// Container returns the owning container.
func (e *Element) Container() *Container {
	return e.container
}

// Name returns the element's current name text.
func (e *Element) Name() string {
	return e.name
}

// Value returns the element's current value text. Elements without a value
// token have an empty value.
func (e *Element) Value() string {
	return e.value
}

// HasValue reports whether the element carries a value token.
func (e *Element) HasValue() bool {
	return e.valuePos != noValuePos
}

// SetName renames the element, splicing the new text over the recorded name
// span and shifting subsequent offsets. Setting the current name is a no-op.
func (e *Element) SetName(name string) {
	if name == e.name {
		return
	}
	sp := e.NameSpan(false)
	e.container.ReplaceSpan(name, sp)
	// Re-pin the anchor: when the old name was empty the shift pass moves
	// the element's own offset past the inserted text.
	e.namePos = sp.Start
	e.name = name
}

// SetValue replaces the element's value, splicing the new text over the
// recorded value span and shifting subsequent offsets. Setting the current
// value is a no-op that leaves the source untouched. On an element without a
// value token, the grammar's MaterializeValue hook decides where the value
// text appears.
func (e *Element) SetValue(value string) error {
	if value == e.value {
		return nil
	}
	if e.valuePos == noValuePos {
		return e.container.grammar.MaterializeValue(e, value)
	}
	sp := e.ValueSpan(false)
	e.container.ReplaceSpan(value, sp)
	e.valuePos = sp.Start
	e.value = value
	return nil
}

// BindValue records a newly materialized value token. It is intended for
// Grammar implementations that have just spliced the value text into the
// source; it does not touch the source itself.
func (e *Element) BindValue(t Token) {
	e.value = t.Value
	e.valuePos = t.Start
}

// NamePos returns the byte offset of the element's name. With absolute set,
// the container's base offset is added.
func (e *Element) NamePos(absolute bool) int {
	if absolute {
		return e.namePos + e.container.base
	}
	return e.namePos
}

// ValuePos returns the byte offset of the element's value, or the sentinel
// -1 when the element has no value token. The sentinel is returned as-is
// even for absolute addressing.
func (e *Element) ValuePos(absolute bool) int {
	if e.valuePos == noValuePos {
		return noValuePos
	}
	if absolute {
		return e.valuePos + e.container.base
	}
	return e.valuePos
}

// Span returns the element's footprint: from the name offset over the
// combined length of name and value text.
func (e *Element) Span(absolute bool) span.Span {
	s := span.New(e.namePos, len(e.name)+len(e.value))
	if absolute {
		s = s.Shift(e.container.base)
	}
	return s
}

// FullSpan returns the element's footprint widened by the grammar to cover
// surrounding separators and whitespace. The base behavior is identical to
// Span.
func (e *Element) FullSpan(absolute bool) span.Span {
	s := e.container.grammar.FullSpan(e)
	if absolute {
		s = s.Shift(e.container.base)
	}
	return s
}

// NameSpan returns the span of the element's name text.
func (e *Element) NameSpan(absolute bool) span.Span {
	s := span.Of(e.namePos, e.name)
	if absolute {
		s = s.Shift(e.container.base)
	}
	return s
}

// ValueSpan returns the span of the element's value text. For an element
// without a value token this is a zero-length span anchored at the sentinel
// position.
func (e *Element) ValueSpan(absolute bool) span.Span {
	s := span.Of(e.valuePos, e.value)
	if absolute {
		s = s.Shift(e.container.base)
	}
	return s
}

// String returns the concatenation of the element's name and value text.
func (e *Element) String() string {
	return e.name + e.value
}
