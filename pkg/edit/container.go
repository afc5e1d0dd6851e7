package edit

import "github.com/yaklabco/edittree/pkg/span"

// Key selects a child element of a container, either by exact name (first
// match in list order) or by list position.
type Key struct {
	name    string
	index   int
	byIndex bool
}

// ByName returns a key that selects the first element with the given name.
func ByName(name string) Key {
	return Key{name: name}
}

// ByIndex returns a key that selects the element at the given list position.
func ByIndex(index int) Key {
	return Key{index: index, byIndex: true}
}

// matches reports whether the element at list position i is selected by k.
func (k Key) matches(i int, e *Element) bool {
	if k.byIndex {
		return k.index == i
	}
	return k.name == e.name
}

// Container owns the full source text of one structural unit and its ordered
// list of child elements. It is the sole authority over the source string:
// every mutation, whether initiated on the container or on one of its
// elements, passes through ReplaceSpan.
type Container struct {
	grammar  Grammar
	source   string
	name     string
	namePos  int
	base     int
	elements []*Element
}

// NewContainer creates a container over source. The name token carries the
// container's own identifier (selector text, tag name) and its offset within
// source. base is a fixed external offset used only for absolute addressing.
// A nil grammar falls back to BaseGrammar.
func NewContainer(g Grammar, source string, name Token, base int) *Container {
	if g == nil {
		g = BaseGrammar{}
	}
	return &Container{
		grammar: g,
		source:  source,
		name:    name.Value,
		namePos: name.Start,
		base:    base,
	}
}

// Source returns the current full source text of this container.
func (c *Container) Source() string {
	return c.source
}

// String returns the current source text.
func (c *Container) String() string {
	return c.source
}

// Base returns the fixed external offset used for absolute addressing.
func (c *Container) Base() int {
	return c.base
}

// Grammar returns the grammar driving this container's structural edits.
func (c *Container) Grammar() Grammar {
	return c.grammar
}

// Name returns the container's own identifier text.
func (c *Container) Name() string {
	return c.name
}

// SetName renames the container, splicing the new text over the recorded
// name span. Setting the current name is a no-op.
func (c *Container) SetName(name string) {
	if name == c.name {
		return
	}
	sp := c.NameSpan(false)
	c.ReplaceSpan(name, sp)
	// The shift pass moves offsets at the span end, which catches the
	// container's own anchor when the old name was empty. The edited
	// span is the target, not a bystander: re-pin it.
	c.namePos = sp.Start
	c.name = name
}

// NameSpan returns the span of the container's own name. With absolute set,
// the span is shifted by the container's base offset.
func (c *Container) NameSpan(absolute bool) span.Span {
	s := span.Of(c.namePos, c.name)
	if absolute {
		s = s.Shift(c.base)
	}
	return s
}

// Span returns the span of the container's entire source. With absolute set,
// the span is shifted by the container's base offset.
func (c *Container) Span(absolute bool) span.Span {
	s := span.Of(0, c.source)
	if absolute {
		s = s.Shift(c.base)
	}
	return s
}

// Elements returns the live ordered child collection. Mutation must go
// through Add and Remove.
func (c *Container) Elements() []*Element {
	return c.elements
}

// Len returns the number of child elements.
func (c *Container) Len() int {
	return len(c.elements)
}

// Append attaches an already-constructed element to the end of the child
// list. It does not touch the source text; it is intended for grammar
// constructors that tokenize an existing source.
func (c *Container) Append(e *Element) {
	c.elements = append(c.elements, e)
}

// InsertAt attaches an element at the given list position. An out-of-range
// position appends. Like Append, the source text is not touched.
func (c *Container) InsertAt(at int, e *Element) {
	if at < 0 || at >= len(c.elements) {
		c.elements = append(c.elements, e)
		return
	}
	c.elements = append(c.elements[:at], append([]*Element{e}, c.elements[at:]...)...)
}

// Add constructs a new element through the grammar hook and splices its text
// into the source. at is the list position to insert before; a negative
// position appends.
func (c *Container) Add(name, value string, at int) (*Element, error) {
	return c.grammar.Add(c, name, value, at)
}

// Get returns the element selected by k, or nil when nothing matches.
func (c *Container) Get(k Key) *Element {
	if k.byIndex {
		if k.index < 0 || k.index >= len(c.elements) {
			return nil
		}
		return c.elements[k.index]
	}
	for _, e := range c.elements {
		if e.name == k.name {
			return e
		}
	}
	return nil
}

// GetAll returns every element selected by any of the given keys, in list
// order.
func (c *Container) GetAll(keys ...Key) []*Element {
	var out []*Element
	for i, e := range c.elements {
		for _, k := range keys {
			if k.matches(i, e) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Value returns the value of the element selected by k. The second return
// is false when no element matches.
func (c *Container) Value(k Key) (string, bool) {
	e := c.Get(k)
	if e == nil {
		return "", false
	}
	return e.value, true
}

// Values returns the values of every element selected by the given keys, in
// list order.
func (c *Container) Values(keys ...Key) []string {
	elements := c.GetAll(keys...)
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.value
	}
	return out
}

// SetValue sets the value of the first element with the given name, creating
// the element through Add when none exists. It returns the affected element.
func (c *Container) SetValue(name, value string) (*Element, error) {
	if e := c.Get(ByName(name)); e != nil {
		if err := e.SetValue(value); err != nil {
			return nil, err
		}
		return e, nil
	}
	return c.Add(name, value, -1)
}

// Remove splices the element selected by k out of the source, including the
// grammar-defined surrounding text, and drops it from the child list. The
// offsets of all remaining elements are corrected. Removing a nonexistent
// element is a no-op.
func (c *Container) Remove(k Key) {
	e := c.Get(k)
	if e == nil {
		return
	}
	i := c.IndexOfElement(e)
	c.ReplaceSpan("", c.grammar.FullSpan(e))
	c.elements = append(c.elements[:i], c.elements[i+1:]...)
}

// IndexOf returns the list position of the element selected by k, or -1.
func (c *Container) IndexOf(k Key) int {
	return c.IndexOfElement(c.Get(k))
}

// IndexOfElement returns the list position of the given element, or -1 when
// it is not a child of this container.
func (c *Container) IndexOfElement(e *Element) int {
	if e == nil {
		return -1
	}
	for i, candidate := range c.elements {
		if candidate == e {
			return i
		}
	}
	return -1
}

// ElementAtOffset returns the first element whose span contains the given
// offset, or nil. With absolute set, the offset is interpreted in document
// coordinates.
func (c *Container) ElementAtOffset(offset int, absolute bool) *Element {
	if absolute {
		offset -= c.base
	}
	for _, e := range c.elements {
		if e.Span(false).Contains(offset) {
			return e
		}
	}
	return nil
}

// ReplaceSpan is the single chokepoint for source mutation: it replaces the
// given span of the source with replacement and shifts every tracked offset
// that lies at or after the span's end by the length delta. The offset table
// is updated first, in the old string's coordinate space, then the string is
// swapped.
//
// The span must be a valid sub-range of the current source; this is a caller
// contract, not checked here. Grammar implementations use this to splice
// newly added element text.
func (c *Container) ReplaceSpan(replacement string, sp span.Span) {
	delta := len(replacement) - sp.Len()
	if delta != 0 {
		c.shiftAfter(sp.End, delta)
	}
	c.source = span.Splice(c.source, replacement, sp)
}

// shiftAfter moves every tracked offset at or after pos by delta, in one
// linear pass over the container's own position and every child's positions.
// An offset equal to pos moves too, so a pure insertion pushes markers
// sitting exactly at the insertion point forward. The noValuePos sentinel is
// negative and therefore never shifted.
func (c *Container) shiftAfter(pos, delta int) {
	if c.namePos >= pos {
		c.namePos += delta
	}
	for _, e := range c.elements {
		if e.namePos >= pos {
			e.namePos += delta
		}
		if e.valuePos >= pos {
			e.valuePos += delta
		}
	}
}
