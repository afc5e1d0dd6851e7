package edit

import "github.com/yaklabco/edittree/pkg/span"

// Grammar supplies the grammar-specific pieces of a container's behavior.
// The cssedit and htmledit packages provide the concrete implementations;
// BaseGrammar provides the template behavior.
type Grammar interface {
	// Add splices a new name/value pair into c's source and attaches the
	// resulting element at list position at (negative appends). After Add
	// returns, the new element is part of c.Elements() and its recorded
	// offsets address its text in c.Source().
	Add(c *Container, name, value string, at int) (*Element, error)

	// FullSpan returns e's total footprint in the source, widened to cover
	// grammar-specific surrounding text such as separators and whitespace.
	// The returned span is in container-relative coordinates.
	FullSpan(e *Element) span.Span

	// MaterializeValue gives a value to an element that has no value token,
	// splicing the value text (and any separator the grammar requires) into
	// the source and binding the new token to e.
	MaterializeValue(e *Element, value string) error
}

// BaseGrammar is the template Grammar: Add appends the bare name and value
// text at the end of the source, FullSpan equals the element's own span, and
// MaterializeValue fails because the base grammar has no notion of where a
// value slot would live.
type BaseGrammar struct{}

// Add appends name+value at the end of the container source.
func (BaseGrammar) Add(c *Container, name, value string, at int) (*Element, error) {
	start := len(c.Source())
	c.ReplaceSpan(name+value, span.New(start, 0))

	e := NewElement(c,
		Token{Start: start, Value: name},
		&Token{Start: start + len(name), Value: value})
	c.InsertAt(at, e)
	return e, nil
}

// FullSpan returns the element's own span, unwidened.
func (BaseGrammar) FullSpan(e *Element) span.Span {
	return e.Span(false)
}

// MaterializeValue always fails with ErrNoValueSlot.
func (BaseGrammar) MaterializeValue(_ *Element, _ string) error {
	return ErrNoValueSlot
}
