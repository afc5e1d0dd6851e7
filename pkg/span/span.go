// Package span provides the half-open byte interval used to address source
// text, plus the raw splice primitive that rewrites a span of a string.
package span

import "strings"

// Span is a half-open byte interval [Start, End) over a source string.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// New returns the span [start, start+length).
func New(start, length int) Span {
	return Span{Start: start, End: start + length}
}

// Of returns the span that text would occupy when placed at start.
func Of(start int, text string) Span {
	return Span{Start: start, End: start + len(text)}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset falls within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Shift returns a copy of the span moved by the given amount.
func (s Span) Shift(by int) Span {
	return Span{Start: s.Start + by, End: s.End + by}
}

// Splice replaces source[sp.Start:sp.End] with replacement and returns the
// new string. The span must be a valid sub-range of source.
func Splice(source, replacement string, sp Span) string {
	var b strings.Builder
	b.Grow(len(source) + len(replacement) - sp.Len())
	b.WriteString(source[:sp.Start])
	b.WriteString(replacement)
	b.WriteString(source[sp.End:])
	return b.String()
}
