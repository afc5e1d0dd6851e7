package htmledit

import "fmt"

// ParseError describes a syntax problem encountered while parsing a tag.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("html parse error at offset %d: %s", e.Offset, e.Msg)
}

// TagNotFoundError is returned when a document contains no start tag
// matching the requested name and occurrence.
type TagNotFoundError struct {
	Name  string
	Index int
}

func (e *TagNotFoundError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("no <%s> tag with occurrence %d", e.Name, e.Index)
	}
	return fmt.Sprintf("no <%s> tag", e.Name)
}
