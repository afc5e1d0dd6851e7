package cssedit

import "fmt"

// ParseError describes a syntax problem encountered while parsing CSS.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("css parse error at offset %d: %s", e.Offset, e.Msg)
}

// RuleNotFoundError is returned when a stylesheet contains no top-level rule
// with the requested selector.
type RuleNotFoundError struct {
	Selector string
}

func (e *RuleNotFoundError) Error() string {
	return fmt.Sprintf("no rule with selector %q", e.Selector)
}
