// Package edit maintains a live, editable view over a textual source
// fragment: a container owns the full source string of one structural unit
// (a CSS rule's declaration list, an HTML tag's attribute list) together
// with an ordered list of named elements, each remembering its byte offsets
// into that source.
//
// Every mutation made through the structured API is spliced incrementally
// into the source string, and the recorded offsets of every other tracked
// element are shifted so that subsequent operations keep addressing the
// correct text. All splicing flows through a single routine on Container;
// elements never touch the source directly.
//
// Grammar-specific behavior (where a new element's text is inserted, how an
// element's full footprint including separators is computed, how a value is
// materialized on a valueless element) is supplied through the Grammar
// interface. See the cssedit and htmledit packages for the concrete
// grammars.
package edit
