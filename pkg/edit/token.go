package edit

// Token is a piece of source text together with the byte offset where it
// starts. Tokens are produced by the grammar tokenizers and are immutable
// once created.
type Token struct {
	// Start is the byte offset of the token within its source string.
	Start int

	// Value is the token text.
	Value string
}

// End returns the byte offset just past the token text.
func (t Token) End() int {
	return t.Start + len(t.Value)
}
