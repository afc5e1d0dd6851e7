package htmledit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/edittree/pkg/span"
)

// TagSource is one start tag located inside a document: its raw text and
// the byte offset of that text within the document.
type TagSource struct {
	Text   string
	Offset int
}

// Span returns the span the tag text occupies within the document.
func (ts TagSource) Span() span.Span {
	return span.Of(ts.Offset, ts.Text)
}

// Replace splices an edited tag back over ts's span in the document and
// returns the new document text.
func (ts TagSource) Replace(doc, edited string) string {
	return span.Splice(doc, edited, ts.Span())
}

// FindTag locates the index-th (zero-based) start tag with the given name
// in doc. Tag names are matched case-insensitively, as HTML requires. The
// byte offset is derived by walking the document with the x/net/html
// tokenizer and accumulating the raw length of every token.
func FindTag(doc, name string, index int) (TagSource, error) {
	name = strings.ToLower(name)
	z := html.NewTokenizer(strings.NewReader(doc))

	offset := 0
	seen := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return TagSource{}, fmt.Errorf("tokenize html: %w", z.Err())
		}
		raw := z.Raw()

		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			tag, _ := z.TagName()
			if string(tag) == name {
				if seen == index {
					return TagSource{Text: string(raw), Offset: offset}, nil
				}
				seen++
			}
		}
		offset += len(raw)
	}
	return TagSource{}, &TagNotFoundError{Name: name, Index: index}
}
