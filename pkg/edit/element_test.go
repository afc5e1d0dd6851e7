package edit_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/edittree/pkg/edit"
)

func TestElement_NoValueSentinel(t *testing.T) {
	t.Parallel()

	c := edit.NewContainer(nil, "disabled", edit.Token{}, 0)
	e := edit.NewElement(c, edit.Token{Start: 0, Value: "disabled"}, nil)
	c.Append(e)

	if e.HasValue() {
		t.Error("element without value token reports HasValue")
	}
	if got := e.Value(); got != "" {
		t.Errorf("value = %q, want empty", got)
	}
	if got := e.ValuePos(false); got != -1 {
		t.Errorf("value position = %d, want -1", got)
	}
	if got := e.ValuePos(true); got != -1 {
		t.Errorf("absolute value position = %d, want -1 sentinel", got)
	}
	vs := e.ValueSpan(false)
	if vs.Len() != 0 || vs.Start != -1 {
		t.Errorf("value span = [%d,%d), want zero-length at sentinel", vs.Start, vs.End)
	}
}

func TestElement_SetValueWithoutSlot(t *testing.T) {
	t.Parallel()

	c := edit.NewContainer(nil, "disabled", edit.Token{}, 0)
	e := edit.NewElement(c, edit.Token{Start: 0, Value: "disabled"}, nil)
	c.Append(e)

	err := e.SetValue("x")
	if !errors.Is(err, edit.ErrNoValueSlot) {
		t.Fatalf("error = %v, want ErrNoValueSlot", err)
	}
	if got := c.Source(); got != "disabled" {
		t.Errorf("source changed by failed set: %q", got)
	}

	// Setting the identical (empty) value short-circuits before the grammar
	// hook and succeeds.
	if err := e.SetValue(""); err != nil {
		t.Errorf("idempotent empty set failed: %v", err)
	}
}

func TestElement_SetName(t *testing.T) {
	t.Parallel()

	c := newDeclContainer()
	b := c.Get(edit.ByName("b"))

	b.SetName("background")

	if got := c.Source(); got != "a:1;background:2;c:3" {
		t.Fatalf("source = %q", got)
	}
	// The renamed element's own value shifts with the rename.
	if got := b.ValuePos(false); got != 15 {
		t.Errorf("b value position = %d, want 15", got)
	}
	if got := c.Get(edit.ByName("c")).NamePos(false); got != 17 {
		t.Errorf("c name position = %d, want 17", got)
	}
	checkConsistent(t, c)
}

func TestElement_Spans(t *testing.T) {
	t.Parallel()

	c := newDeclContainer()
	b := c.Get(edit.ByName("b"))

	if got := b.NameSpan(false); got.Start != 4 || got.End != 5 {
		t.Errorf("name span = [%d,%d), want [4,5)", got.Start, got.End)
	}
	if got := b.ValueSpan(false); got.Start != 6 || got.End != 7 {
		t.Errorf("value span = [%d,%d), want [6,7)", got.Start, got.End)
	}
	// The footprint runs from the name start over name+value length.
	if got := b.Span(false); got.Start != 4 || got.Len() != 2 {
		t.Errorf("span = [%d,%d), want start 4 length 2", got.Start, got.End)
	}
	// FullSpan is widened by the grammar to cover the separator.
	if got := b.FullSpan(false); got.Start != 4 || got.End != 8 {
		t.Errorf("full span = [%d,%d), want [4,8)", got.Start, got.End)
	}
}

func TestElement_SetValueFromEmpty(t *testing.T) {
	t.Parallel()

	// An empty value token is a zero-length span; filling it in must not
	// push the element's own value anchor past the inserted text.
	c := edit.NewContainer(nil, "a:;b:2", edit.Token{}, 0)
	a := edit.NewElement(c, edit.Token{Start: 0, Value: "a"}, &edit.Token{Start: 2, Value: ""})
	c.Append(a)
	b := edit.NewElement(c, edit.Token{Start: 3, Value: "b"}, &edit.Token{Start: 5, Value: "2"})
	c.Append(b)

	if err := a.SetValue("1"); err != nil {
		t.Fatal(err)
	}
	if got := c.Source(); got != "a:1;b:2" {
		t.Fatalf("source = %q, want %q", got, "a:1;b:2")
	}
	if got := a.ValuePos(false); got != 2 {
		t.Errorf("value position = %d, want 2", got)
	}
	if got := b.NamePos(false); got != 4 {
		t.Errorf("following name position = %d, want 4", got)
	}
}

func TestElement_String(t *testing.T) {
	t.Parallel()

	c := newDeclContainer()
	if got := c.Get(edit.ByName("a")).String(); got != "a1" {
		t.Errorf("String() = %q, want name+value concatenation %q", got, "a1")
	}
}
