package cssedit_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/edittree/pkg/cssedit"
	"github.com/yaklabco/edittree/pkg/edit"
)

func TestParseRule_BareDeclarationList(t *testing.T) {
	t.Parallel()

	r, err := cssedit.ParseRule("a:1;b:2;c:3", 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := r.Name(); got != "" {
		t.Errorf("container name = %q, want empty for bare list", got)
	}

	want := []struct {
		name     string
		namePos  int
		value    string
		valuePos int
	}{
		{"a", 0, "1", 2},
		{"b", 4, "2", 6},
		{"c", 8, "3", 10},
	}
	els := r.Elements()
	if len(els) != len(want) {
		t.Fatalf("parsed %d declarations, want %d", len(els), len(want))
	}
	for i, w := range want {
		e := els[i]
		if e.Name() != w.name || e.NamePos(false) != w.namePos {
			t.Errorf("decl %d name %q@%d, want %q@%d", i, e.Name(), e.NamePos(false), w.name, w.namePos)
		}
		if e.Value() != w.value || e.ValuePos(false) != w.valuePos {
			t.Errorf("decl %d value %q@%d, want %q@%d", i, e.Value(), e.ValuePos(false), w.value, w.valuePos)
		}
	}
}

func TestParseRule_FullRule(t *testing.T) {
	t.Parallel()

	src := "h1.title {\n  color: red;\n  background: blue;\n}"
	r, err := cssedit.ParseRule(src, 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := r.Name(); got != "h1.title" {
		t.Errorf("selector = %q, want %q", got, "h1.title")
	}
	if got := r.NameSpan(false).Start; got != 0 {
		t.Errorf("selector offset = %d, want 0", got)
	}
	if got := len(r.Elements()); got != 2 {
		t.Fatalf("parsed %d declarations, want 2", got)
	}
	if got, _ := r.Value(edit.ByName("background")); got != "blue" {
		t.Errorf("background = %q, want blue", got)
	}
}

func TestParseRule_AwkwardSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		wantNames []string
		wantVals  []string
	}{
		{
			name:      "comments between declarations",
			src:       "a: 1; /* note */ b: 2;",
			wantNames: []string{"a", "b"},
			wantVals:  []string{"1", "2"},
		},
		{
			name:      "semicolon inside string value",
			src:       `content: "a;b"; color: red`,
			wantNames: []string{"content", "color"},
			wantVals:  []string{`"a;b"`, "red"},
		},
		{
			name:      "url value with parens",
			src:       "background: url(img;1.png); color: red",
			wantNames: []string{"background", "color"},
			wantVals:  []string{"url(img;1.png)", "red"},
		},
		{
			name:      "stray semicolons",
			src:       ";;a: 1;;b: 2;;",
			wantNames: []string{"a", "b"},
			wantVals:  []string{"1", "2"},
		},
		{
			name:      "missing final semicolon",
			src:       "a: 1; b: 2",
			wantNames: []string{"a", "b"},
			wantVals:  []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := cssedit.ParseRule(tt.src, 0)
			if err != nil {
				t.Fatal(err)
			}
			els := r.Elements()
			if len(els) != len(tt.wantNames) {
				t.Fatalf("parsed %d declarations, want %d", len(els), len(tt.wantNames))
			}
			for i := range tt.wantNames {
				if els[i].Name() != tt.wantNames[i] {
					t.Errorf("decl %d name = %q, want %q", i, els[i].Name(), tt.wantNames[i])
				}
				if els[i].Value() != tt.wantVals[i] {
					t.Errorf("decl %d value = %q, want %q", i, els[i].Value(), tt.wantVals[i])
				}
			}
		})
	}
}

func TestParseRule_ValuelessDeclaration(t *testing.T) {
	t.Parallel()

	r, err := cssedit.ParseRule("border;color:red", 0)
	if err != nil {
		t.Fatal(err)
	}

	border := r.Get(edit.ByName("border"))
	if border == nil {
		t.Fatal("border declaration not parsed")
	}
	if border.HasValue() {
		t.Error("border should have no value token")
	}
	if got := border.ValuePos(false); got != -1 {
		t.Errorf("border value position = %d, want -1", got)
	}
}

func TestParseRule_UnbalancedBraces(t *testing.T) {
	t.Parallel()

	_, err := cssedit.ParseRule("h1 { color: red", 0)
	if err == nil {
		t.Fatal("expected parse error for unbalanced braces")
	}
	var perr *cssedit.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T, want *ParseError", err)
	}
	if perr.Offset != 3 {
		t.Errorf("error offset = %d, want 3", perr.Offset)
	}
}

func TestRule_EditScenario(t *testing.T) {
	t.Parallel()

	r, err := cssedit.ParseRule("a:1;b:2;c:3", 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Get(edit.ByName("a")).SetValue("100"); err != nil {
		t.Fatal(err)
	}
	if got := r.Source(); got != "a:100;b:2;c:3" {
		t.Fatalf("source = %q, want %q", got, "a:100;b:2;c:3")
	}
	if got := r.Get(edit.ByName("b")).ValuePos(false); got != 8 {
		t.Errorf("b value position = %d, want 8", got)
	}
	if got := r.Get(edit.ByName("c")).ValuePos(false); got != 12 {
		t.Errorf("c value position = %d, want 12", got)
	}

	r.Remove(edit.ByName("b"))
	if got := r.Source(); got != "a:100;c:3" {
		t.Fatalf("source = %q, want %q", got, "a:100;c:3")
	}
	if got := r.Get(edit.ByName("c")).NamePos(false); got != 6 {
		t.Errorf("c name position = %d, want 6", got)
	}
}

func TestRule_RemoveRoundTrip(t *testing.T) {
	t.Parallel()

	r, err := cssedit.ParseRule("h1 {\n  color: red;\n  background: blue;\n  margin: 0;\n}", 0)
	if err != nil {
		t.Fatal(err)
	}

	r.Remove(edit.ByName("background"))

	// Reparsing the edited source yields the same children minus the
	// removed one.
	again, err := cssedit.ParseRule(r.Source(), 0)
	if err != nil {
		t.Fatal(err)
	}
	wantNames := []string{"color", "margin"}
	els := again.Elements()
	if len(els) != len(wantNames) {
		t.Fatalf("reparsed %d declarations, want %d (source %q)", len(els), len(wantNames), r.Source())
	}
	for i, w := range wantNames {
		if els[i].Name() != w {
			t.Errorf("decl %d = %q, want %q", i, els[i].Name(), w)
		}
	}
	for i, e := range els {
		orig := r.Elements()[i]
		if e.Value() != orig.Value() {
			t.Errorf("decl %d value %q, want %q", i, e.Value(), orig.Value())
		}
	}
}

func TestRule_AddInfersStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "compact style",
			src:  "a:1;b:2",
			want: "a:1;b:2;d:4",
		},
		{
			name: "spaced style",
			src:  "a: 1; b: 2;",
			want: "a: 1; b: 2; d: 4;",
		},
		{
			name: "space before colon",
			src:  "a : 1; b : 2;",
			want: "a : 1; b : 2; d : 4;",
		},
		{
			name: "newline style inside braces",
			src:  "h1 {\n  a: 1;\n  b: 2;\n}",
			want: "h1 {\n  a: 1;\n  b: 2;\n  d: 4;\n}",
		},
		{
			name: "empty rule",
			src:  "h1 {}",
			want: "h1 {d: 4;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := cssedit.ParseRule(tt.src, 0)
			if err != nil {
				t.Fatal(err)
			}
			e, err := r.Add("d", "4", -1)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.Source(); got != tt.want {
				t.Fatalf("source = %q, want %q", got, tt.want)
			}
			// The new element is splice-consistent with the source.
			ns := e.NameSpan(false)
			if got := r.Source()[ns.Start:ns.End]; got != "d" {
				t.Errorf("name span addresses %q, want d", got)
			}
			vs := e.ValueSpan(false)
			if got := r.Source()[vs.Start:vs.End]; got != "4" {
				t.Errorf("value span addresses %q, want 4", got)
			}
		})
	}
}

func TestRule_AddAtIndex(t *testing.T) {
	t.Parallel()

	r, err := cssedit.ParseRule("a:1;b:2;c:3", 0)
	if err != nil {
		t.Fatal(err)
	}

	e, err := r.Add("x", "9", 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Source(); got != "a:1;x:9;b:2;c:3" {
		t.Fatalf("source = %q, want %q", got, "a:1;x:9;b:2;c:3")
	}
	if got := r.IndexOfElement(e); got != 1 {
		t.Errorf("inserted element at index %d, want 1", got)
	}
	if got := r.Get(edit.ByName("b")).NamePos(false); got != 8 {
		t.Errorf("b name position = %d, want 8", got)
	}
}

func TestRule_MaterializeValue(t *testing.T) {
	t.Parallel()

	r, err := cssedit.ParseRule("border;color:red", 0)
	if err != nil {
		t.Fatal(err)
	}

	border := r.Get(edit.ByName("border"))
	if err := border.SetValue("thin"); err != nil {
		t.Fatal(err)
	}

	if got := r.Source(); got != "border:thin;color:red" {
		t.Fatalf("source = %q, want %q", got, "border:thin;color:red")
	}
	if got := border.ValuePos(false); got != 7 {
		t.Errorf("border value position = %d, want 7", got)
	}
	if got := r.Get(edit.ByName("color")).ValuePos(false); got != 18 {
		t.Errorf("color value position = %d, want 18", got)
	}
}

func TestRule_SetName(t *testing.T) {
	t.Parallel()

	r, err := cssedit.ParseRule("h1 { color: red; }", 0)
	if err != nil {
		t.Fatal(err)
	}

	r.SetName("h1, h2")

	if got := r.Source(); got != "h1, h2 { color: red; }" {
		t.Fatalf("source = %q", got)
	}
	color := r.Get(edit.ByName("color"))
	vs := color.ValueSpan(false)
	if got := r.Source()[vs.Start:vs.End]; got != "red" {
		t.Errorf("value span addresses %q after rename, want red", got)
	}
}

func TestRule_SetNameOnBareList(t *testing.T) {
	t.Parallel()

	// A bare list has an empty selector at offset 0; naming it must leave
	// the name span addressing the new selector, not the shifted text.
	r, err := cssedit.ParseRule("a:1;b:2", 0)
	if err != nil {
		t.Fatal(err)
	}

	r.SetName("h1")

	if got := r.Source(); got != "h1a:1;b:2" {
		t.Fatalf("source = %q, want %q", got, "h1a:1;b:2")
	}
	ns := r.NameSpan(false)
	if got := r.Source()[ns.Start:ns.End]; got != "h1" {
		t.Errorf("name span addresses %q, want h1", got)
	}
	if got := r.Get(edit.ByName("b")).ValuePos(false); got != 8 {
		t.Errorf("b value position = %d, want 8", got)
	}
}
