// Package textdiff renders the before/after of an edited file as a
// unified diff. It exists so the CLI can show what a mutation would do
// to a document before anything is written back to disk.
package textdiff

import (
	"fmt"
	"strings"
)

// Op classifies a line within a hunk.
type Op int

const (
	// OpContext is an unchanged line shown for orientation.
	OpContext Op = iota
	// OpAdd is a line present only in the edited text.
	OpAdd
	// OpDelete is a line present only in the original text.
	OpDelete
)

// Line is a single line of a hunk, without its diff prefix.
type Line struct {
	Op   Op
	Text string
}

// Hunk is one contiguous group of changes plus surrounding context.
// Start fields are 1-based line numbers.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []Line
}

// Diff is a unified diff between two versions of one file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// context is how many unchanged lines frame each hunk.
const context = 3

// Compute diffs original against edited and returns nil when they are
// line-for-line identical.
func Compute(path, original, edited string) *Diff {
	a := toLines(original)
	b := toLines(edited)

	ops := diffOps(a, b)
	hunks := group(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, ln := range h.Lines {
			switch ln.Op {
			case OpAdd:
				d.Additions++
			case OpDelete:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff holds at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
		for _, ln := range h.Lines {
			switch ln.Op {
			case OpContext:
				b.WriteByte(' ')
			case OpAdd:
				b.WriteByte('+')
			case OpDelete:
				b.WriteByte('-')
			}
			b.WriteString(ln.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func toLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps walks both line slices against their longest common
// subsequence, emitting one Line per input line.
func diffOps(a, b []string) []Line {
	lcs := commonSubsequence(a, b)

	var ops []Line
	i, j, k := 0, 0, 0
	for i < len(a) || j < len(b) {
		if k < len(lcs) && i < len(a) && j < len(b) && a[i] == lcs[k] && b[j] == lcs[k] {
			ops = append(ops, Line{Op: OpContext, Text: a[i]})
			i++
			j++
			k++
			continue
		}
		for i < len(a) && (k >= len(lcs) || a[i] != lcs[k]) {
			ops = append(ops, Line{Op: OpDelete, Text: a[i]})
			i++
		}
		for j < len(b) && (k >= len(lcs) || b[j] != lcs[k]) {
			ops = append(ops, Line{Op: OpAdd, Text: b[j]})
			j++
		}
	}
	return ops
}

// group splits the flat op list into hunks. Change runs separated by no
// more than 2*context unchanged lines share a hunk.
func group(ops []Line) []Hunk {
	type run struct{ start, end int }

	var runs []run
	open := -1
	for i, op := range ops {
		if op.Op != OpContext {
			if open < 0 {
				open = i
			}
		} else if open >= 0 {
			runs = append(runs, run{open, i})
			open = -1
		}
	}
	if open >= 0 {
		runs = append(runs, run{open, len(ops)})
	}
	if len(runs) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(runs); {
		j := i + 1
		for j < len(runs) && runs[j].start-runs[j-1].end <= context*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, runs[i].start, runs[j-1].end))
		i = j
	}
	return hunks
}

func buildHunk(ops []Line, changeStart, changeEnd int) Hunk {
	start := max(changeStart-context, 0)
	end := min(changeEnd+context, len(ops))

	h := Hunk{OldStart: 1, NewStart: 1}
	for _, op := range ops[:start] {
		if op.Op != OpAdd {
			h.OldStart++
		}
		if op.Op != OpDelete {
			h.NewStart++
		}
	}

	for _, op := range ops[start:end] {
		h.Lines = append(h.Lines, op)
		switch op.Op {
		case OpContext:
			h.OldLines++
			h.NewLines++
		case OpDelete:
			h.OldLines++
		case OpAdd:
			h.NewLines++
		}
	}
	return h
}

// commonSubsequence computes the LCS of two line slices with the usual
// quadratic DP table.
func commonSubsequence(a, b []string) []string {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	length := dp[n][m]
	if length == 0 {
		return nil
	}

	out := make([]string, length)
	i, j, k := n, m, length-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}
