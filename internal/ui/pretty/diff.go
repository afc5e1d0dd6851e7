package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/edittree/pkg/textdiff"
)

// FormatDiff renders a unified diff with per-line styling.
func (s *Styles) FormatDiff(d *textdiff.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("--- a/%s", path)) + "\n")
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("+++ b/%s", path)) + "\n")

	for _, h := range d.Hunks {
		b.WriteString(s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			h.OldStart, h.OldLines, h.NewStart, h.NewLines)) + "\n")

		for _, ln := range h.Lines {
			switch ln.Op {
			case textdiff.OpAdd:
				b.WriteString(s.DiffAdd.Render("+"+ln.Text) + "\n")
			case textdiff.OpDelete:
				b.WriteString(s.DiffRemove.Render("-"+ln.Text) + "\n")
			default:
				b.WriteString(s.DiffContext.Render(" "+ln.Text) + "\n")
			}
		}
	}

	b.WriteString(s.Dim.Render(fmt.Sprintf("%d addition(s), %d deletion(s)",
		d.Additions, d.Deletions)) + "\n")
	return b.String()
}
