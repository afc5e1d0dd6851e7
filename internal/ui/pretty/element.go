package pretty

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/edittree/pkg/edit"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minNameWidth     = 4
	minValueWidth    = 5
	defaultTermWidth = 100
	noValueMarker    = "-"
)

// ElementFormatter renders a container's element list as an aligned table.
type ElementFormatter struct {
	styles    *Styles
	termWidth int
}

// NewElementFormatter creates a formatter clamped to the given terminal
// width. A non-positive width falls back to defaultTermWidth.
func NewElementFormatter(styles *Styles, termWidth int) *ElementFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &ElementFormatter{styles: styles, termWidth: termWidth}
}

// FormatElements renders one row per element: index, name, value, and the
// byte span of the value within the container source.
func (f *ElementFormatter) FormatElements(els []*edit.Element) string {
	if len(els) == 0 {
		return f.styles.Dim.Render("no elements") + "\n"
	}

	nameWidth := minNameWidth
	for _, e := range els {
		if len(e.Name()) > nameWidth {
			nameWidth = len(e.Name())
		}
	}

	// Whatever is left after index and name goes to the value column.
	valueWidth := f.termWidth - nameWidth - tablePadding*3 - 12
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}

	var b strings.Builder
	pad := strings.Repeat(" ", tablePadding)

	b.WriteString(f.styles.TableHeader.Render(
		fmt.Sprintf("%3s%s%-*s%s%s", "#", pad, nameWidth, "NAME", pad, "VALUE")) + "\n")

	for i, e := range els {
		value := noValueMarker
		if e.HasValue() {
			value = truncate(e.Value(), valueWidth)
		}
		span := ""
		if e.HasValue() {
			vs := e.ValueSpan(false)
			span = pad + f.styles.Location.Render(fmt.Sprintf("[%d:%d)", vs.Start, vs.End))
		}
		b.WriteString(fmt.Sprintf("%3d%s%s%s%s%s\n",
			i, pad,
			f.styles.Name.Render(fmt.Sprintf("%-*s", nameWidth, e.Name())),
			pad,
			f.styles.Value.Render(value),
			span,
		))
	}
	return b.String()
}

// truncate shortens s to at most width bytes, marking the cut.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// TerminalWidth returns the column count of the terminal behind writer,
// or defaultTermWidth when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
