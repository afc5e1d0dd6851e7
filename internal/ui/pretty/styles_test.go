package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/edittree/internal/ui/pretty"
	"github.com/yaklabco/edittree/pkg/cssedit"
	"github.com/yaklabco/edittree/pkg/textdiff"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))
	// A bytes.Buffer is never a TTY.
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always overrides NO_COLOR")
}

func TestFormatElements(t *testing.T) {
	t.Parallel()

	rule, err := cssedit.ParseRule("color: red; margin: 0; border", 0)
	require.NoError(t, err)

	styles := pretty.NewStyles(false)
	f := pretty.NewElementFormatter(styles, 80)
	out := f.FormatElements(rule.Elements())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header plus three rows:\n%s", out)

	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "color")
	assert.Contains(t, lines[1], "red")
	assert.Contains(t, lines[2], "margin")
	// Valueless element shows the placeholder and no span.
	assert.Contains(t, lines[3], "border")
	assert.Contains(t, lines[3], "-")
	assert.NotContains(t, lines[3], "[")
}

func TestFormatElements_Empty(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	f := pretty.NewElementFormatter(styles, 80)
	assert.Contains(t, f.FormatElements(nil), "no elements")
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	d := textdiff.Compute("site/main.css", "a: 1\nb: 2\n", "a: 1\nb: 3\n")
	require.True(t, d.HasChanges())

	out := pretty.NewStyles(false).FormatDiff(d)
	for _, want := range []string{
		"--- a/site/main.css",
		"+++ b/site/main.css",
		"-b: 2",
		"+b: 3",
		"1 addition(s), 1 deletion(s)",
	} {
		assert.Contains(t, out, want)
	}
}
