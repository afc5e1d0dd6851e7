package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/edittree/internal/configloader"
	"github.com/yaklabco/edittree/internal/logging"
	"github.com/yaklabco/edittree/internal/ui/pretty"
	"github.com/yaklabco/edittree/pkg/config"
	"github.com/yaklabco/edittree/pkg/cssedit"
	"github.com/yaklabco/edittree/pkg/edit"
	"github.com/yaklabco/edittree/pkg/fsutil"
	"github.com/yaklabco/edittree/pkg/htmledit"
	"github.com/yaklabco/edittree/pkg/langdetect"
	"github.com/yaklabco/edittree/pkg/textdiff"
)

// errElementNotFound is returned when the named element is absent from the
// located container.
var errElementNotFound = errors.New("element not found")

// target is one located container inside a file: the CSS rule or HTML tag
// the command operates on, plus what is needed to write the result back.
type target struct {
	path      string
	kind      langdetect.Kind
	doc       string
	snap      *fsutil.Snapshot
	container *edit.Container

	// replace splices the edited fragment back into the document.
	replace func(edited string) string
}

// writeFlags are shared by every mutating command.
type writeFlags struct {
	write  bool
	diff   bool
	backup bool
	index  int
}

func addWriteFlags(cmd *cobra.Command, flags *writeFlags) {
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff instead of the document")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "create a sidecar backup before writing")
	cmd.Flags().IntVar(&flags.index, "index", 0, "which occurrence of an HTML tag to target")
}

// loadConfig resolves the effective configuration for the current command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return configloader.Load(cmdContext(cmd), workDir, configPath)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadTarget reads path and locates the container named by selector: a CSS
// rule for stylesheets, the index-th start tag for HTML documents.
func loadTarget(ctx context.Context, path, selector string, index int, format config.Format) (*target, error) {
	content, snap, err := fsutil.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	doc := string(content)

	kind := langdetect.DetectFile(path, content)
	logging.Default().Debug("target located",
		logging.FieldPath, path,
		logging.FieldKind, kind.String(),
		logging.FieldSelector, selector,
	)

	t := &target{path: path, kind: kind, doc: doc, snap: snap}

	switch kind {
	case langdetect.KindCSS:
		rs, err := cssedit.FindRule(doc, selector)
		if err != nil {
			return nil, err
		}
		rule, err := cssedit.ParseRuleWith(rs.Text, rs.Offset, format)
		if err != nil {
			return nil, err
		}
		t.container = rule.Container
		t.replace = func(edited string) string { return rs.Replace(doc, edited) }

	case langdetect.KindHTML:
		ts, err := htmledit.FindTag(doc, selector, index)
		if err != nil {
			return nil, err
		}
		tag, err := htmledit.ParseTagWith(ts.Text, ts.Offset, format)
		if err != nil {
			return nil, err
		}
		t.container = tag.Container
		t.replace = func(edited string) string { return ts.Replace(doc, edited) }

	default:
		return nil, fmt.Errorf("cannot determine whether %s is CSS or HTML", path)
	}

	return t, nil
}

// emit finishes a mutating command: write back, print a diff, or print the
// whole edited document to stdout.
func emit(cmd *cobra.Command, t *target, flags *writeFlags) error {
	edited := t.replace(t.container.Source())

	if flags.write {
		if err := fsutil.WriteBack(cmdContext(cmd), t.snap, []byte(edited), flags.backup); err != nil {
			return err
		}
		logging.Default().Debug("file updated",
			logging.FieldPath, t.path,
			logging.FieldBackup, flags.backup,
		)
		return nil
	}

	out := cmd.OutOrStdout()
	if flags.diff {
		styles := newStyles(cmd, out)
		d := textdiff.Compute(t.path, t.doc, edited)
		if !d.HasChanges() {
			fmt.Fprintln(out, styles.Dim.Render("no changes"))
			return nil
		}
		fmt.Fprint(out, styles.FormatDiff(d))
		return nil
	}

	fmt.Fprint(out, edited)
	return nil
}

func newStyles(cmd *cobra.Command, out io.Writer) *pretty.Styles {
	color, _ := cmd.Flags().GetString("color")
	return pretty.NewStyles(pretty.IsColorEnabled(color, out))
}
