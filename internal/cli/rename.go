package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/edittree/pkg/edit"
)

func newRenameCommand() *cobra.Command {
	flags := &writeFlags{}
	var self bool

	cmd := &cobra.Command{
		Use:   "rename <file> <target> <old> <new>",
		Short: "Rename a declaration, attribute, or the target itself",
		Long: `Rename a CSS property or HTML attribute without touching its value.
With --self the target's own name is rewritten instead: the rule's
selector or the tag name. --self takes three arguments, the last being
the new name.

Examples:
  edittree rename styles.css h1 color background-color --write
  edittree rename index.html a data-id data-key --diff
  edittree rename index.html b --self strong --write`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if self && len(args) != 3 {
				return fmt.Errorf("--self takes exactly three arguments")
			}
			if !self && len(args) != 4 {
				return fmt.Errorf("expected <file> <target> <old> <new>")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			t, err := loadTarget(cmdContext(cmd), args[0], args[1], flags.index, cfg.Format)
			if err != nil {
				return err
			}

			if self {
				t.container.SetName(args[2])
				return emit(cmd, t, flags)
			}

			e := t.container.Get(edit.ByName(args[2]))
			if e == nil {
				return fmt.Errorf("%w: %q in %s", errElementNotFound, args[2], args[1])
			}
			e.SetName(args[3])
			return emit(cmd, t, flags)
		},
	}

	addWriteFlags(cmd, flags)
	cmd.Flags().BoolVar(&self, "self", false, "rename the selector or tag name itself")
	return cmd
}
