package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/edittree/pkg/edit"
)

func newRemoveCommand() *cobra.Command {
	flags := &writeFlags{}

	cmd := &cobra.Command{
		Use:   "remove <file> <target> <name>",
		Short: "Remove a declaration or attribute",
		Long: `Remove a CSS declaration or HTML attribute from the target, including
its separators, leaving the surrounding text untouched.

Examples:
  edittree remove styles.css h1 color --write
  edittree remove index.html input disabled --diff`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			t, err := loadTarget(cmdContext(cmd), args[0], args[1], flags.index, cfg.Format)
			if err != nil {
				return err
			}

			key := edit.ByName(args[2])
			if t.container.Get(key) == nil {
				return fmt.Errorf("%w: %q in %s", errElementNotFound, args[2], args[1])
			}
			t.container.Remove(key)
			return emit(cmd, t, flags)
		},
	}

	addWriteFlags(cmd, flags)
	return cmd
}
