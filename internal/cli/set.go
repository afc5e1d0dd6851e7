package cli

import (
	"github.com/spf13/cobra"
)

func newSetCommand() *cobra.Command {
	flags := &writeFlags{}

	cmd := &cobra.Command{
		Use:   "set <file> <target> <name> <value>",
		Short: "Set the value of a declaration or attribute",
		Long: `Set the value of a CSS declaration or HTML attribute. The element is
created when it does not exist, and a bare HTML attribute is given a
value slot. Without --write the edited document goes to stdout.

Examples:
  edittree set styles.css h1 color green --write
  edittree set index.html img alt "A sunset" --diff
  edittree set index.html input disabled disabled --write --backup`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			t, err := loadTarget(cmdContext(cmd), args[0], args[1], flags.index, cfg.Format)
			if err != nil {
				return err
			}

			if _, err := t.container.SetValue(args[2], args[3]); err != nil {
				return err
			}
			return emit(cmd, t, flags)
		},
	}

	addWriteFlags(cmd, flags)
	return cmd
}
