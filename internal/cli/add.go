package cli

import (
	"github.com/spf13/cobra"
)

func newAddCommand() *cobra.Command {
	flags := &writeFlags{}
	var at int

	cmd := &cobra.Command{
		Use:   "add <file> <target> <name> <value>",
		Short: "Add a new declaration or attribute",
		Long: `Append a new CSS declaration or HTML attribute to the target, even
when one with the same name already exists. Use --at to insert at a
specific position instead of appending.

Examples:
  edittree add styles.css h1 color green --write
  edittree add index.html div data-id "42" --at 0 --diff`,
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

			if _, err := t.container.Add(args[2], args[3], at); err != nil {
				return err
			}
			return emit(cmd, t, flags)
		},
	}

	addWriteFlags(cmd, flags)
	cmd.Flags().IntVar(&at, "at", -1, "list position to insert before (-1 appends)")
	return cmd
}
