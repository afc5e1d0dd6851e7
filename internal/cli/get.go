package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/edittree/pkg/edit"
)

func newGetCommand() *cobra.Command {
	var index int
	var all bool

	cmd := &cobra.Command{
		Use:   "get <file> <target> <name>",
		Short: "Print the value of a declaration or attribute",
		Long: `Print the value of a CSS declaration or HTML attribute.

Examples:
  edittree get styles.css h1 color
  edittree get index.html img src
  edittree get index.html div class --index 2
  edittree get styles.css .card margin --all`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			t, err := loadTarget(cmdContext(cmd), args[0], args[1], index, cfg.Format)
			if err != nil {
				return err
			}

			name := args[2]
			if all {
				values := t.container.Values(edit.ByName(name))
				if len(values) == 0 {
					return fmt.Errorf("%w: %q in %s", errElementNotFound, name, args[1])
				}
				for _, v := range values {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			}

			value, ok := t.container.Value(edit.ByName(name))
			if !ok {
				return fmt.Errorf("%w: %q in %s", errElementNotFound, name, args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "which occurrence of an HTML tag to target")
	cmd.Flags().BoolVar(&all, "all", false, "print every value when the name repeats")

	return cmd
}
