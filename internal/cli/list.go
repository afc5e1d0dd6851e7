package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/edittree/internal/ui/pretty"
)

const formatJSON = "json"

// elementInfo represents an element in JSON output.
type elementInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func newListCommand() *cobra.Command {
	var index int
	var format string

	cmd := &cobra.Command{
		Use:   "list <file> <target>",
		Short: "List the declarations or attributes of a target",
		Long: `List every element of the located CSS rule or HTML tag, with its
value and the byte span it occupies in the file.

Examples:
  edittree list styles.css h1
  edittree list index.html div --index 1
  edittree list index.html form --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			t, err := loadTarget(cmdContext(cmd), args[0], args[1], index, cfg.Format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			els := t.container.Elements()

			if format == formatJSON {
				infos := make([]elementInfo, 0, len(els))
				for i, e := range els {
					sp := e.FullSpan(true)
					infos = append(infos, elementInfo{
						Index: i,
						Name:  e.Name(),
						Value: e.Value(),
						Start: sp.Start,
						End:   sp.End,
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encode elements: %w", err)
				}
				return nil
			}

			styles := newStyles(cmd, out)
			formatter := pretty.NewElementFormatter(styles, pretty.TerminalWidth(out))
			fmt.Fprint(out, formatter.FormatElements(els))
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "which occurrence of an HTML tag to target")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}
