// Package cli provides the Cobra command structure for edittree.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/edittree/internal/ui/pretty"
)

// helpStyles holds the Lipgloss renderers for help output. Secondary text
// (aliases, examples, version, type hints) shares the single Dim style.
type helpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Dim        lipgloss.Style
}

// newHelpStyles builds the help palette, matching the colors used by the
// pretty package for element output.
func newHelpStyles(colorEnabled bool) *helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &helpStyles{
			Command:    plain,
			Heading:    plain,
			Subcommand: plain,
			Flag:       plain,
			Dim:        plain,
		}
	}
	return &helpStyles{
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
		Subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled usage and help text for Cobra commands.
type HelpFormatter struct {
	styles *helpStyles
}

// NewHelpFormatter creates a help formatter honoring the color mode for the
// given writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":    h.styles.Command.Render,
		"styleHeading":    h.styles.Heading.Render,
		"styleSubcommand": h.styles.Subcommand.Render,
		"styleFlag":       h.styles.Flag.Render,
		"styleDim":        h.styles.Dim.Render,
		"styleFlagsUsage": h.styleFlagsUsage,
		"join":            strings.Join,
		"rpad":            rpad,
		"trimTrailing":    trimTrailing,
	}
}

func (h *HelpFormatter) usageTemplate() string {
	return `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleDim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleDim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`
}

func (h *HelpFormatter) helpTemplate() string {
	return `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailing }}

{{end}}` + h.usageTemplate()
}

// styleFlagsUsage restyles pflag's FlagUsages block line by line: flag names
// in the flag color, type hints dimmed, descriptions plain.
func (h *HelpFormatter) styleFlagsUsage(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = h.styleFlagLine(line)
	}
	return strings.Join(styled, "\n")
}

// styleFlagLine splits one "  -f, --flag type   description" line at the
// first run of two or more spaces after the flag text and styles each side.
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	flagPart, desc := splitFlagLine(trimmed)
	if desc == "" {
		return indent + h.styleFlagPart(flagPart)
	}
	return indent + h.styleFlagPart(flagPart) + "   " + desc
}

// splitFlagLine separates the flag definition from its description at the
// first gap of two or more spaces.
func splitFlagLine(line string) (flagPart, desc string) {
	start := -1
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			if start >= 0 && i-start >= 2 {
				return strings.TrimRight(line[:start], " "), line[i:]
			}
			start = -1
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return line, ""
}

func (h *HelpFormatter) styleFlagPart(flagPart string) string {
	tokens := strings.Fields(flagPart)
	for i, tok := range tokens {
		if name, ok := strings.CutSuffix(tok, ","); ok && strings.HasPrefix(name, "-") {
			tokens[i] = h.styles.Flag.Render(name) + ","
		} else if strings.HasPrefix(tok, "-") {
			tokens[i] = h.styles.Flag.Render(tok)
		} else {
			tokens[i] = h.styles.Dim.Render(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// ApplyToCommand installs the styled usage and help renderers on a Cobra
// command tree.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(h.usageTemplate())
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(h.helpTemplate())
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
