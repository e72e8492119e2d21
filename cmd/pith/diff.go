package main

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"github.com/vito/pith/pkg/ioctx"
	"github.com/vito/pith/pkg/pith"
)

var (
	diffHeaderStyle = lipgloss.NewStyle().Bold(true)
	diffLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var errTreesDiffer = errors.New("trees differ")

func diffCmd() *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "diff [flags] a b",
		Short: "Compare two trees structurally",
		Long: `Compare two syntax trees structurally.

Prints nothing and exits zero when the trees are equal. Otherwise prints
each differing field and exits non-zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			progs, err := loadTrees(ctx, args)
			if err != nil {
				return err
			}
			a, b := progs[0], progs[1]
			if pith.Equal(a, b) {
				return nil
			}

			out := diffHeaderStyle.Render("--- "+args[0]) + "\n" +
				diffHeaderStyle.Render("+++ "+args[1]) + "\n"
			for _, line := range pretty.Diff(a, b) {
				out += diffLineStyle.Render(line) + "\n"
			}
			if !color {
				out = ansi.Strip(out)
			}
			if _, err := fmt.Fprint(ioctx.StdoutFromContext(ctx), out); err != nil {
				return err
			}
			return errTreesDiffer
		},
	}

	cmd.Flags().BoolVar(&color, "color", true, "Colorize the output")

	return cmd
}
