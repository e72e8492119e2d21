package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vito/pith/pkg/ioctx"
	"github.com/vito/pith/pkg/pith"
)

func checkCmd(cfg *Config) *cobra.Command {
	var disable []string

	cmd := &cobra.Command{
		Use:   "check [flags] file...",
		Short: "Report suspicious shapes in trees",
		Long: `Report shapes that a tree permits but a parser would normally not produce:

  inert-non-terminating     a non-terminating statement that is not last
  empty-identifier          an identifier with no name
  duplicate-parameter       a function parameter declared twice
  unreachable-after-return  statements after a return

Exits non-zero when anything is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			for _, code := range disable {
				if !slices.Contains(pith.CheckCodes, code) {
					return fmt.Errorf("unknown check %q (known: %s)", code, strings.Join(pith.CheckCodes, ", "))
				}
			}
			check := cfg.Project.Check
			check.Disable = append(slices.Clone(check.Disable), disable...)

			progs, err := loadTrees(ctx, args)
			if err != nil {
				return err
			}

			stdout := ioctx.StdoutFromContext(ctx)
			var problems int
			for i, prog := range progs {
				for _, diag := range check.Check(prog) {
					problems++
					if _, err := fmt.Fprintf(stdout, "%s:%s\n", args[i], diag); err != nil {
						return err
					}
				}
			}
			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&disable, "disable", nil, "Rule codes to skip")

	return cmd
}
