package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vito/pith/pkg/ioctx"
)

func fmtCmd(cfg *Config) *cobra.Command {
	var (
		write  bool
		indent string
	)

	cmd := &cobra.Command{
		Use:   "fmt [flags] [file...]",
		Short: "Render trees as Pith source",
		Long: `Render syntax trees as canonical Pith source.

By default, fmt prints the rendered source to stdout.
Use -w to write it next to each tree with a .pith extension.
Use - to read a JSON tree from stdin.`,
		Example: `  # Render a tree
  pith fmt tree.json

  # Write tree.pith next to tree.yaml
  pith fmt -w tree.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format := cfg.Project.Format
			if cmd.Flags().Changed("indent") {
				format.Indent = indent
			}

			progs, err := loadTrees(ctx, args)
			if err != nil {
				return err
			}

			stdout := ioctx.StdoutFromContext(ctx)
			for i, prog := range progs {
				source := format.Formatter().Format(prog)
				if !write || args[i] == stdinPath {
					if _, err := fmt.Fprint(stdout, source); err != nil {
						return err
					}
					continue
				}
				dest := sourcePath(args[i])
				if err := os.WriteFile(dest, []byte(source), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", dest, err)
				}
				slog.Debug("wrote source", "path", dest)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write source next to each tree instead of stdout")
	cmd.Flags().StringVar(&indent, "indent", "\t", "Indentation written per nesting level")

	return cmd
}

// sourcePath replaces the tree file's extension with .pith.
func sourcePath(treePath string) string {
	return strings.TrimSuffix(treePath, filepath.Ext(treePath)) + ".pith"
}
