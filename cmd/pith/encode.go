package main

import (
	"github.com/spf13/cobra"
	"github.com/vito/pith/pkg/ioctx"
	"github.com/vito/pith/pkg/pith"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode file",
		Short: "Re-encode a tree as canonical JSON",
		Long: `Decode a JSON or YAML tree, validate it, and print it as indented JSON
with fields in canonical order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prog, err := loadTree(ctx, args[0])
			if err != nil {
				return err
			}
			data, err := pith.MarshalProgram(prog)
			if err != nil {
				return err
			}
			_, err = ioctx.StdoutFromContext(ctx).Write(data)
			return err
		},
	}
}
