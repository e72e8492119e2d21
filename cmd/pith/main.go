package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/vito/pith/pkg/ioctx"
	"github.com/vito/pith/pkg/pith"
)

// Config holds the application configuration
type Config struct {
	Debug bool

	// Project is loaded from the nearest pith.toml, if any.
	Project pith.ProjectConfig
}

func main() {
	ctx := context.Background()
	ctx = ioctx.StdinToContext(ctx, os.Stdin)
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)

	// Use fang for styled execution with enhanced features
	if err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}

	rootCmd := &cobra.Command{
		Use:   "pith",
		Short: "Pith syntax tree tools",
		Long: `Tools for Pith syntax trees exchanged as JSON or YAML.

Trees are produced by a Pith parser and consumed by an evaluator; these
commands render, check and compare them.`,
		Example: `  # Render a tree as Pith source
  pith fmt tree.json

  # Report suspicious shapes in several trees
  pith check a.json b.yaml

  # Compare the trees two parsers produced
  pith diff expected.json actual.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.Context(), cfg.Debug)
			return loadProjectConfig(cfg)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(
		fmtCmd(cfg),
		checkCmd(cfg),
		diffCmd(),
		encodeCmd(),
	)

	return rootCmd
}

func setupLogging(ctx context.Context, debug bool) {
	// Set up slog with appropriate level
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(ioctx.StderrFromContext(ctx), &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func loadProjectConfig(cfg *Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	path, project, err := pith.FindProjectConfig(wd)
	if err != nil {
		return err
	}
	if project == nil {
		slog.Debug("no project config found", "dir", wd)
		return nil
	}
	slog.Debug("loaded project config", "path", path)
	cfg.Project = *project
	return nil
}
