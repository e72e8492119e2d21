package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kr/pretty"
	"github.com/vito/pith/pkg/ioctx"
	"github.com/vito/pith/pkg/pith"
	"golang.org/x/sync/errgroup"
)

// stdinPath reads a JSON tree from stdin.
const stdinPath = "-"

func encodingFor(path string) pith.Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return pith.EncodingYAML
	default:
		return pith.EncodingJSON
	}
}

func loadTree(ctx context.Context, path string) (*pith.Program, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(ioctx.StdinFromContext(ctx))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	prog, err := pith.DecodeProgram(data, encodingFor(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.Debug("loaded tree", "path", path, "statements", len(prog.Statements), "tree", pretty.Sprint(prog))
	}
	return prog, nil
}

// loadTrees loads every path concurrently, preserving order. Stdin can only
// be read once, so "-" may appear at most once.
func loadTrees(ctx context.Context, paths []string) ([]*pith.Program, error) {
	if i := slices.Index(paths, stdinPath); i >= 0 && slices.Contains(paths[i+1:], stdinPath) {
		return nil, fmt.Errorf("%s (stdin) given more than once", stdinPath)
	}
	progs := make([]*pith.Program, len(paths))
	eg, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		eg.Go(func() error {
			prog, err := loadTree(gctx, path)
			if err != nil {
				return err
			}
			progs[i] = prog
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return progs, nil
}
