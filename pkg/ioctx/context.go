// Package ioctx carries the standard streams through a context so commands
// can be run against buffers in tests.
package ioctx

import (
	"context"
	"io"
	"strings"
)

type streamKey int

const (
	stdinKey streamKey = iota
	stdoutKey
	stderrKey
)

func StdinFromContext(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey).(io.Reader); ok {
		return r
	}
	return strings.NewReader("")
}

func StdinToContext(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey, r)
}

func StdoutFromContext(ctx context.Context) io.Writer {
	return writerFromContext(ctx, stdoutKey)
}

func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey, w)
}

func StderrFromContext(ctx context.Context) io.Writer {
	return writerFromContext(ctx, stderrKey)
}

func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey, w)
}

func writerFromContext(ctx context.Context, key streamKey) io.Writer {
	if w, ok := ctx.Value(key).(io.Writer); ok {
		return w
	}
	return io.Discard
}
