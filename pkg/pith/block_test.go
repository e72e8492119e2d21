package pith

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockResult(t *testing.T) {
	for _, tt := range []struct {
		name   string
		block  *Block
		result Expression
	}{
		{
			name:   "empty block yields no value",
			block:  &Block{},
			result: nil,
		},
		{
			name:   "trailing non-terminating propagates",
			block:  block(&Let{Name: ident("x"), Value: num(1)}, yield(ident("x"))),
			result: ident("x"),
		},
		{
			name:   "trailing terminating discards",
			block:  block(discard(num(5))),
			result: nil,
		},
		{
			name:   "trailing let yields no value",
			block:  block(yield(num(1)), &Let{Name: ident("x"), Value: num(1)}),
			result: nil,
		},
		{
			name:   "trailing return yields no value",
			block:  block(yield(num(1)), &Return{Value: num(2)}),
			result: nil,
		},
		{
			name:   "earlier non-terminating is inert",
			block:  block(yield(num(1)), discard(num(2))),
			result: nil,
		},
		{
			name:   "last of several non-terminating wins",
			block:  block(yield(num(1)), yield(num(2))),
			result: num(2),
		},
		{
			name:   "nested block is just an expression",
			block:  block(yield(block(yield(num(3))))),
			result: block(yield(num(3))),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.block.Result()
			assert.True(t, Equal(tt.result, first), "got %s", Format(first))
			assert.Equal(t, tt.result != nil, tt.block.Yields())

			// a static property: asking again gives the same node
			if first != nil {
				assert.Same(t, first, tt.block.Result())
			} else {
				assert.Nil(t, tt.block.Result())
			}
		})
	}
}

func TestProgramResult(t *testing.T) {
	assert.Nil(t, (&Program{}).Result())
	assert.Nil(t, sampleProgram().Result())

	prog := &Program{Statements: []Statement{discard(num(1)), yield(ident("done"))}}
	assert.True(t, Equal(ident("done"), prog.Result()))
}

// intRunner evaluates integer literals, identifiers bound by Let, and
// addition, recording every expression it evaluates.
type intRunner struct {
	env       map[string]int
	evaluated []string
	failOn    string
}

var errBoom = errors.New("boom")

func (r *intRunner) Let(ctx context.Context, stmt *Let) error {
	val, err := r.Eval(ctx, stmt.Value)
	if err != nil {
		return err
	}
	r.env[stmt.Name.Value] = val
	return nil
}

func (r *intRunner) Return(ctx context.Context, stmt *Return) (int, error) {
	if stmt.Value == nil {
		return 0, nil
	}
	return r.Eval(ctx, stmt.Value)
}

func (r *intRunner) Eval(ctx context.Context, expr Expression) (int, error) {
	r.evaluated = append(r.evaluated, Format(expr))
	switch e := expr.(type) {
	case *Int:
		return e.Value, nil
	case *Identifier:
		if e.Value == r.failOn {
			return 0, errBoom
		}
		val, ok := r.env[e.Value]
		if !ok {
			return 0, fmt.Errorf("undefined: %s", e.Value)
		}
		return val, nil
	case *Infix:
		l, err := r.Eval(ctx, e.Left)
		if err != nil {
			return 0, err
		}
		rv, err := r.Eval(ctx, e.Right)
		if err != nil {
			return 0, err
		}
		return l + rv, nil
	default:
		return 0, fmt.Errorf("unsupported: %T", expr)
	}
}

func TestRunStatements(t *testing.T) {
	ctx := context.Background()

	t.Run("empty sequence yields no value", func(t *testing.T) {
		out, err := RunStatements[int](ctx, nil, &intRunner{env: map[string]int{}})
		require.NoError(t, err)
		assert.Equal(t, Outcome[int]{}, out)
	})

	t.Run("trailing non-terminating propagates", func(t *testing.T) {
		r := &intRunner{env: map[string]int{}}
		out, err := RunStatements[int](ctx, block(
			&Let{Name: ident("x"), Value: num(1)},
			yield(infix(ident("x"), InfixPlus, num(41))),
		).Statements, r)
		require.NoError(t, err)
		assert.Equal(t, Outcome[int]{Value: 42, HasValue: true}, out)
	})

	t.Run("trailing terminating is evaluated but discarded", func(t *testing.T) {
		r := &intRunner{env: map[string]int{}}
		out, err := RunStatements[int](ctx, block(discard(num(5))).Statements, r)
		require.NoError(t, err)
		assert.False(t, out.HasValue)
		assert.Equal(t, []string{"5"}, r.evaluated)
	})

	t.Run("later statements clear an earlier candidate", func(t *testing.T) {
		r := &intRunner{env: map[string]int{}}
		out, err := RunStatements[int](ctx, block(
			yield(num(1)),
			&Let{Name: ident("y"), Value: num(2)},
		).Statements, r)
		require.NoError(t, err)
		assert.False(t, out.HasValue)
		assert.Equal(t, 2, r.env["y"])
	})

	t.Run("return stops the sequence", func(t *testing.T) {
		r := &intRunner{env: map[string]int{}}
		out, err := RunStatements[int](ctx, block(
			&Return{Value: num(7)},
			yield(num(1)),
		).Statements, r)
		require.NoError(t, err)
		assert.Equal(t, Outcome[int]{Value: 7, HasValue: true, Returned: true}, out)
		assert.Equal(t, []string{"7"}, r.evaluated)
	})

	t.Run("bare return has no value", func(t *testing.T) {
		out, err := RunStatements[int](ctx, block(&Return{}).Statements, &intRunner{env: map[string]int{}})
		require.NoError(t, err)
		assert.Equal(t, Outcome[int]{Returned: true}, out)
	})

	t.Run("errors carry the statement index", func(t *testing.T) {
		r := &intRunner{env: map[string]int{}, failOn: "bad"}
		_, err := RunStatements[int](ctx, block(
			discard(num(1)),
			yield(ident("bad")),
			yield(num(3)),
		).Statements, r)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errBoom))
		assert.Contains(t, err.Error(), "statement 1")
		assert.Equal(t, []string{"1", "bad"}, r.evaluated)
	})

	t.Run("deterministic", func(t *testing.T) {
		stmts := block(&Let{Name: ident("x"), Value: num(2)}, yield(ident("x"))).Statements
		first, err := RunStatements[int](ctx, stmts, &intRunner{env: map[string]int{}})
		require.NoError(t, err)
		second, err := RunStatements[int](ctx, stmts, &intRunner{env: map[string]int{}})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
