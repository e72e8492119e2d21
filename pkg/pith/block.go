package pith

import (
	"context"

	"github.com/pkg/errors"
)

// Block is a sequence of statements that is also an expression. Its value is
// the value of its last statement when that statement is *NonTerminating;
// otherwise the block yields no value.
type Block struct {
	Statements []Statement
}

var _ Expression = (*Block)(nil)

func (b *Block) expressionNode() {}

func (b *Block) Walk(fn func(Node) bool) {
	if !fn(b) {
		return
	}
	for _, stmt := range b.Statements {
		Walk(stmt, fn)
	}
}

func (b *Block) Equal(other Node) bool {
	o, ok := other.(*Block)
	if !ok || b == nil || o == nil {
		return ok && b == o
	}
	return equalStatements(b.Statements, o.Statements)
}

// Result returns the expression whose value the block yields, or nil if the
// block yields no value: it is empty, or it ends in a Let, a Return or a
// Terminating statement.
func (b *Block) Result() Expression {
	return resultOf(b.Statements)
}

// Yields reports whether the block produces a value.
func (b *Block) Yields() bool {
	return b.Result() != nil
}

func resultOf(stmts []Statement) Expression {
	if len(stmts) == 0 {
		return nil
	}
	last, ok := stmts[len(stmts)-1].(*NonTerminating)
	if !ok {
		return nil
	}
	return last.Value
}

// StatementRunner is implemented by evaluators to plug their own semantics
// into RunStatements.
type StatementRunner[V any] interface {
	// Let binds the statement's name.
	Let(ctx context.Context, stmt *Let) error
	// Return evaluates the returned value, if any.
	Return(ctx context.Context, stmt *Return) (V, error)
	// Eval evaluates an expression statement's expression.
	Eval(ctx context.Context, expr Expression) (V, error)
}

// Outcome is the result of running a statement sequence.
type Outcome[V any] struct {
	// Value is the sequence's value. It is only meaningful if HasValue is set.
	Value    V
	HasValue bool

	// Returned is set when a Return statement stopped the sequence. The
	// enclosing function, not the block, decides what to do with it.
	Returned bool
}

// RunStatements evaluates stmts in order using r and applies the block result
// rule: every statement is evaluated, but only a trailing NonTerminating
// statement contributes the sequence's value. A Return stops the sequence
// immediately.
func RunStatements[V any](ctx context.Context, stmts []Statement, r StatementRunner[V]) (Outcome[V], error) {
	var out Outcome[V]
	for i, stmt := range stmts {
		// each statement replaces the previous candidate result
		out = Outcome[V]{}

		switch s := stmt.(type) {
		case *Let:
			if err := r.Let(ctx, s); err != nil {
				return Outcome[V]{}, errors.Wrapf(err, "statement %d", i)
			}
		case *Return:
			val, err := r.Return(ctx, s)
			if err != nil {
				return Outcome[V]{}, errors.Wrapf(err, "statement %d", i)
			}
			return Outcome[V]{
				Value:    val,
				HasValue: s.Value != nil,
				Returned: true,
			}, nil
		case *Terminating:
			if _, err := r.Eval(ctx, s.Value); err != nil {
				return Outcome[V]{}, errors.Wrapf(err, "statement %d", i)
			}
		case *NonTerminating:
			val, err := r.Eval(ctx, s.Value)
			if err != nil {
				return Outcome[V]{}, errors.Wrapf(err, "statement %d", i)
			}
			out.Value = val
			out.HasValue = true
		default:
			return Outcome[V]{}, errors.Errorf("statement %d: unhandled statement type %T", i, stmt)
		}
	}
	return out, nil
}
