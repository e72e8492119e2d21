package pith

// Let binds Name to the value of Value.
type Let struct {
	Name  *Identifier
	Value Expression
}

var _ Statement = (*Let)(nil)

func (l *Let) statementNode() {}

func (l *Let) Walk(fn func(Node) bool) {
	if !fn(l) {
		return
	}
	Walk(l.Name, fn)
	Walk(l.Value, fn)
}

func (l *Let) Equal(other Node) bool {
	o, ok := other.(*Let)
	if !ok || l == nil || o == nil {
		return ok && l == o
	}
	return l.Name.Equal(o.Name) && Equal(l.Value, o.Value)
}

// Return exits the enclosing function. A nil Value returns no value, which
// is kept distinct from returning an explicit `none`.
type Return struct {
	Value Expression
}

var _ Statement = (*Return)(nil)

func (r *Return) statementNode() {}

func (r *Return) Walk(fn func(Node) bool) {
	if fn(r) {
		Walk(r.Value, fn)
	}
}

func (r *Return) Equal(other Node) bool {
	o, ok := other.(*Return)
	if !ok || r == nil || o == nil {
		return ok && r == o
	}
	return Equal(r.Value, o.Value)
}

// ExpressionStatement is an expression used as a statement: *Terminating or
// *NonTerminating, depending on whether the source had a trailing separator.
type ExpressionStatement interface {
	Statement
	// Expr returns the wrapped expression.
	Expr() Expression
	expressionStatementNode()
}

// Terminating is an expression statement written with a trailing separator.
// Its value is evaluated and discarded.
type Terminating struct {
	Value Expression
}

var _ ExpressionStatement = (*Terminating)(nil)

func (t *Terminating) statementNode()           {}
func (t *Terminating) expressionStatementNode() {}

func (t *Terminating) Expr() Expression { return t.Value }

func (t *Terminating) Walk(fn func(Node) bool) {
	if fn(t) {
		Walk(t.Value, fn)
	}
}

func (t *Terminating) Equal(other Node) bool {
	o, ok := other.(*Terminating)
	if !ok || t == nil || o == nil {
		return ok && t == o
	}
	return Equal(t.Value, o.Value)
}

// NonTerminating is an expression statement written without a trailing
// separator. When it is the last statement of a block, its value is the
// block's value; anywhere else the tag is kept but has no effect.
type NonTerminating struct {
	Value Expression
}

var _ ExpressionStatement = (*NonTerminating)(nil)

func (n *NonTerminating) statementNode()           {}
func (n *NonTerminating) expressionStatementNode() {}

func (n *NonTerminating) Expr() Expression { return n.Value }

func (n *NonTerminating) Walk(fn func(Node) bool) {
	if fn(n) {
		Walk(n.Value, fn)
	}
}

func (n *NonTerminating) Equal(other Node) bool {
	o, ok := other.(*NonTerminating)
	if !ok || n == nil || o == nil {
		return ok && n == o
	}
	return Equal(n.Value, o.Value)
}
