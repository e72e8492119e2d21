package pith

// Callable is an expression allowed in call position: *Identifier or
// *Function. No other expression implements it, so a Call whose callee is,
// say, another Call cannot be constructed.
type Callable interface {
	Expression
	callableNode()
}

// Function is an anonymous function literal.
type Function struct {
	// Parameters are not required to be unique.
	Parameters []*Identifier
	Body       *Block
}

var _ Expression = (*Function)(nil)
var _ Callable = (*Function)(nil)

func (f *Function) expressionNode() {}
func (f *Function) callableNode()   {}

func (f *Function) Walk(fn func(Node) bool) {
	if !fn(f) {
		return
	}
	for _, param := range f.Parameters {
		Walk(param, fn)
	}
	Walk(f.Body, fn)
}

func (f *Function) Equal(other Node) bool {
	o, ok := other.(*Function)
	if !ok || f == nil || o == nil {
		return ok && f == o
	}
	if len(f.Parameters) != len(o.Parameters) {
		return false
	}
	for i, param := range f.Parameters {
		if !param.Equal(o.Parameters[i]) {
			return false
		}
	}
	return f.Body.Equal(o.Body)
}

// If is a conditional expression. A nil Alternative means there is no else
// branch, which is not the same as an empty one.
type If struct {
	Condition   Expression
	Consequence *Block
	Alternative *Block
}

var _ Expression = (*If)(nil)

func (c *If) expressionNode() {}

func (c *If) Walk(fn func(Node) bool) {
	if !fn(c) {
		return
	}
	Walk(c.Condition, fn)
	Walk(c.Consequence, fn)
	Walk(c.Alternative, fn)
}

func (c *If) Equal(other Node) bool {
	o, ok := other.(*If)
	if !ok || c == nil || o == nil {
		return ok && c == o
	}
	return Equal(c.Condition, o.Condition) &&
		c.Consequence.Equal(o.Consequence) &&
		c.Alternative.Equal(o.Alternative)
}

// Call applies a callable to arguments.
type Call struct {
	Function  Callable
	Arguments []Expression
}

var _ Expression = (*Call)(nil)

func (c *Call) expressionNode() {}

func (c *Call) Walk(fn func(Node) bool) {
	if !fn(c) {
		return
	}
	Walk(c.Function, fn)
	for _, arg := range c.Arguments {
		Walk(arg, fn)
	}
}

func (c *Call) Equal(other Node) bool {
	o, ok := other.(*Call)
	if !ok || c == nil || o == nil {
		return ok && c == o
	}
	if !Equal(c.Function, o.Function) {
		return false
	}
	return equalExpressions(c.Arguments, o.Arguments)
}

// Prefix applies a unary operator.
type Prefix struct {
	Operator PrefixOperator
	Right    Expression
}

var _ Expression = (*Prefix)(nil)

func (p *Prefix) expressionNode() {}

func (p *Prefix) Walk(fn func(Node) bool) {
	if fn(p) {
		Walk(p.Right, fn)
	}
}

func (p *Prefix) Equal(other Node) bool {
	o, ok := other.(*Prefix)
	if !ok || p == nil || o == nil {
		return ok && p == o
	}
	return p.Operator == o.Operator && Equal(p.Right, o.Right)
}

// Infix applies a binary operator. Precedence has already been resolved by
// the shape of the tree.
type Infix struct {
	Left     Expression
	Operator InfixOperator
	Right    Expression
}

var _ Expression = (*Infix)(nil)

func (i *Infix) expressionNode() {}

func (i *Infix) Walk(fn func(Node) bool) {
	if !fn(i) {
		return
	}
	Walk(i.Left, fn)
	Walk(i.Right, fn)
}

func (i *Infix) Equal(other Node) bool {
	o, ok := other.(*Infix)
	if !ok || i == nil || o == nil {
		return ok && i == o
	}
	return i.Operator == o.Operator &&
		Equal(i.Left, o.Left) &&
		Equal(i.Right, o.Right)
}
