package pith

// Identifier is a name reference. It is also a Callable, and the only node
// allowed as a Let name or a function parameter.
type Identifier struct {
	Value string
}

var _ Node = (*Identifier)(nil)
var _ Expression = (*Identifier)(nil)
var _ Callable = (*Identifier)(nil)

func (i *Identifier) expressionNode() {}
func (i *Identifier) callableNode()   {}

func (i *Identifier) Walk(fn func(Node) bool) {
	fn(i)
}

func (i *Identifier) Equal(other Node) bool {
	o, ok := other.(*Identifier)
	if !ok || i == nil || o == nil {
		return ok && i == o
	}
	return i.Value == o.Value
}

// Int represents an integer literal
type Int struct {
	Value int
}

var _ Expression = (*Int)(nil)

func (i *Int) expressionNode() {}

func (i *Int) Walk(fn func(Node) bool) {
	fn(i)
}

func (i *Int) Equal(other Node) bool {
	o, ok := other.(*Int)
	if !ok || i == nil || o == nil {
		return ok && i == o
	}
	return i.Value == o.Value
}

// Boolean represents a boolean literal
type Boolean struct {
	Value bool
}

var _ Expression = (*Boolean)(nil)

func (b *Boolean) expressionNode() {}

func (b *Boolean) Walk(fn func(Node) bool) {
	fn(b)
}

func (b *Boolean) Equal(other Node) bool {
	o, ok := other.(*Boolean)
	if !ok || b == nil || o == nil {
		return ok && b == o
	}
	return b.Value == o.Value
}

// NoneLiteral is the literal "no value" marker, written `none`.
type NoneLiteral struct{}

var _ Expression = (*NoneLiteral)(nil)

func (n *NoneLiteral) expressionNode() {}

func (n *NoneLiteral) Walk(fn func(Node) bool) {
	fn(n)
}

func (n *NoneLiteral) Equal(other Node) bool {
	o, ok := other.(*NoneLiteral)
	if !ok || n == nil || o == nil {
		return ok && n == o
	}
	return true
}
