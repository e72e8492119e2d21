// Package pith defines the syntax tree of the Pith scripting language.
//
// A tree is built once by a parser and never mutated afterwards. Every
// recursive field is owned by exactly one parent, so trees can be compared
// structurally with Equal and traversed concurrently by read-only passes.
//
// Statement, Expression, ExpressionStatement and Callable are closed sets:
// each is sealed with an unexported marker method, so only the node types in
// this package implement them. Consumers are expected to type switch over
// every variant.
package pith

import "reflect"

// Node is implemented by the Program and by every statement and expression.
type Node interface {
	// Walk recursively visits this node and all its children, calling fn for each node.
	// The callback returns true to continue walking into children, false to skip children.
	Walk(fn func(Node) bool)

	// Equal reports whether other is structurally identical to this node.
	Equal(other Node) bool
}

// Statement is a single statement: *Let, *Return, *Terminating or
// *NonTerminating.
type Statement interface {
	Node
	statementNode()
}

// Expression is any value-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every tree.
type Program struct {
	Statements []Statement
}

var _ Node = (*Program)(nil)

func (p *Program) Walk(fn func(Node) bool) {
	if !fn(p) {
		return
	}
	for _, stmt := range p.Statements {
		Walk(stmt, fn)
	}
}

func (p *Program) Equal(other Node) bool {
	o, ok := other.(*Program)
	if !ok || p == nil || o == nil {
		return ok && p == o
	}
	return equalStatements(p.Statements, o.Statements)
}

// Result returns the expression whose value the program evaluates to, using
// the same rule as Block.Result.
func (p *Program) Result() Expression {
	return resultOf(p.Statements)
}

// Walk visits node depth first in source order. It is a nil-safe shorthand
// for node.Walk(fn).
func Walk(node Node, fn func(Node) bool) {
	if missing(node) {
		return
	}
	node.Walk(fn)
}

// missing reports whether node is absent, including a typed nil pointer such
// as a nil *Identifier stored in a Node.
func missing(node Node) bool {
	if node == nil {
		return true
	}
	rv := reflect.ValueOf(node)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var children []Node
	Walk(node, func(n Node) bool {
		if n == node {
			return true
		}
		children = append(children, n)
		return false
	})
	return children
}
