package pith

import (
	"bytes"
	"fmt"
	"strconv"
)

const (
	indentString = "\t"
	missingText  = "<missing>"
)

// Formatter renders syntax trees as canonical Pith source.
type Formatter struct {
	buf    bytes.Buffer
	indent int

	// IndentString is written once per nesting level. Defaults to a tab.
	IndentString string
}

// Format formats a node and returns the formatted source code
func Format(node Node) string {
	f := &Formatter{}
	return f.Format(node)
}

// Format renders node. A Program renders one statement per line followed by
// a newline; any other node renders without a trailing newline.
func (f *Formatter) Format(node Node) string {
	f.buf.Reset()
	f.indent = 0
	if f.IndentString == "" {
		f.IndentString = indentString
	}
	f.formatNode(node)
	return f.buf.String()
}

func (f *Formatter) formatNode(node Node) {
	if missing(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			f.formatStatement(stmt)
			f.buf.WriteByte('\n')
		}
	case Statement:
		f.formatStatement(n)
	case Expression:
		f.formatExpression(n)
	default:
		panic(fmt.Sprintf("Formatter.formatNode: unhandled node type %T", node))
	}
}

func (f *Formatter) formatStatement(stmt Statement) {
	if missing(stmt) {
		f.buf.WriteString(missingText)
		return
	}
	switch s := stmt.(type) {
	case *Let:
		f.buf.WriteString("let ")
		f.formatExpression(s.Name)
		f.buf.WriteString(" = ")
		f.formatExpression(s.Value)
		f.buf.WriteByte(';')
	case *Return:
		f.buf.WriteString("return")
		if s.Value != nil {
			f.buf.WriteByte(' ')
			f.formatExpression(s.Value)
		}
		f.buf.WriteByte(';')
	case *Terminating:
		f.formatExpression(s.Value)
		f.buf.WriteByte(';')
	case *NonTerminating:
		f.formatExpression(s.Value)
	default:
		panic(fmt.Sprintf("Formatter.formatStatement: unhandled statement type %T", stmt))
	}
}

func (f *Formatter) formatExpression(expr Expression) {
	// only hand-built trees with absent required fields reach this
	if missing(expr) {
		f.buf.WriteString(missingText)
		return
	}
	switch e := expr.(type) {
	case *Identifier:
		f.buf.WriteString(e.Value)
	case *Int:
		f.buf.WriteString(strconv.Itoa(e.Value))
	case *Boolean:
		f.buf.WriteString(strconv.FormatBool(e.Value))
	case *NoneLiteral:
		f.buf.WriteString("none")
	case *Function:
		f.buf.WriteString("fn(")
		for i, param := range e.Parameters {
			if i > 0 {
				f.buf.WriteString(", ")
			}
			f.formatExpression(param)
		}
		f.buf.WriteString(") ")
		f.formatBlock(e.Body)
	case *If:
		f.buf.WriteString("if ")
		f.formatCondition(e.Condition)
		f.buf.WriteByte(' ')
		f.formatBlock(e.Consequence)
		if e.Alternative != nil {
			f.buf.WriteString(" else ")
			f.formatBlock(e.Alternative)
		}
	case *Call:
		f.formatExpression(e.Function)
		f.buf.WriteByte('(')
		for i, arg := range e.Arguments {
			if i > 0 {
				f.buf.WriteString(", ")
			}
			f.formatExpression(arg)
		}
		f.buf.WriteByte(')')
	case *Block:
		f.formatBlock(e)
	case *Prefix:
		f.buf.WriteByte('(')
		f.buf.WriteString(e.Operator.String())
		f.formatExpression(e.Right)
		f.buf.WriteByte(')')
	case *Infix:
		f.buf.WriteByte('(')
		f.formatExpression(e.Left)
		f.buf.WriteByte(' ')
		f.buf.WriteString(e.Operator.String())
		f.buf.WriteByte(' ')
		f.formatExpression(e.Right)
		f.buf.WriteByte(')')
	default:
		panic(fmt.Sprintf("Formatter.formatExpression: unhandled expression type %T", expr))
	}
}

// formatCondition parenthesises the condition unless it already renders with
// its own parentheses.
func (f *Formatter) formatCondition(cond Expression) {
	switch cond.(type) {
	case *Infix, *Prefix:
		f.formatExpression(cond)
	default:
		f.buf.WriteByte('(')
		f.formatExpression(cond)
		f.buf.WriteByte(')')
	}
}

func (f *Formatter) formatBlock(b *Block) {
	if b == nil {
		f.buf.WriteString(missingText)
		return
	}
	if len(b.Statements) == 0 {
		f.buf.WriteString("{}")
		return
	}
	f.buf.WriteString("{\n")
	f.indent++
	for _, stmt := range b.Statements {
		f.writeIndent()
		f.formatStatement(stmt)
		f.buf.WriteByte('\n')
	}
	f.indent--
	f.writeIndent()
	f.buf.WriteByte('}')
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.buf.WriteString(f.IndentString)
	}
}
