package pith

import (
	"fmt"
	"slices"
)

// Check rule codes.
const (
	CodeInertNonTerminating    = "inert-non-terminating"
	CodeEmptyIdentifier        = "empty-identifier"
	CodeDuplicateParameter     = "duplicate-parameter"
	CodeUnreachableAfterReturn = "unreachable-after-return"
)

// CheckCodes lists every rule Check knows about.
var CheckCodes = []string{
	CodeInertNonTerminating,
	CodeEmptyIdentifier,
	CodeDuplicateParameter,
	CodeUnreachableAfterReturn,
}

// Diagnostic is an advisory finding about a well-formed tree.
type Diagnostic struct {
	Code    string
	Message string
	// Path uses the same syntax as DecodeError.Path.
	Path string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", displayPath(d.Path), d.Code, d.Message)
}

// CheckConfig selects which rules run.
type CheckConfig struct {
	// Disable lists rule codes to skip.
	Disable []string `toml:"disable,omitempty"`
}

func (c CheckConfig) enabled(code string) bool {
	return !slices.Contains(c.Disable, code)
}

// Check reports shapes the tree permits but a parser would normally not
// produce. It never modifies prog.
func Check(prog *Program) []Diagnostic {
	return CheckConfig{}.Check(prog)
}

// Check runs the enabled rules over prog.
func (c CheckConfig) Check(prog *Program) []Diagnostic {
	if prog == nil {
		return nil
	}
	ch := &checker{config: c}
	ch.statements(prog.Statements, "/statements")
	return ch.diags
}

type checker struct {
	config CheckConfig
	diags  []Diagnostic
}

func (ch *checker) report(code, path, format string, args ...any) {
	if !ch.config.enabled(code) {
		return
	}
	ch.diags = append(ch.diags, Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	})
}

func (ch *checker) statements(stmts []Statement, path string) {
	returned := false
	for i, stmt := range stmts {
		stmtPath := fmt.Sprintf("%s/%d", path, i)
		if returned {
			ch.report(CodeUnreachableAfterReturn, stmtPath, "statement follows a return and is never evaluated")
		}
		if _, ok := stmt.(*NonTerminating); ok && i != len(stmts)-1 {
			ch.report(CodeInertNonTerminating, stmtPath, "value of non-terminating statement is discarded because it is not last")
		}
		if _, ok := stmt.(*Return); ok {
			returned = true
		}
		ch.statement(stmt, stmtPath)
	}
}

func (ch *checker) statement(stmt Statement, path string) {
	if missing(stmt) {
		return
	}
	switch s := stmt.(type) {
	case *Let:
		ch.expression(s.Name, path+"/name")
		ch.expression(s.Value, path+"/value")
	case *Return:
		ch.expression(s.Value, path+"/value")
	case *Terminating:
		ch.expression(s.Value, path+"/value")
	case *NonTerminating:
		ch.expression(s.Value, path+"/value")
	}
}

func (ch *checker) expression(expr Expression, path string) {
	if missing(expr) {
		return
	}
	switch e := expr.(type) {
	case *Identifier:
		if e.Value == "" {
			ch.report(CodeEmptyIdentifier, path, "identifier has no name")
		}
	case *Int, *Boolean, *NoneLiteral:
	case *Function:
		seen := map[string]bool{}
		for i, param := range e.Parameters {
			paramPath := fmt.Sprintf("%s/parameters/%d", path, i)
			ch.expression(param, paramPath)
			if param == nil || param.Value == "" {
				continue
			}
			if seen[param.Value] {
				ch.report(CodeDuplicateParameter, paramPath, "parameter %q is declared more than once", param.Value)
			}
			seen[param.Value] = true
		}
		ch.block(e.Body, path+"/body")
	case *If:
		ch.expression(e.Condition, path+"/condition")
		ch.block(e.Consequence, path+"/consequence")
		ch.block(e.Alternative, path+"/alternative")
	case *Call:
		ch.expression(e.Function, path+"/function")
		for i, arg := range e.Arguments {
			ch.expression(arg, fmt.Sprintf("%s/arguments/%d", path, i))
		}
	case *Block:
		ch.statements(e.Statements, path+"/statements")
	case *Prefix:
		ch.expression(e.Right, path+"/right")
	case *Infix:
		ch.expression(e.Left, path+"/left")
		ch.expression(e.Right, path+"/right")
	}
}

func (ch *checker) block(b *Block, path string) {
	if b != nil {
		ch.statements(b.Statements, path+"/statements")
	}
}
