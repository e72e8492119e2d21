package pith

import (
	"context"
	"os"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

func TestFormatGolden(t *testing.T) {
	golden.Assert(t, Format(sampleProgram()), "program.golden")
	golden.Assert(t, Format(nestedProgram()), "nested.golden")
}

type FormatSuite struct{}

func TestFormat(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(FormatSuite{})
}

func (FormatSuite) TestStatements(ctx context.Context, t *testctx.T) {
	for _, tc := range []struct {
		name string
		stmt Statement
		want string
	}{
		{"let", &Let{Name: ident("x"), Value: num(1)}, "let x = 1;"},
		{"return with value", &Return{Value: ident("x")}, "return x;"},
		{"bare return", &Return{}, "return;"},
		{"terminating", discard(num(5)), "5;"},
		{"non-terminating", yield(num(5)), "5"},
	} {
		t.Run(tc.name, func(ctx context.Context, t *testctx.T) {
			assert.Equal(t, tc.want, Format(tc.stmt))
		})
	}
}

func (FormatSuite) TestExpressions(ctx context.Context, t *testctx.T) {
	for _, tc := range []struct {
		name string
		expr Expression
		want string
	}{
		{"identifier", ident("foo"), "foo"},
		{"negative int", num(-3), "-3"},
		{"boolean", &Boolean{Value: false}, "false"},
		{"none", &NoneLiteral{}, "none"},
		{"prefix", &Prefix{Operator: PrefixBang, Right: &Boolean{Value: true}}, "(!true)"},
		{"nested infix", infix(infix(num(1), InfixMinus, num(2)), InfixNotEqual, num(3)), "((1 - 2) != 3)"},
		{"call without arguments", &Call{Function: ident("f")}, "f()"},
		{"function without parameters", &Function{Body: &Block{}}, "fn() {}"},
		{"if without else", &If{Condition: &Boolean{Value: true}, Consequence: &Block{}}, "if (true) {}"},
		{"if with empty else", &If{Condition: ident("c"), Consequence: &Block{}, Alternative: &Block{}}, "if (c) {} else {}"},
		{"missing operand", &Prefix{Operator: PrefixMinus}, "(-<missing>)"},
	} {
		t.Run(tc.name, func(ctx context.Context, t *testctx.T) {
			assert.Equal(t, tc.want, Format(tc.expr))
		})
	}
}

func (FormatSuite) TestIndentString(ctx context.Context, t *testctx.T) {
	f := FormatConfig{Indent: "  "}.Formatter()
	out := f.Format(&Program{Statements: []Statement{
		yield(&Function{Body: block(yield(block(yield(num(1)))))}),
	}})
	assert.Equal(t, "fn() {\n  {\n    1\n  }\n}\n", out)

	// reusable: state resets between calls
	assert.Equal(t, "fn() {}", f.Format(&Function{Body: &Block{}}))
}

func (FormatSuite) TestDistinguishesTerminators(ctx context.Context, t *testctx.T) {
	a := Format(block(discard(num(1))))
	b := Format(block(yield(num(1))))
	require.NotEqual(t, a, b)
	assert.Equal(t, "{\n\t1;\n}", a)
	assert.Equal(t, "{\n\t1\n}", b)
}

func (FormatSuite) TestMissingNodes(ctx context.Context, t *testctx.T) {
	for _, tc := range []struct {
		name string
		node Node
		want string
	}{
		{"let without name", &Let{Value: num(1)}, "let <missing> = 1;"},
		{"nil parameter", &Function{Parameters: []*Identifier{ident("a"), nil}, Body: &Block{}}, "fn(a, <missing>) {}"},
		{"function without body", &Function{}, "fn() <missing>"},
		{"if without consequence", &If{Condition: ident("c")}, "if (c) <missing>"},
		{"typed nil condition", &If{Condition: (*Infix)(nil), Consequence: &Block{}}, "if <missing> {}"},
		{"call without function", &Call{Arguments: []Expression{nil}}, "<missing>(<missing>)"},
		{"nil statement", block(nil, yield(num(1))), "{\n\t<missing>\n\t1\n}"},
		{"nil program statement", &Program{Statements: []Statement{nil}}, "<missing>\n"},
		{"typed nil program", (*Program)(nil), ""},
	} {
		t.Run(tc.name, func(ctx context.Context, t *testctx.T) {
			assert.Equal(t, tc.want, Format(tc.node))
		})
	}
}

func (FormatSuite) TestEmptyProgram(ctx context.Context, t *testctx.T) {
	assert.Equal(t, "", Format(&Program{}))
	assert.Equal(t, "", Format(nil))
}
