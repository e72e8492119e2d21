package pith

func ident(name string) *Identifier { return &Identifier{Value: name} }

func num(n int) *Int { return &Int{Value: n} }

func block(stmts ...Statement) *Block { return &Block{Statements: stmts} }

func infix(left Expression, op InfixOperator, right Expression) *Infix {
	return &Infix{Left: left, Operator: op, Right: right}
}

func yield(expr Expression) *NonTerminating { return &NonTerminating{Value: expr} }

func discard(expr Expression) *Terminating { return &Terminating{Value: expr} }

// sampleProgram builds a fresh tree covering every node type:
//
//	let add = fn(a, b) { a + b };
//	let result = add(1, 2 * 3);
//	if (result > 5) { true } else { return; }
//	fn(x) { -x }(1);
//	return none;
func sampleProgram() *Program {
	return &Program{
		Statements: []Statement{
			&Let{
				Name: ident("add"),
				Value: &Function{
					Parameters: []*Identifier{ident("a"), ident("b")},
					Body:       block(yield(infix(ident("a"), InfixPlus, ident("b")))),
				},
			},
			&Let{
				Name: ident("result"),
				Value: &Call{
					Function:  ident("add"),
					Arguments: []Expression{num(1), infix(num(2), InfixAsterisk, num(3))},
				},
			},
			yield(&If{
				Condition:   infix(ident("result"), InfixGreaterThan, num(5)),
				Consequence: block(yield(&Boolean{Value: true})),
				Alternative: block(&Return{}),
			}),
			discard(&Call{
				Function: &Function{
					Parameters: []*Identifier{ident("x")},
					Body:       block(yield(&Prefix{Operator: PrefixMinus, Right: ident("x")})),
				},
				Arguments: []Expression{num(1)},
			}),
			&Return{Value: &NoneLiteral{}},
		},
	}
}

// nestedProgram exercises empty and nested blocks:
//
//	let f = fn() {};
//	if (ok) {};
//	if (!ok) { let y = if (y) { none }; { 1; 2 } }
func nestedProgram() *Program {
	return &Program{
		Statements: []Statement{
			&Let{Name: ident("f"), Value: &Function{Body: &Block{}}},
			discard(&If{Condition: ident("ok"), Consequence: &Block{}}),
			yield(&If{
				Condition: &Prefix{Operator: PrefixBang, Right: ident("ok")},
				Consequence: block(
					&Let{
						Name: ident("y"),
						Value: &If{
							Condition:   ident("y"),
							Consequence: block(yield(&NoneLiteral{})),
						},
					},
					yield(block(discard(num(1)), yield(num(2)))),
				),
			}),
		},
	}
}
