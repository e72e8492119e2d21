package pith

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownOperator is returned when a symbol names no operator.
var ErrUnknownOperator = errors.New("unknown operator")

// PrefixOperator is the operator of a Prefix expression.
type PrefixOperator int

const (
	PrefixBang PrefixOperator = iota
	PrefixMinus

	numPrefixOperators
)

var prefixSymbols = [numPrefixOperators]string{
	PrefixBang:  "!",
	PrefixMinus: "-",
}

// PrefixOperators lists every prefix operator.
func PrefixOperators() []PrefixOperator {
	ops := make([]PrefixOperator, 0, numPrefixOperators)
	for op := PrefixOperator(0); op < numPrefixOperators; op++ {
		ops = append(ops, op)
	}
	return ops
}

// IsValid reports whether op is one of the declared prefix operators.
func (op PrefixOperator) IsValid() bool {
	return op >= 0 && op < numPrefixOperators
}

// String returns the canonical symbol for op.
func (op PrefixOperator) String() string {
	if !op.IsValid() {
		return fmt.Sprintf("PrefixOperator(%d)", int(op))
	}
	return prefixSymbols[op]
}

// Arity is always 1.
func (op PrefixOperator) Arity() int { return 1 }

func (op PrefixOperator) MarshalText() ([]byte, error) {
	if !op.IsValid() {
		return nil, errors.Wrapf(ErrUnknownOperator, "prefix operator %d", int(op))
	}
	return []byte(prefixSymbols[op]), nil
}

func (op *PrefixOperator) UnmarshalText(text []byte) error {
	parsed, err := ParsePrefixOperator(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// ParsePrefixOperator returns the prefix operator rendered as symbol.
func ParsePrefixOperator(symbol string) (PrefixOperator, error) {
	for op, sym := range prefixSymbols {
		if sym == symbol {
			return PrefixOperator(op), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOperator, "prefix %q", symbol)
}

// InfixOperator is the operator of an Infix expression.
type InfixOperator int

const (
	InfixPlus InfixOperator = iota
	InfixMinus
	InfixAsterisk
	InfixSlash
	InfixEqual
	InfixNotEqual
	InfixLessThan
	InfixGreaterThan

	numInfixOperators
)

var infixSymbols = [numInfixOperators]string{
	InfixPlus:        "+",
	InfixMinus:       "-",
	InfixAsterisk:    "*",
	InfixSlash:       "/",
	InfixEqual:       "==",
	InfixNotEqual:    "!=",
	InfixLessThan:    "<",
	InfixGreaterThan: ">",
}

// InfixOperators lists every infix operator.
func InfixOperators() []InfixOperator {
	ops := make([]InfixOperator, 0, numInfixOperators)
	for op := InfixOperator(0); op < numInfixOperators; op++ {
		ops = append(ops, op)
	}
	return ops
}

// IsValid reports whether op is one of the declared infix operators.
func (op InfixOperator) IsValid() bool {
	return op >= 0 && op < numInfixOperators
}

// String returns the canonical symbol for op.
func (op InfixOperator) String() string {
	if !op.IsValid() {
		return fmt.Sprintf("InfixOperator(%d)", int(op))
	}
	return infixSymbols[op]
}

// Arity is always 2.
func (op InfixOperator) Arity() int { return 2 }

func (op InfixOperator) MarshalText() ([]byte, error) {
	if !op.IsValid() {
		return nil, errors.Wrapf(ErrUnknownOperator, "infix operator %d", int(op))
	}
	return []byte(infixSymbols[op]), nil
}

func (op *InfixOperator) UnmarshalText(text []byte) error {
	parsed, err := ParseInfixOperator(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// ParseInfixOperator returns the infix operator rendered as symbol.
func ParseInfixOperator(symbol string) (InfixOperator, error) {
	for op, sym := range infixSymbols {
		if sym == symbol {
			return InfixOperator(op), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOperator, "infix %q", symbol)
}
