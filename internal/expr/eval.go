package expr

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivideByZero    = errors.New("expr: divide by zero")
	ErrLiteralTooLarge = errors.New("expr: integer literal overflows int64")
)

// Eval evaluates a parsed expression tree with int64 arithmetic.
func Eval(n Node) (int64, error) {
	switch v := n.(type) {
	case Num:
		if v.Value > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d", ErrLiteralTooLarge, v.Value)
		}
		return int64(v.Value), nil
	case Neg:
		x, err := Eval(v.X)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case Binary:
		l, err := Eval(v.L)
		if err != nil {
			return 0, err
		}
		r, err := Eval(v.R)
		if err != nil {
			return 0, err
		}
		switch v.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, ErrDivideByZero
			}
			return l / r, nil
		}
		return 0, fmt.Errorf("expr: unknown operator %q", rune(v.Op))
	}
	return 0, fmt.Errorf("expr: unknown node %T", n)
}

// EvalString parses src and evaluates the result in one step.
func EvalString(src string) (int64, error) {
	node, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return Eval(node)
}
