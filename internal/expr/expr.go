// Package expr parses and evaluates integer arithmetic expressions using the
// combine parser library.
//
// Grammar, left-associative with the usual precedence:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := uint | '(' expr ')' | '-' factor
//
// Whitespace is permitted between any two tokens.
package expr

import "github.com/seqproc/seqproc/combine"

// Node is one node of a parsed expression tree.
type Node interface {
	node()
}

// Num is an unsigned integer literal.
type Num struct {
	Value uint64
}

// Neg is unary negation.
type Neg struct {
	X Node
}

// Binary is a left-associative binary operation; Op is one of + - * /.
type Binary struct {
	Op   byte
	L, R Node
}

func (Num) node()    {}
func (Neg) node()    {}
func (Binary) node() {}

var grammar = newGrammar()

// Parse parses one expression, requiring the whole input to be consumed.
func Parse(src string) (Node, error) {
	return grammar.ParseAll(src)
}

// lexeme skips leading whitespace before p.
func lexeme[T any](p combine.Parser[T]) combine.Parser[T] {
	return combine.Then(combine.Whitespace(), p)
}

func op(b byte) combine.Parser[byte] {
	return lexeme(combine.Just(b))
}

func newGrammar() combine.Parser[Node] {
	var expr combine.Parser[Node]
	exprRef := combine.Lazy(func() combine.Parser[Node] { return expr })

	number := combine.Map(lexeme(combine.Uint()), func(v uint64) Node {
		return Num{Value: v}
	})
	parens := combine.Between(op('('), exprRef, op(')'))

	var factor combine.Parser[Node]
	factorRef := combine.Lazy(func() combine.Parser[Node] { return factor })
	negated := combine.Map(combine.Then(op('-'), factorRef), func(x Node) Node {
		return Neg{X: x}
	})
	factor = combine.Choice(number, parens, negated)

	term := binaryChain(factor, op('*').Or(op('/')))
	expr = binaryChain(term, op('+').Or(op('-')))

	return combine.ThenSkip(expr, combine.Whitespace())
}

// binaryChain folds `operand (op operand)*` into a left-leaning tree.
func binaryChain(operand combine.Parser[Node], operator combine.Parser[byte]) combine.Parser[Node] {
	tail := combine.Many(combine.Seq(operator, operand))
	chain := combine.Seq(operand, tail)
	return combine.Map(chain, func(p combine.Pair[Node, []combine.Pair[byte, Node]]) Node {
		out := p.First
		for _, next := range p.Second {
			out = Binary{Op: next.First, L: out, R: next.Second}
		}
		return out
	})
}
