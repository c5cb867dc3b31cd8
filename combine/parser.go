package combine

// Success pairs a parsed value with the unconsumed remainder of the input.
type Success[T any] struct {
	Val  T
	Rest Input
}

// Parser consumes a prefix of the input and produces a value. A failing
// parser leaves the input untouched from the caller's point of view.
type Parser[T any] func(Input) (Success[T], *Error)

// Parse runs the parser and returns a plain error suitable for callers.
func (p Parser[T]) Parse(in Input) (Success[T], error) {
	res, perr := p(in)
	if perr != nil {
		return Success[T]{}, perr
	}
	return res, nil
}

// ParseAll runs the parser over src and requires every byte to be consumed.
func (p Parser[T]) ParseAll(src string) (T, error) {
	var zero T
	res, perr := p(NewInput(src))
	if perr != nil {
		return zero, perr
	}
	if !res.Rest.Empty() {
		return zero, failure(res.Rest, "end of input")
	}
	return res.Val, nil
}

// Pair is the result of sequencing two parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the result of Optional; OK reports whether the value was present.
type Maybe[T any] struct {
	Val T
	OK  bool
}
