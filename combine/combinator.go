package combine

import "sync"

// Or tries p, then q from the same position. When both fail the deeper of the
// two failures is reported.
func Or[T any](p, q Parser[T]) Parser[T] {
	return func(in Input) (Success[T], *Error) {
		res, perr := p(in)
		if perr == nil {
			return res, nil
		}
		res, qerr := q(in)
		if qerr == nil {
			return res, nil
		}
		return Success[T]{}, mergeErr(perr, qerr)
	}
}

// Or is the method form, for chained grammars: p.Or(q).Or(r).
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return Or(p, q)
}

// Choice is ordered choice over any number of alternatives.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("combine: Choice needs at least one parser")
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Or(out, p)
	}
	return out
}

// Map transforms the parsed value.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) (Success[U], *Error) {
		res, perr := p(in)
		if perr != nil {
			return Success[U]{}, perr
		}
		return Success[U]{Val: f(res.Val), Rest: res.Rest}, nil
	}
}

// Into discards the parsed value and substitutes v.
func Into[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Seq runs p then q, pairing their results.
func Seq[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(in Input) (Success[Pair[A, B]], *Error) {
		ra, perr := p(in)
		if perr != nil {
			return Success[Pair[A, B]]{}, perr
		}
		rb, qerr := q(ra.Rest)
		if qerr != nil {
			return Success[Pair[A, B]]{}, qerr
		}
		return Success[Pair[A, B]]{
			Val:  Pair[A, B]{First: ra.Val, Second: rb.Val},
			Rest: rb.Rest,
		}, nil
	}
}

// Then runs p then q, keeping q's value.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Seq(p, q), func(pr Pair[A, B]) B { return pr.Second })
}

// ThenSkip runs p then q, keeping p's value.
func ThenSkip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Seq(p, q), func(pr Pair[A, B]) A { return pr.First })
}

// Optional tries p and succeeds either way; the Maybe reports presence.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(in Input) (Success[Maybe[T]], *Error) {
		res, perr := p(in)
		if perr != nil {
			return Success[Maybe[T]]{Val: Maybe[T]{}, Rest: in}, nil
		}
		return Success[Maybe[T]]{Val: Maybe[T]{Val: res.Val, OK: true}, Rest: res.Rest}, nil
	}
}

// Filter fails the parse when pred rejects the parsed value. The failure is
// reported at the position p started from.
func Filter[T any](p Parser[T], pred func(T) bool, label string) Parser[T] {
	return func(in Input) (Success[T], *Error) {
		res, perr := p(in)
		if perr != nil {
			return res, perr
		}
		if !pred(res.Val) {
			return Success[T]{}, failure(in, label)
		}
		return res, nil
	}
}

// Label rewrites the expected-description of p's failures.
func Label[T any](p Parser[T], name string) Parser[T] {
	return func(in Input) (Success[T], *Error) {
		res, perr := p(in)
		if perr != nil {
			return Success[T]{}, &Error{Offset: perr.Offset, Expected: name, Found: perr.Found}
		}
		return res, nil
	}
}

// Lazy defers parser construction until first use so grammars can refer to
// themselves. The build function runs at most once; the resulting parser is
// safe for concurrent use.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(in Input) (Success[T], *Error) {
		once.Do(func() { p = build() })
		return p(in)
	}
}
