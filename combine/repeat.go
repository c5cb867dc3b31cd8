package combine

// Many applies p zero or more times, collecting the values. A match that
// consumes no input ends the loop so repetition always terminates.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) (Success[[]T], *Error) {
		out := make([]T, 0)
		cur := in
		for {
			res, perr := p(cur)
			if perr != nil || res.Rest.Offset() == cur.Offset() {
				return Success[[]T]{Val: out, Rest: cur}, nil
			}
			out = append(out, res.Val)
			cur = res.Rest
		}
	}
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	tail := Many(p)
	return func(in Input) (Success[[]T], *Error) {
		first, perr := p(in)
		if perr != nil {
			return Success[[]T]{}, perr
		}
		more, _ := tail(first.Rest)
		return Success[[]T]{
			Val:  append([]T{first.Val}, more.Val...),
			Rest: more.Rest,
		}, nil
	}
}

// SepBy matches zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	one := SepBy1(p, sep)
	return func(in Input) (Success[[]T], *Error) {
		res, perr := one(in)
		if perr != nil {
			return Success[[]T]{Val: []T{}, Rest: in}, nil
		}
		return res, nil
	}
}

// SepBy1 matches one or more p separated by sep. A trailing separator is not
// consumed.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	tail := Many(Then(sep, p))
	return func(in Input) (Success[[]T], *Error) {
		first, perr := p(in)
		if perr != nil {
			return Success[[]T]{}, perr
		}
		more, _ := tail(first.Rest)
		return Success[[]T]{
			Val:  append([]T{first.Val}, more.Val...),
			Rest: more.Rest,
		}, nil
	}
}

// Between matches open, p, close and keeps p's value.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return ThenSkip(Then(open, p), close)
}
