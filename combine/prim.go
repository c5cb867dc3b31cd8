package combine

import (
	"fmt"
	"math"
)

// Just matches one exact byte.
func Just(b byte) Parser[byte] {
	return func(in Input) (Success[byte], *Error) {
		if got, ok := in.First(); ok && got == b {
			return Success[byte]{Val: b, Rest: in.Advance(1)}, nil
		}
		return Success[byte]{}, failure(in, fmt.Sprintf("%q", rune(b)))
	}
}

// JustRune matches one exact rune, consuming its UTF-8 encoding.
func JustRune(r rune) Parser[rune] {
	lit := string(r)
	return func(in Input) (Success[rune], *Error) {
		if in.HasPrefix(lit) {
			return Success[rune]{Val: r, Rest: in.Advance(len(lit))}, nil
		}
		return Success[rune]{}, failure(in, fmt.Sprintf("%q", r))
	}
}

// Token matches an exact literal string.
func Token(s string) Parser[string] {
	return func(in Input) (Success[string], *Error) {
		if in.HasPrefix(s) {
			return Success[string]{Val: s, Rest: in.Advance(len(s))}, nil
		}
		return Success[string]{}, failure(in, fmt.Sprintf("%q", s))
	}
}

// Satisfy matches one byte for which pred holds. The label names the byte
// class in failure messages.
func Satisfy(pred func(byte) bool, label string) Parser[byte] {
	return func(in Input) (Success[byte], *Error) {
		if b, ok := in.First(); ok && pred(b) {
			return Success[byte]{Val: b, Rest: in.Advance(1)}, nil
		}
		return Success[byte]{}, failure(in, label)
	}
}

// Any matches any single byte.
func Any() Parser[byte] {
	return Satisfy(func(byte) bool { return true }, "any byte")
}

// Digit matches one ASCII decimal digit.
func Digit() Parser[byte] {
	return Satisfy(isDigit, "digit")
}

// Letter matches one ASCII letter.
func Letter() Parser[byte] {
	return Satisfy(isLetter, "letter")
}

// EOF succeeds only at end of input and consumes nothing.
func EOF() Parser[struct{}] {
	return func(in Input) (Success[struct{}], *Error) {
		if !in.Empty() {
			return Success[struct{}]{}, failure(in, "end of input")
		}
		return Success[struct{}]{Rest: in}, nil
	}
}

// TakeWhile consumes the longest, possibly empty, prefix matching pred.
func TakeWhile(pred func(byte) bool) Parser[[]byte] {
	return func(in Input) (Success[[]byte], *Error) {
		rest := in.Remaining()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		return Success[[]byte]{Val: rest[:n], Rest: in.Advance(n)}, nil
	}
}

// TakeWhile1 is TakeWhile but fails when the match is empty.
func TakeWhile1(pred func(byte) bool, label string) Parser[[]byte] {
	base := TakeWhile(pred)
	return func(in Input) (Success[[]byte], *Error) {
		res, _ := base(in)
		if len(res.Val) == 0 {
			return Success[[]byte]{}, failure(in, label)
		}
		return res, nil
	}
}

// Whitespace consumes zero or more spaces, tabs, and line breaks.
func Whitespace() Parser[[]byte] {
	return TakeWhile(func(b byte) bool {
		return b == ' ' || b == '\t' || b == '\n' || b == '\r'
	})
}

// Uint matches an unsigned decimal literal as a uint64.
func Uint() Parser[uint64] {
	digits := TakeWhile1(isDigit, "digit")
	return func(in Input) (Success[uint64], *Error) {
		res, perr := digits(in)
		if perr != nil {
			return Success[uint64]{}, perr
		}
		var v uint64
		for _, b := range res.Val {
			d := uint64(b - '0')
			if v > (math.MaxUint64-d)/10 {
				return Success[uint64]{}, &Error{
					Offset:   in.Offset(),
					Expected: "uint64 literal",
					Found:    "overflowing literal",
				}
			}
			v = v*10 + d
		}
		return Success[uint64]{Val: v, Rest: res.Rest}, nil
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
