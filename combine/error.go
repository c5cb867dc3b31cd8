package combine

import "fmt"

// Error is a parse failure at a byte offset. Expected names what the failing
// parser wanted; Found is the byte at the failure point, or "end of input".
type Error struct {
	Offset   int
	Expected string
	Found    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("combine: offset %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// failure builds an Error for the byte under the cursor. Bytes outside
// printable ASCII are rendered in hex so the message shows the actual input
// byte rather than a reinterpreted code point.
func failure(in Input, what string) *Error {
	found := "end of input"
	if b, ok := in.First(); ok {
		if b >= 0x20 && b < 0x7f {
			found = fmt.Sprintf("%q", rune(b))
		} else {
			found = fmt.Sprintf("'\\x%02x'", b)
		}
	}
	return &Error{Offset: in.Offset(), Expected: what, Found: found}
}

// mergeErr keeps the failure that got furthest; on a tie the expected
// descriptions are joined so the message lists both alternatives.
func mergeErr(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Offset > b.Offset:
		return a
	case b.Offset > a.Offset:
		return b
	case a.Expected == b.Expected:
		return a
	default:
		return &Error{Offset: a.Offset, Expected: a.Expected + " or " + b.Expected, Found: a.Found}
	}
}
