package combine

// Input is an immutable cursor over a shared byte slice. Advancing returns a
// fresh Input; keeping the old value is how backtracking works. The backing
// bytes are never mutated.
type Input struct {
	src []byte
	off int
}

// NewInput builds an Input positioned at the start of src.
func NewInput(src string) Input {
	return Input{src: []byte(src)}
}

// NewInputBytes builds an Input over an existing byte slice without copying.
// The caller must not mutate src while parsers run over it.
func NewInputBytes(src []byte) Input {
	return Input{src: src}
}

// First returns the byte at the cursor without consuming it.
func (in Input) First() (byte, bool) {
	if in.off >= len(in.src) {
		return 0, false
	}
	return in.src[in.off], true
}

// Advance moves the cursor n bytes forward, clamped to the end of input.
func (in Input) Advance(n int) Input {
	off := in.off + n
	if off > len(in.src) {
		off = len(in.src)
	}
	return Input{src: in.src, off: off}
}

// Offset is the cursor position in bytes from the start of the source.
func (in Input) Offset() int {
	return in.off
}

// Len is the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.src) - in.off
}

// Empty reports whether the cursor sits at end of input.
func (in Input) Empty() bool {
	return in.off >= len(in.src)
}

// Remaining returns the unconsumed bytes. Callers must treat it as read-only.
func (in Input) Remaining() []byte {
	return in.src[in.off:]
}

// HasPrefix reports whether the unconsumed input starts with s.
func (in Input) HasPrefix(s string) bool {
	rest := in.src[in.off:]
	if len(rest) < len(s) {
		return false
	}
	return string(rest[:len(s)]) == s
}

// Location converts the cursor offset into a 1-based line and column.
func (in Input) Location() (line, col int) {
	line, col = 1, 1
	for _, b := range in.src[:in.off] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
