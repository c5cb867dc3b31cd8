package expr

import (
	"errors"
	"testing"
)

func TestEvalDivideByZero(t *testing.T) {
	_, err := EvalString("1/0")
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}

	// zero divided is fine
	if v, err := EvalString("0/5"); err != nil || v != 0 {
		t.Fatalf("expected 0, got %d err=%v", v, err)
	}
}

func TestEvalNestedDivideByZero(t *testing.T) {
	_, err := EvalString("1+2*(3/(4-4))")
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero from nested division, got %v", err)
	}
}

func TestEvalLiteralRange(t *testing.T) {
	// max int64 is fine
	v, err := EvalString("9223372036854775807")
	if err != nil || v != 9223372036854775807 {
		t.Fatalf("expected max int64, got %d err=%v", v, err)
	}

	// one past it must not wrap to a negative value
	_, err = EvalString("9223372036854775808")
	if !errors.Is(err, ErrLiteralTooLarge) {
		t.Fatalf("expected ErrLiteralTooLarge, got %v", err)
	}

	// oversized literals inside a larger expression fail the same way
	_, err = EvalString("1+9223372036854775808")
	if !errors.Is(err, ErrLiteralTooLarge) {
		t.Fatalf("expected ErrLiteralTooLarge from subexpression, got %v", err)
	}
}

func TestEvalNegation(t *testing.T) {
	v, err := EvalString("-(2+3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -5 {
		t.Fatalf("expected -5, got %d", v)
	}
}
