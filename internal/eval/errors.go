package eval

import (
	"errors"
	"fmt"
)

// Kind classifies an evaluation failure.
type Kind int

const (
	// KindMalformedNumber means a numeric token is empty or not a number.
	KindMalformedNumber Kind = iota + 1
	// KindDivisionByZero means a '/' had a zero right operand.
	KindDivisionByZero
	// KindInvalidOperator means a rune or token outside + - * / was met.
	KindInvalidOperator
	// KindEmptyExpression means there was nothing to evaluate.
	KindEmptyExpression
	// KindOverflow means a literal or intermediate result is not finite.
	KindOverflow
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedNumber:
		return "MalformedNumber"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindInvalidOperator:
		return "InvalidOperator"
	case KindEmptyExpression:
		return "EmptyExpression"
	case KindOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// Error is the only error type Evaluate returns.
type Error struct {
	Kind Kind
	Pos  int    // Rune offset in the input, -1 when not tied to one token
	Text string // Offending token or operation
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindMalformedNumber:
		if e.Text == "" {
			msg = "missing operand"
		} else {
			msg = fmt.Sprintf("malformed number %q", e.Text)
		}
	case KindDivisionByZero:
		msg = "division by zero"
		if e.Text != "" {
			msg += ": " + e.Text
		}
	case KindInvalidOperator:
		msg = fmt.Sprintf("invalid operator %q", e.Text)
	case KindEmptyExpression:
		msg = "empty expression"
	case KindOverflow:
		msg = "result out of range"
		if e.Text != "" {
			msg += ": " + e.Text
		}
	default:
		msg = "evaluation failed"
	}
	if e.Pos >= 0 && e.Kind != KindEmptyExpression {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	return msg
}

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of position or text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrMalformedNumber = &Error{Kind: KindMalformedNumber, Pos: -1}
	ErrDivisionByZero  = &Error{Kind: KindDivisionByZero, Pos: -1}
	ErrInvalidOperator = &Error{Kind: KindInvalidOperator, Pos: -1}
	ErrEmptyExpression = &Error{Kind: KindEmptyExpression, Pos: -1}
	ErrOverflow        = &Error{Kind: KindOverflow, Pos: -1}
)

// KindOf returns the Kind carried by err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
