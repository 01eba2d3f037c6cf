package calc

import (
	"log/slog"

	"nickandperla.net/calc/internal/eval"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for ignored input and evaluation failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// EvalError is the error type returned by Evaluate.
type EvalError = eval.Error

// ErrorKind classifies an EvalError.
type ErrorKind = eval.Kind

// Error kinds.
const (
	MalformedNumber = eval.KindMalformedNumber
	DivisionByZero  = eval.KindDivisionByZero
	InvalidOperator = eval.KindInvalidOperator
	EmptyExpression = eval.KindEmptyExpression
	Overflow        = eval.KindOverflow
)

// Sentinels for errors.Is.
var (
	ErrMalformedNumber = eval.ErrMalformedNumber
	ErrDivisionByZero  = eval.ErrDivisionByZero
	ErrInvalidOperator = eval.ErrInvalidOperator
	ErrEmptyExpression = eval.ErrEmptyExpression
	ErrOverflow        = eval.ErrOverflow
)

// Evaluate evaluates an expression such as "2 + 3 * 4" directly, without a
// Controller.
func Evaluate(expression string) (float64, error) {
	return eval.Evaluate(expression)
}

// KindOf returns the ErrorKind carried by err, or 0.
func KindOf(err error) ErrorKind {
	return eval.KindOf(err)
}
