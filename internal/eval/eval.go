// Package eval evaluates calculator expressions with multiply/divide
// binding tighter than add/subtract, otherwise strictly left to right.
package eval

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"nickandperla.net/calc/internal/expr"
	"nickandperla.net/calc/internal/scanner"
	"nickandperla.net/calc/internal/token"
)

// Evaluator reduces expression strings to numbers. It holds no state
// between calls and is safe to share.
type Evaluator struct {
	logger *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used to trace folds at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates a new Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = New()

// Evaluate evaluates expression with a silent Evaluator.
func Evaluate(expression string) (float64, error) {
	return defaultEvaluator.Evaluate(expression)
}

// Evaluate tokenizes expression and folds it in two passes. Any failure is
// returned as an *Error.
func (e *Evaluator) Evaluate(expression string) (float64, error) {
	chain, err := e.tokenize(expression)
	if err != nil {
		e.logger.Debug("tokenize failed", "expression", expression, "error", err)
		return 0, err
	}

	// Pass 1: * and /
	for i := 0; i < chain.Len(); {
		a, op, b := chain.Args(i)
		if !op.IsMultiplicative() {
			i++
			continue
		}
		v, err := e.apply(a, op, b)
		if err != nil {
			return 0, err
		}
		chain.Fold(i, v)
	}

	// Pass 2: whatever is left, strictly left to right
	for chain.Len() > 0 {
		a, op, b := chain.Args(0)
		v, err := e.apply(a, op, b)
		if err != nil {
			return 0, err
		}
		chain.Fold(0, v)
	}

	return chain.Result(), nil
}

// tokenize scans expression into a balanced chain. Every operator must be
// preceded by an operand; a missing one is reported as an empty number.
func (e *Evaluator) tokenize(expression string) (*expr.Chain, error) {
	scan := scanner.NewFromString(expression)
	chain := &expr.Chain{}
	wantOperand := true
	seen := false

	for {
		item, err := scan.Next()
		if err != nil {
			return nil, err
		}

		switch {
		case item.Token == token.EOF:
			if !seen {
				return nil, &Error{Kind: KindEmptyExpression, Pos: -1}
			}
			if wantOperand {
				return nil, &Error{Kind: KindMalformedNumber, Pos: item.Pos}
			}
			return chain, nil

		case item.Token == token.NUMBER:
			if !wantOperand {
				return nil, &Error{Kind: KindMalformedNumber, Pos: item.Pos, Text: item.Value}
			}
			v, err := parseNumber(item.Value, item.Pos)
			if err != nil {
				return nil, err
			}
			chain.Push(v)
			wantOperand = false

		case item.Token.IsOperator():
			if wantOperand {
				return nil, &Error{Kind: KindMalformedNumber, Pos: item.Pos}
			}
			chain.PushOp(item.Token)
			wantOperand = true

		default:
			return nil, &Error{Kind: KindInvalidOperator, Pos: item.Pos, Text: item.Value}
		}
		seen = true
	}
}

// parseNumber accepts an optional leading '-', digits, and at most one '.'
// with at least one digit somewhere. Exponents, hex, and Inf/NaN spellings
// that strconv would otherwise take are rejected.
func parseNumber(text string, pos int) (float64, error) {
	digits, points := 0, 0
	for i, r := range text {
		switch {
		case token.IsDigit(r):
			digits++
		case r == token.RunePoint:
			points++
		case r == token.RuneSub && i == 0:
		default:
			return 0, &Error{Kind: KindMalformedNumber, Pos: pos, Text: text}
		}
	}
	if digits == 0 || points > 1 {
		return 0, &Error{Kind: KindMalformedNumber, Pos: pos, Text: text}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !math.IsInf(v, 0) {
		return 0, &Error{Kind: KindMalformedNumber, Pos: pos, Text: text}
	}
	if math.IsInf(v, 0) {
		return 0, &Error{Kind: KindOverflow, Pos: pos, Text: text}
	}
	return v, nil
}

// apply performs a single binary operation.
func (e *Evaluator) apply(a float64, op token.Token, b float64) (float64, error) {
	var v float64
	switch op {
	case token.ADD:
		v = a + b
	case token.SUB:
		v = a - b
	case token.MUL:
		v = a * b
	case token.DIV:
		if b == 0 {
			return 0, &Error{Kind: KindDivisionByZero, Pos: -1, Text: describe(a, op, b)}
		}
		v = a / b
	default:
		return 0, &Error{Kind: KindInvalidOperator, Pos: -1, Text: op.String()}
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &Error{Kind: KindOverflow, Pos: -1, Text: describe(a, op, b)}
	}

	e.logger.Debug("fold", "op", op.String(), "a", a, "b", b, "result", v)
	return v, nil
}

func describe(a float64, op token.Token, b float64) string {
	return fmt.Sprintf("%s %c %s",
		strconv.FormatFloat(a, 'g', -1, 64), op.Rune(), strconv.FormatFloat(b, 'g', -1, 64))
}
