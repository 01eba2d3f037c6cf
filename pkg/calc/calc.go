// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package calc provides the input state machine behind a basic calculator
// keypad. A Controller turns button events into an expression buffer,
// evaluates it on equals, and exposes what the screen should show.
package calc

import (
	"io"
	"log/slog"
	"strings"

	"nickandperla.net/calc/internal/eval"
	"nickandperla.net/calc/internal/format"
	"nickandperla.net/calc/internal/token"
)

// Mode is the display mode of a Controller.
type Mode int

const (
	// Editing accepts further input. It is the initial mode.
	Editing Mode = iota
	// ShowingResult presents the value of the last successful equals.
	ShowingResult
	// ShowingError presents "Error" after a failed equals.
	ShowingError
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case Editing:
		return "EDITING"
	case ShowingResult:
		return "SHOWING_RESULT"
	case ShowingError:
		return "SHOWING_ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToUpper(s) {
	case "EDITING":
		return Editing, true
	case "SHOWING_RESULT":
		return ShowingResult, true
	case "SHOWING_ERROR":
		return ShowingError, true
	default:
		return Editing, false
	}
}

// ErrorText is the result text shown after any failed evaluation.
const ErrorText = "Error"

// resultPrefix precedes a formatted value in the result text.
const resultPrefix = "= "

// Controller owns the expression buffer and display mode. It is driven by
// a single event source and is not safe for concurrent use.
type Controller struct {
	buffer     string
	mode       Mode
	resultText string
	evaluator  *eval.Evaluator
	logger     *slog.Logger
}

// New creates a new Controller in Editing mode with an empty buffer.
func New(opts ...Option) *Controller {
	c := &Controller{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.evaluator = eval.New(eval.WithLogger(c.logger))
	return c
}

// OnDigit appends a digit. After a result or error the buffer starts over.
func (c *Controller) OnDigit(d rune) {
	if !token.IsDigit(d) {
		c.logger.Debug("ignored non-digit", "rune", string(d))
		return
	}
	if c.mode != Editing {
		c.clear()
	}
	c.buffer += string(d)
}

// OnOperator appends " op ". After a result the buffer is kept so the
// chain continues from it. The press is dropped when there is no operand
// yet or the buffer already ends in an operator.
func (c *Controller) OnOperator(op rune) {
	if !token.IsOperator(op) {
		c.logger.Debug("ignored non-operator", "rune", string(op))
		return
	}
	if c.mode != Editing {
		c.mode = Editing
		c.resultText = ""
	}
	if c.buffer == "" {
		return
	}
	if last, ok := lastNonSpace(c.buffer); ok && token.IsOperator(last) {
		return
	}
	c.buffer += " " + string(op) + " "
}

// OnDecimalPoint starts or continues the fractional part of the trailing
// operand. A second point in the same operand is dropped.
func (c *Controller) OnDecimalPoint() {
	if c.mode != Editing {
		c.clear()
	}
	segment := trailingOperand(c.buffer)
	if strings.ContainsRune(segment, token.RunePoint) {
		return
	}
	if segment == "" {
		c.buffer += "0."
	} else {
		c.buffer += "."
	}
}

// OnEquals evaluates the buffer. On success the buffer is replaced with the
// full-precision value; on failure it is left untouched.
func (c *Controller) OnEquals() {
	if c.buffer == "" {
		return
	}
	v, err := c.evaluator.Evaluate(c.buffer)
	if err != nil {
		c.logger.Debug("evaluation failed",
			"expression", c.buffer, "kind", eval.KindOf(err).String(), "error", err)
		c.resultText = ErrorText
		c.mode = ShowingError
		return
	}
	c.resultText = resultPrefix + format.Display(v)
	c.mode = ShowingResult
	c.buffer = format.Raw(v)
}

// OnBackspace removes the last character and always returns to Editing.
func (c *Controller) OnBackspace() {
	if c.buffer != "" {
		c.buffer = c.buffer[:len(c.buffer)-1]
	}
	if c.mode != Editing {
		c.mode = Editing
		c.resultText = ""
	}
}

// OnReset empties the buffer and result and returns to Editing.
func (c *Controller) OnReset() {
	c.clear()
}

// CurrentDisplayText returns the buffer, or "0" when it is empty.
func (c *Controller) CurrentDisplayText() string {
	if c.buffer == "" {
		return "0"
	}
	return c.buffer
}

// CurrentResultText returns "= <value>" or "Error" while a result is
// shown, and "" while editing.
func (c *Controller) CurrentResultText() string {
	return c.resultText
}

// IsShowingResult reports whether the secondary result line should be
// visible. It is true for both results and errors.
func (c *Controller) IsShowingResult() bool {
	return c.mode != Editing
}

// Mode returns the current display mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) clear() {
	c.buffer = ""
	c.resultText = ""
	c.mode = Editing
}

func lastNonSpace(s string) (rune, bool) {
	t := strings.TrimRight(s, " ")
	if t == "" {
		return 0, false
	}
	return rune(t[len(t)-1]), true
}

// trailingOperand returns the text after the last operator, trimmed.
func trailingOperand(s string) string {
	if i := strings.LastIndexAny(s, "+-*/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
