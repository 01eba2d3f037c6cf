package main

import (
	"log/slog"

	"nickandperla.net/calc/pkg/calc"
)

// Key bytes the terminal sends for editing keys.
const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyEnter     = 0x0d
	keyNewline   = 0x0a
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// applyKey dispatches one key to the controller. It returns false if the
// key has no binding.
//
//	0-9        digit
//	+ - * / x  operator (x multiplies)
//	.          decimal point
//	= Enter    equals
//	< BS DEL   backspace
//	c C Esc    reset (Esc only in the interactive REPL)
func applyKey(c *calc.Controller, k rune) bool {
	switch {
	case k >= '0' && k <= '9':
		c.OnDigit(k)
	case k == '+' || k == '-' || k == '*' || k == '/':
		c.OnOperator(k)
	case k == 'x' || k == 'X':
		c.OnOperator('*')
	case k == '.':
		c.OnDecimalPoint()
	case k == '=' || k == keyEnter || k == keyNewline:
		c.OnEquals()
	case k == '<' || k == keyBackspace || k == keyDelete:
		c.OnBackspace()
	case k == 'c' || k == 'C':
		c.OnReset()
	case k == ' ' || k == '\t':
		// Spacing in scripts is cosmetic
	default:
		return false
	}
	return true
}

// runScript feeds every key in keys to c. Unbound keys are logged and skipped.
func runScript(c *calc.Controller, keys string, logger *slog.Logger) {
	for i, k := range keys {
		if !applyKey(c, k) {
			logger.Warn("unbound key", "key", string(k), "offset", i)
		}
	}
}
