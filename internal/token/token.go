// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines calculator token types and operator constants.
package token

// Token represents a calculator token type.
type Token int

const (
	EOF Token = iota
	ILLEGAL
	NUMBER

	// Operators
	ADD // +
	SUB // -
	MUL // *
	DIV // /
)

// Operator runes as they appear in an expression buffer.
const (
	RuneAdd   = '+'
	RuneSub   = '-'
	RuneMul   = '*'
	RuneDiv   = '/'
	RunePoint = '.'
)

// IsOperator returns true if the rune is one of + - * /.
func IsOperator(r rune) bool {
	switch r {
	case RuneAdd, RuneSub, RuneMul, RuneDiv:
		return true
	}
	return false
}

// IsDigit returns true for ASCII 0-9.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// TokenFromRune returns the token type for an operator rune.
func TokenFromRune(r rune) Token {
	switch r {
	case RuneAdd:
		return ADD
	case RuneSub:
		return SUB
	case RuneMul:
		return MUL
	case RuneDiv:
		return DIV
	}
	return ILLEGAL
}

// Rune returns the operator rune for an operator token, or 0.
func (t Token) Rune() rune {
	switch t {
	case ADD:
		return RuneAdd
	case SUB:
		return RuneSub
	case MUL:
		return RuneMul
	case DIV:
		return RuneDiv
	}
	return 0
}

// String returns the string representation of a token.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case NUMBER:
		return "NUMBER"
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	}
	return "UNKNOWN"
}

// IsOperator returns true if the token is a binary operator.
func (t Token) IsOperator() bool {
	switch t {
	case ADD, SUB, MUL, DIV:
		return true
	}
	return false
}

// IsMultiplicative returns true for * and /, which fold in the first pass.
func (t Token) IsMultiplicative() bool {
	return t == MUL || t == DIV
}

// IsAdditive returns true for + and -, which fold in the second pass.
func (t Token) IsAdditive() bool {
	return t == ADD || t == SUB
}
