// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a streaming lexer for calculator expressions.
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"nickandperla.net/calc/internal/token"
)

// Scanner tokenizes an expression rune-by-rune. Whitespace is skipped.
//
// A '-' seen while the scanner expects an operand (start of input or right
// after an operator) is read as the sign of the next number rather than as
// subtraction.
type Scanner struct {
	reader    *bufio.Reader
	buf       strings.Builder
	peeked    *Item
	pos       int  // Rune offset of the next unread rune
	expecting bool // True at start and after an operator
}

// Item represents a scanned token with its value.
type Item struct {
	Token token.Token
	Value string
	Pos   int // Rune offset where this token started
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{
		reader:    bufio.NewReader(r),
		expecting: true,
	}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Pos returns the rune offset of the next unread rune.
func (s *Scanner) Pos() int {
	return s.pos
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() (*Item, error) {
	if s.peeked != nil {
		return s.peeked, nil
	}
	item, err := s.Next()
	if err != nil {
		return nil, err
	}
	s.peeked = item
	return item, nil
}

// Next returns the next token from the input.
func (s *Scanner) Next() (*Item, error) {
	if s.peeked != nil {
		item := s.peeked
		s.peeked = nil
		return item, nil
	}

	s.buf.Reset()
	start := -1

	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			if s.buf.Len() > 0 {
				return &Item{Token: token.NUMBER, Value: s.buf.String(), Pos: start}, nil
			}
			return &Item{Token: token.EOF, Pos: s.pos}, nil
		}
		if err != nil {
			return nil, err
		}
		s.pos++

		if unicode.IsSpace(r) {
			continue
		}
		if start < 0 {
			start = s.pos - 1
		}

		switch {
		case token.IsDigit(r) || r == token.RunePoint:
			s.buf.WriteRune(r)
			s.expecting = false

		case r == token.RuneSub && s.expecting:
			s.buf.WriteRune(r)

		default:
			// Anything else ends the pending number first
			if s.buf.Len() > 0 {
				s.reader.UnreadRune()
				s.pos--
				return &Item{Token: token.NUMBER, Value: s.buf.String(), Pos: start}, nil
			}
			if token.IsOperator(r) {
				s.expecting = true
				return &Item{Token: token.TokenFromRune(r), Value: string(r), Pos: start}, nil
			}
			return &Item{Token: token.ILLEGAL, Value: string(r), Pos: start}, nil
		}
	}
}

// All scans the remaining input and returns every item up to, but not
// including, EOF.
func (s *Scanner) All() ([]Item, error) {
	var items []Item
	for {
		item, err := s.Next()
		if err != nil {
			return nil, err
		}
		if item.Token == token.EOF {
			return items, nil
		}
		items = append(items, *item)
	}
}
