// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package expr defines the flat operand/operator chain an expression
// reduces to before evaluation.
package expr

import (
	"fmt"
	"strconv"
	"strings"

	"nickandperla.net/calc/internal/token"
)

// Chain is an alternating sequence operand op operand ... op operand.
// Operands[i] and Operands[i+1] are the arguments of Ops[i].
type Chain struct {
	Operands []float64
	Ops      []token.Token
}

// Len returns the number of operators left to fold.
func (c *Chain) Len() int { return len(c.Ops) }

// Balanced reports whether there is exactly one more operand than operator.
func (c *Chain) Balanced() bool {
	return len(c.Operands) == len(c.Ops)+1
}

// Push appends an operand.
func (c *Chain) Push(v float64) {
	c.Operands = append(c.Operands, v)
}

// PushOp appends an operator.
func (c *Chain) PushOp(op token.Token) {
	c.Ops = append(c.Ops, op)
}

// Args returns the operator at i and its two operands.
func (c *Chain) Args(i int) (float64, token.Token, float64) {
	c.mustBeBalanced()
	return c.Operands[i], c.Ops[i], c.Operands[i+1]
}

// Fold replaces Operands[i] Ops[i] Operands[i+1] with the single value v.
// It panics if the chain is unbalanced or i is out of range.
func (c *Chain) Fold(i int, v float64) {
	c.mustBeBalanced()
	if i < 0 || i >= len(c.Ops) {
		panic(fmt.Sprintf("expr: fold index %d out of range [0,%d)", i, len(c.Ops)))
	}
	c.Operands[i] = v
	c.Operands = append(c.Operands[:i+1], c.Operands[i+2:]...)
	c.Ops = append(c.Ops[:i], c.Ops[i+1:]...)
}

// Result returns the sole remaining operand once every operator is folded.
func (c *Chain) Result() float64 {
	if len(c.Ops) != 0 || len(c.Operands) != 1 {
		panic(fmt.Sprintf("expr: chain not fully folded (%d operands, %d ops)", len(c.Operands), len(c.Ops)))
	}
	return c.Operands[0]
}

func (c *Chain) mustBeBalanced() {
	if !c.Balanced() {
		panic(fmt.Sprintf("expr: unbalanced chain (%d operands, %d ops)", len(c.Operands), len(c.Ops)))
	}
}

// String renders the chain in buffer form, e.g. "2 + 3 * 4".
func (c *Chain) String() string {
	var sb strings.Builder
	for i, v := range c.Operands {
		if i > 0 {
			sb.WriteString(" ")
			if i-1 < len(c.Ops) {
				sb.WriteRune(c.Ops[i-1].Rune())
			}
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return sb.String()
}
