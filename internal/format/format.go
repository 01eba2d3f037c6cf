// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package format renders evaluation results as text.
package format

import (
	"math"
	"strconv"
	"strings"
)

// MaxFractionDigits is the most digits Display prints after the point.
const MaxFractionDigits = 10

// Display renders v for the result line. Integral values print without a
// decimal point; others print at most MaxFractionDigits fractional digits
// with trailing zeros trimmed.
func Display(v float64) string {
	if v == math.Trunc(v) {
		return normalizeZero(strconv.FormatFloat(v, 'f', -1, 64))
	}
	s := strconv.FormatFloat(v, 'f', MaxFractionDigits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return normalizeZero(s)
}

// Raw renders v as the shortest decimal that parses back to exactly v.
// It never uses exponent notation, so the result can be fed back into an
// expression buffer.
func Raw(v float64) string {
	return normalizeZero(strconv.FormatFloat(v, 'f', -1, 64))
}

// normalizeZero turns "-0" into "0".
func normalizeZero(s string) string {
	if s == "-0" {
		return "0"
	}
	return s
}
