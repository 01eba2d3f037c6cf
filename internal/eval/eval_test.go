package eval

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2 + 3 * 4", 14},
		{"2 * 3 + 4", 10},
		{"10 - 2 - 3", 5},
		{"-5 + 3", -2},
		{"8 / 4 / 2", 1},
		{"1 + 2 * 3 - 4 / 2", 5},
		{"5 * -3", -15},
		{"-2 * -2", 4},
		{"0.5 + 0.25", 0.75},
		{".5 + 5.", 5.5},
		{"42", 42},
		{"  7  ", 7},
		{"2+3*4", 14},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"", KindEmptyExpression},
		{"   ", KindEmptyExpression},
		{"5 / 0", KindDivisionByZero},
		{"1 + 6 / 0 * 2", KindDivisionByZero},
		{"0 / 0", KindDivisionByZero},
		{"1.2.3 + 1", KindMalformedNumber},
		{"-", KindMalformedNumber},
		{"5 +", KindMalformedNumber},
		{"* 5", KindMalformedNumber},
		{"--5", KindMalformedNumber},
		{".", KindMalformedNumber},
		{"2 % 3", KindInvalidOperator},
		{"2a", KindInvalidOperator},
		{"1e400", KindInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err), "error: %v", err)

			var evalErr *Error
			assert.True(t, errors.As(err, &evalErr))
		})
	}
}

func TestDivisionByZeroIsNotSilentZero(t *testing.T) {
	v, err := Evaluate("5 / 0")
	assert.True(t, errors.Is(err, ErrDivisionByZero))
	assert.False(t, errors.Is(err, ErrMalformedNumber))
	assert.Equal(t, 0.0, v)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestOverflow(t *testing.T) {
	huge := "9" + string(bytes.Repeat([]byte("9"), 310))

	_, err := Evaluate(huge)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Evaluate("99999999999999999999999999999999999999999999999999 * 99999999999999999999999999999999999999999999999999 * " +
		"99999999999999999999999999999999999999999999999999 * 99999999999999999999999999999999999999999999999999 * " +
		"99999999999999999999999999999999999999999999999999 * 99999999999999999999999999999999999999999999999999 * " +
		"99999999999999999999999999999999999999999999999999")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestErrorPosition(t *testing.T) {
	_, err := Evaluate("1 + 2.2.2")
	var evalErr *Error
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, 4, evalErr.Pos)
	assert.Equal(t, "2.2.2", evalErr.Text)
	assert.Equal(t, `malformed number "2.2.2" at position 4`, err.Error())
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestEvaluatorLogsFolds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := New(WithLogger(logger))

	got, err := e.Evaluate("2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, 14.0, got)
	assert.Contains(t, buf.String(), "op=MUL")
	assert.Contains(t, buf.String(), "op=ADD")
}

func TestWithNilLoggerKeepsDefault(t *testing.T) {
	e := New(WithLogger(nil))
	_, err := e.Evaluate("1 + 1")
	assert.NoError(t, err)
}
