package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nickandperla.net/calc/internal/token"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Item
	}{
		{
			name:  "spaced binary",
			input: "2 + 3",
			want: []Item{
				{Token: token.NUMBER, Value: "2", Pos: 0},
				{Token: token.ADD, Value: "+", Pos: 2},
				{Token: token.NUMBER, Value: "3", Pos: 4},
			},
		},
		{
			name:  "leading unary minus",
			input: "-5+3",
			want: []Item{
				{Token: token.NUMBER, Value: "-5", Pos: 0},
				{Token: token.ADD, Value: "+", Pos: 2},
				{Token: token.NUMBER, Value: "3", Pos: 3},
			},
		},
		{
			name:  "minus after operator is a sign",
			input: "5 * -3",
			want: []Item{
				{Token: token.NUMBER, Value: "5", Pos: 0},
				{Token: token.MUL, Value: "*", Pos: 2},
				{Token: token.NUMBER, Value: "-3", Pos: 4},
			},
		},
		{
			name:  "minus after operand is subtraction",
			input: "10-2.5",
			want: []Item{
				{Token: token.NUMBER, Value: "10", Pos: 0},
				{Token: token.SUB, Value: "-", Pos: 2},
				{Token: token.NUMBER, Value: "2.5", Pos: 3},
			},
		},
		{
			name:  "illegal rune",
			input: "2a",
			want: []Item{
				{Token: token.NUMBER, Value: "2", Pos: 0},
				{Token: token.ILLEGAL, Value: "a", Pos: 1},
			},
		},
		{
			name:  "malformed number kept verbatim",
			input: "1.2.3",
			want: []Item{
				{Token: token.NUMBER, Value: "1.2.3", Pos: 0},
			},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := NewFromString(tt.input).All()
			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := NewFromString("7 / 2")

	peeked, err := s.Peek()
	require.NoError(t, err)
	next, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, peeked, next)
	assert.Equal(t, "7", next.Value)

	next, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, token.DIV, next.Token)
}

func TestEOFIsSticky(t *testing.T) {
	s := NewFromString("1")
	_, err := s.Next()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		item, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, token.EOF, item.Token)
	}
}
