package calculator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		token    string
		expected Key
	}{
		{"0", Key{Kind: KeyDigit, Digit: 0}},
		{"9", Key{Kind: KeyDigit, Digit: 9}},
		{"+", Key{Kind: KeyBinary, Operation: OpAdd}},
		{"-", Key{Kind: KeyBinary, Operation: OpSubtract}},
		{"*", Key{Kind: KeyBinary, Operation: OpMultiply}},
		{"/", Key{Kind: KeyBinary, Operation: OpDivide}},
		{"√", Key{Kind: KeyUnary, Operation: OpSquareRoot}},
		{"%", Key{Kind: KeyUnary, Operation: OpPercent}},
		{"inv", Key{Kind: KeyUnary, Operation: OpInvert}},
		{".", Key{Kind: KeyDot}},
		{"+/-", Key{Kind: KeyNegate}},
		{"neg", Key{Kind: KeyNegate}},
		{"C", Key{Kind: KeyClear}},
		{"CE", Key{Kind: KeyClear}},
		{"clear", Key{Kind: KeyClear}},
		{"=", Key{Kind: KeyEquals}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			key, err := ParseKey(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}

	for _, token := range []string{"", "10", "a", "==", "M+"} {
		_, err := ParseKey(token)
		assert.ErrorIs(t, err, ErrInvalidArgument, "token %q", token)
	}
}

func TestKeyString(t *testing.T) {
	keys, err := ParseKeys("7 . + sqrt * neg clear = 1/x")
	require.NoError(t, err)

	labels := make([]string, len(keys))
	for i, key := range keys {
		labels[i] = key.String()
	}
	assert.Equal(t, []string{"7", ".", "+", "√", "x", "+/-", "C", "=", "1/x"}, labels)
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("  1 2\t+\n3 = ")
	require.NoError(t, err)
	assert.Len(t, keys, 5)

	keys, err = ParseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = ParseKeys("1 + foo")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "foo")
}

func TestPressAllStopsAtFirstError(t *testing.T) {
	keys, err := ParseKeys("9 √ = 1")
	require.NoError(t, err)

	c := New()
	var seen []string
	pressed, err := c.PressAll(keys, func(key Key, err error) {
		seen = append(seen, fmt.Sprintf("%s:%t", key, err == nil))
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 2, pressed)
	assert.Contains(t, err.Error(), "key 3 (=)")
	assert.Equal(t, "3", c.ReadScreen())
	assert.Equal(t, []string{"9:true", "√:true", "=:false"}, seen)
}

func TestPressUnknownKeyKind(t *testing.T) {
	c := New()
	err := c.Press(Key{Kind: KeyKind(99)})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
