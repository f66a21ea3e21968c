package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyKind identifies which group of the keypad a key belongs to
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyBinary
	KeyUnary
	KeyDot
	KeyNegate
	KeyClear
	KeyEquals
)

// Key is a single keypad key
type Key struct {
	Kind      KeyKind
	Digit     int       // KeyDigit only
	Operation Operation // KeyBinary and KeyUnary only
}

var namedKeys = map[string]Key{
	".":     {Kind: KeyDot},
	"+/-":   {Kind: KeyNegate},
	"neg":   {Kind: KeyNegate},
	"C":     {Kind: KeyClear},
	"CE":    {Kind: KeyClear},
	"clear": {Kind: KeyClear},
	"=":     {Kind: KeyEquals},
}

// ParseKey returns the key for a token: a digit 0-9, an operation symbol or alias
// (see ParseOperation), ".", "+/-" or "neg", "C", "CE" or "clear", and "=".
func ParseKey(token string) (Key, error) {
	if len(token) == 1 && token[0] >= '0' && token[0] <= '9' {
		return Key{Kind: KeyDigit, Digit: int(token[0] - '0')}, nil
	}
	if key, ok := namedKeys[token]; ok {
		return key, nil
	}

	op, err := ParseOperation(token)
	if err != nil {
		return Key{}, fmt.Errorf("%w: unknown key: %q", ErrInvalidArgument, token)
	}
	if op.IsBinary() {
		return Key{Kind: KeyBinary, Operation: op}, nil
	}
	return Key{Kind: KeyUnary, Operation: op}, nil
}

// ParseKeys parses a whitespace separated sequence of key tokens
func ParseKeys(sequence string) ([]Key, error) {
	tokens := strings.Fields(sequence)
	keys := make([]Key, 0, len(tokens))
	for _, token := range tokens {
		key, err := ParseKey(token)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// String returns the key label
func (k Key) String() string {
	switch k.Kind {
	case KeyDigit:
		return strconv.Itoa(k.Digit)
	case KeyBinary, KeyUnary:
		return string(k.Operation)
	case KeyDot:
		return "."
	case KeyNegate:
		return "+/-"
	case KeyClear:
		return "C"
	case KeyEquals:
		return "="
	default:
		return "?"
	}
}

// Press dispatches key to the matching Press method
func (c *Calculator) Press(key Key) error {
	switch key.Kind {
	case KeyDigit:
		return c.PressDigitKey(key.Digit)
	case KeyBinary:
		return c.PressBinaryOperationKey(key.Operation)
	case KeyUnary:
		return c.PressUnaryOperationKey(key.Operation)
	case KeyDot:
		c.PressDotKey()
	case KeyNegate:
		c.PressNegativeKey()
	case KeyClear:
		c.PressClearKey()
	case KeyEquals:
		return c.PressEqualsKey()
	default:
		return fmt.Errorf("%w: unknown key kind %d", ErrInvalidArgument, key.Kind)
	}
	return nil
}

// PressAll presses keys in order and stops at the first failing key, returning how
// many keys were pressed successfully. onKey, if not nil, is called after every press with
// the key and its error.
func (c *Calculator) PressAll(keys []Key, onKey func(Key, error)) (int, error) {
	for i, key := range keys {
		err := c.Press(key)
		if onKey != nil {
			onKey(key, err)
		}
		if err != nil {
			return i, fmt.Errorf("key %d (%s): %w", i+1, key, err)
		}
	}
	return len(keys), nil
}
