package calculator

import (
	"fmt"
	"math"
)

// Operation is the symbol printed on an operation key
type Operation string

// Binary operations take the pending operand as the left side and the display as the right side.
const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "x"
	OpDivide   Operation = "/"
)

// Unary operations act on the display alone.
const (
	OpSquareRoot Operation = "√"
	OpPercent    Operation = "%"
	OpInvert     Operation = "1/x"
)

// operationAliases are ASCII spellings for callers that cannot easily type the key labels
var operationAliases = []struct {
	alias string
	op    Operation
}{
	{"*", OpMultiply},
	{"sqrt", OpSquareRoot},
	{"inv", OpInvert},
}

// BinaryOperations lists the binary key labels in keypad order
var BinaryOperations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// UnaryOperations lists the unary key labels in keypad order
var UnaryOperations = []Operation{OpSquareRoot, OpPercent, OpInvert}

// ParseOperation returns the operation for a key label or one of its ASCII aliases
func ParseOperation(symbol string) (Operation, error) {
	if op := Operation(symbol); op.IsBinary() || op.IsUnary() {
		return op, nil
	}
	for _, a := range operationAliases {
		if a.alias == symbol {
			return a.op, nil
		}
	}
	return "", fmt.Errorf("%w: unknown operation: %q", ErrInvalidArgument, symbol)
}

// Spellings returns every symbol ParseOperation accepts for ops: each key label followed
// by its aliases.
func Spellings(ops []Operation) []string {
	var spellings []string
	for _, op := range ops {
		spellings = append(spellings, string(op))
		for _, a := range operationAliases {
			if a.op == op {
				spellings = append(spellings, a.alias)
			}
		}
	}
	return spellings
}

// IsBinary reports whether op needs a pending operand
func (op Operation) IsBinary() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// IsUnary reports whether op acts on the display alone
func (op Operation) IsUnary() bool {
	switch op {
	case OpSquareRoot, OpPercent, OpInvert:
		return true
	}
	return false
}

// evaluate is plain IEEE 754 arithmetic; dividing by zero yields a signed infinity or NaN.
func evaluate(op Operation, left, right float64) (float64, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSubtract:
		return left - right, nil
	case OpMultiply:
		return left * right, nil
	case OpDivide:
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: unknown operation: %s", ErrInvalidArgument, op)
	}
}

// applyOperation folds a pending binary operation. Division by zero always yields
// positive infinity, whatever the sign of the left operand.
func applyOperation(op Operation, left, right float64) (float64, error) {
	if op == OpDivide && right == 0 {
		return math.Inf(1), nil
	}
	return evaluate(op, left, right)
}
