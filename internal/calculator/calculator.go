// Package calculator models the keypad of a simple two-operand calculator with a
// single-line display of up to ten digits plus one decimal separator.
//
// The display text is the source of truth for the number being entered: digit, dot and
// sign keys edit it as a string, and operation keys read it back as a float64. The
// calculator reproduces the keypad's known quirks, including the blunt display truncation,
// the single-stage clear and unary keys replacing the pending binary operation.
//
// A Calculator is not safe for concurrent use.
package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// ErrorDisplay is shown when a result cannot be displayed as a number
	ErrorDisplay = "Error"

	initialDisplay = "0"

	// Results longer than truncateAbove characters that contain a decimal point are
	// cut to their first truncateTo characters.
	truncateAbove = 11
	truncateTo    = 10
)

// pendingOperation is the operand and operator saved by the last operation key
type pendingOperation struct {
	op      Operation
	operand float64
}

// Calculator holds the display and at most one pending operation
type Calculator struct {
	display string
	pending *pendingOperation // nil while idle
}

// State is a read-only snapshot of a calculator
type State struct {
	Display         string
	HasPending      bool
	PendingOperator Operation
	PendingOperand  float64
}

// New returns a calculator showing "0" with nothing pending
func New() *Calculator {
	return &Calculator{display: initialDisplay}
}

// ReadScreen returns the display text
func (c *Calculator) ReadScreen() string {
	return c.display
}

// Snapshot returns the display together with the pending operation, if any
func (c *Calculator) Snapshot() State {
	state := State{Display: c.display}
	if c.pending != nil {
		state.HasPending = true
		state.PendingOperator = c.pending.op
		state.PendingOperand = c.pending.operand
	}
	return state
}

// PressDigitKey appends digit to the display, replacing a lone "0". The display length is
// not limited here.
func (c *Calculator) PressDigitKey(digit int) error {
	if digit < 0 || digit > 9 {
		return fmt.Errorf("%w: digit %d is not between 0 and 9", ErrInvalidArgument, digit)
	}

	if c.display == initialDisplay {
		c.display = ""
	}
	c.display += strconv.Itoa(digit)
	return nil
}

// PressClearKey resets the display and drops any pending operation. Every press is a full
// reset; there is no separate clear-entry stage.
func (c *Calculator) PressClearKey() {
	c.display = initialDisplay
	c.pending = nil
}

// PressBinaryOperationKey records op with the displayed value as its left operand and
// resets the display for the next operand. A still pending operation is folded in first,
// so 2 + 3 + keeps 5 as the new left operand.
//
// Folding fails when the pending operation came from a unary key; the calculator then
// stays unchanged until it is cleared.
func (c *Calculator) PressBinaryOperationKey(op Operation) error {
	if !op.IsBinary() {
		return fmt.Errorf("%w: %q is not a binary operation", ErrInvalidArgument, op)
	}

	current, err := parseDisplay(c.display)
	if err != nil {
		return err
	}

	if c.pending != nil {
		current, err = applyOperation(c.pending.op, c.pending.operand, current)
		if err != nil {
			return err
		}
	}

	c.pending = &pendingOperation{op: op, operand: current}
	c.display = initialDisplay
	return nil
}

// PressUnaryOperationKey applies op to the displayed value and shows the result. A NaN
// result shows "Error"; an infinite one is shown as is.
//
// The displayed value and op replace the pending operation, which makes a following
// equals or binary key fail.
func (c *Calculator) PressUnaryOperationKey(op Operation) error {
	if !op.IsUnary() {
		return fmt.Errorf("%w: %q is not a unary operation", ErrInvalidArgument, op)
	}

	x, err := parseDisplay(c.display)
	if err != nil {
		return err
	}
	c.pending = &pendingOperation{op: op, operand: x}

	var result float64
	switch op {
	case OpSquareRoot:
		result = math.Sqrt(x)
	case OpPercent:
		result = x / 100
	case OpInvert:
		result = 1 / x
	}

	display := FormatNumber(result)
	if math.IsNaN(result) {
		display = ErrorDisplay
	}
	c.display = truncate(strings.TrimSuffix(display, ".0"))
	return nil
}

// PressDotKey starts the fractional part of the number being entered. It does nothing if
// the display already has a decimal point.
func (c *Calculator) PressDotKey() {
	if strings.Contains(c.display, ".") {
		return
	}
	if c.display == initialDisplay || c.display == "" {
		c.display = "0."
		return
	}
	c.display += "."
}

// PressNegativeKey toggles a leading minus sign on the display text
func (c *Calculator) PressNegativeKey() {
	if strings.HasPrefix(c.display, "-") {
		c.display = c.display[1:]
		return
	}
	c.display = "-" + c.display
}

// PressEqualsKey applies the pending binary operation to the displayed value. The pending
// operation is kept, so pressing equals again repeats it against the new result: 6 - 2 = =
// shows 4, then 6 - 4 = 2.
//
// Division here is plain float division: 5 / 0 shows "Error", while -5 / 0 shows
// "-Infinity" and 0 / 0 shows "NaN".
func (c *Calculator) PressEqualsKey() error {
	if c.pending == nil || !c.pending.op.IsBinary() {
		return fmt.Errorf("%w: no binary operation is pending", ErrInvalidArgument)
	}

	right, err := parseDisplay(c.display)
	if err != nil {
		return err
	}

	result, err := evaluate(c.pending.op, c.pending.operand, right)
	if err != nil {
		return err
	}

	display := FormatNumber(result)
	if math.IsInf(result, 1) {
		display = ErrorDisplay
	}
	c.display = truncate(strings.TrimSuffix(display, ".0"))
	return nil
}

// truncate cuts long decimal results to the display width. The cut is blind: it can drop
// a trailing digit, leave a trailing decimal point or cut into an exponent.
func truncate(display string) string {
	if strings.Contains(display, ".") && len(display) > truncateAbove {
		return display[:truncateTo]
	}
	return display
}
