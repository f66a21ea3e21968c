package results

import "github.com/averycrespi/calculator-mcp/internal/calculator"

// CalculatorState represents the visible state of a calculator session
type CalculatorState struct {
	SessionID       string `json:"session_id"`
	Display         string `json:"display"`
	PendingOperator string `json:"pending_operator,omitempty"`
	// PendingOperand is rendered like the display, since JSON numbers cannot hold
	// the infinities a division by zero leaves behind
	PendingOperand string `json:"pending_operand,omitempty"`
}

// NewCalculatorState converts a calculator snapshot into its result form
func NewCalculatorState(sessionID string, state calculator.State) CalculatorState {
	result := CalculatorState{
		SessionID: sessionID,
		Display:   state.Display,
	}
	if state.HasPending {
		result.PendingOperator = string(state.PendingOperator)
		result.PendingOperand = calculator.FormatNumber(state.PendingOperand)
	}
	return result
}
