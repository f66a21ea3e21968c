package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressUnaryOperationKeyTool handles √, % and 1/x key presses
type PressUnaryOperationKeyTool struct {
	keypad
}

// NewPressUnaryOperationKeyTool creates a new press unary operation key tool
func NewPressUnaryOperationKeyTool(sessions types.SessionStore, recorder metrics.Recorder) *PressUnaryOperationKeyTool {
	return &PressUnaryOperationKeyTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressUnaryOperationKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressUnaryOperationKey,
		mcp.WithDescription("Press a unary operation key, which replaces the display with the result. "+
			"It also replaces the pending operation, so equals fails until the calculator is cleared."),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation key: √ (square root), % (divide by 100) or 1/x (reciprocal); sqrt and inv are accepted as aliases"),
			mcp.Enum(calculator.Spellings(calculator.UnaryOperations)...),
		),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressUnaryOperationKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := mcp.ParseString(req, "operation", "")
	if symbol == "" {
		return mcp.NewToolResultError("operation parameter is required"), nil
	}

	op, err := calculator.ParseOperation(symbol)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := results.PressKeyToolArgs{SessionID: getSessionID(req), Operation: symbol}
	return t.press(string(op), args, func(c *calculator.Calculator) error {
		return c.PressUnaryOperationKey(op)
	}), nil
}
