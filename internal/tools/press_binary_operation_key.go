package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressBinaryOperationKeyTool handles +, -, x and / key presses
type PressBinaryOperationKeyTool struct {
	keypad
}

// NewPressBinaryOperationKeyTool creates a new press binary operation key tool
func NewPressBinaryOperationKeyTool(sessions types.SessionStore, recorder metrics.Recorder) *PressBinaryOperationKeyTool {
	return &PressBinaryOperationKeyTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressBinaryOperationKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressBinaryOperationKey,
		mcp.WithDescription("Press a binary operation key. A pending operation is evaluated first and its result "+
			"becomes the left operand; the display then resets to 0 for the next operand."),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation key: + (add), - (subtract), x (multiply) or / (divide); * is accepted for x"),
			mcp.Enum(calculator.Spellings(calculator.BinaryOperations)...),
		),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressBinaryOperationKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
		return c.PressBinaryOperationKey(op)
	}), nil
}
