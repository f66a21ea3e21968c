package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressEqualsKeyTool handles equals key presses
type PressEqualsKeyTool struct {
	keypad
}

// NewPressEqualsKeyTool creates a new press equals key tool
func NewPressEqualsKeyTool(sessions types.SessionStore, recorder metrics.Recorder) *PressEqualsKeyTool {
	return &PressEqualsKeyTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressEqualsKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressEqualsKey,
		mcp.WithDescription("Press the equals key. Applies the pending binary operation to the display; "+
			"pressing it again repeats the operation against the new result. Fails when no binary operation is pending."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressEqualsKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := results.PressKeyToolArgs{SessionID: getSessionID(req)}
	return t.press("=", args, func(c *calculator.Calculator) error {
		return c.PressEqualsKey()
	}), nil
}
