package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressNegativeKeyTool handles negative key presses
type PressNegativeKeyTool struct {
	keypad
}

// NewPressNegativeKeyTool creates a new press negative key tool
func NewPressNegativeKeyTool(sessions types.SessionStore, recorder metrics.Recorder) *PressNegativeKeyTool {
	return &PressNegativeKeyTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressNegativeKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressNegativeKey,
		mcp.WithDescription("Press the sign key, which adds or removes a leading minus sign on the display."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressNegativeKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := results.PressKeyToolArgs{SessionID: getSessionID(req)}
	return t.press("+/-", args, func(c *calculator.Calculator) error {
		c.PressNegativeKey()
		return nil
	}), nil
}
