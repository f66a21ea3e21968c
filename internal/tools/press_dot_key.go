package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressDotKeyTool handles dot key presses
type PressDotKeyTool struct {
	keypad
}

// NewPressDotKeyTool creates a new press dot key tool
func NewPressDotKeyTool(sessions types.SessionStore, recorder metrics.Recorder) *PressDotKeyTool {
	return &PressDotKeyTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressDotKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressDotKey,
		mcp.WithDescription("Press the decimal point key. Does nothing if the display already contains a decimal point."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressDotKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := results.PressKeyToolArgs{SessionID: getSessionID(req)}
	return t.press(".", args, func(c *calculator.Calculator) error {
		c.PressDotKey()
		return nil
	}), nil
}
