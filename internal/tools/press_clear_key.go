package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressClearKeyTool handles clear key presses
type PressClearKeyTool struct {
	keypad
}

// NewPressClearKeyTool creates a new press clear key tool
func NewPressClearKeyTool(sessions types.SessionStore, recorder metrics.Recorder) *PressClearKeyTool {
	return &PressClearKeyTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressClearKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressClearKey,
		mcp.WithDescription("Press the clear key. Every press resets the display to 0 and discards the pending operation."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressClearKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := results.PressKeyToolArgs{SessionID: getSessionID(req)}
	return t.press("C", args, func(c *calculator.Calculator) error {
		c.PressClearKey()
		return nil
	}), nil
}
