package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadScreenTool handles read screen requests
type ReadScreenTool struct {
	keypad
}

// NewReadScreenTool creates a new read screen tool
func NewReadScreenTool(sessions types.SessionStore, recorder metrics.Recorder) *ReadScreenTool {
	return &ReadScreenTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *ReadScreenTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolReadScreen,
		mcp.WithDescription("Read the calculator display and the pending operation, without pressing a key"),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *ReadScreenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := getSessionID(req)

	state, err := t.sessions.Do(sessionID, func(*calculator.Calculator) error { return nil })
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read screen: %v", err)), nil
	}

	return newJSONResult(results.ReadScreenToolResult{
		Message:   fmt.Sprintf("The display shows %s.", state.Display),
		Arguments: results.ReadScreenToolArgs{SessionID: sessionID},
		State:     results.NewCalculatorState(sessionID, state),
	}), nil
}
