package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewSessionTool handles new session requests
type NewSessionTool struct {
	keypad
}

// NewNewSessionTool creates a new new session tool
func NewNewSessionTool(sessions types.SessionStore, recorder metrics.Recorder) *NewSessionTool {
	return &NewSessionTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *NewSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Open a separate calculator showing 0 and return its session ID. "+
			"Pass the ID as session_id to the other tools to use it."),
	)
}

// Handle processes the tool request
func (t *NewSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := t.sessions.Create()
	if err != nil {
		slog.Warn("Failed to create calculator session", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create session: %v", err)), nil
	}

	state, err := t.sessions.Do(id, func(*calculator.Calculator) error { return nil })
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read new session: %v", err)), nil
	}

	return newJSONResult(results.NewSessionToolResult{
		Message: fmt.Sprintf("Created session %s.", id),
		State:   results.NewCalculatorState(id, state),
	}), nil
}
