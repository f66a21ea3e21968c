package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// CloseSessionTool handles close session requests
type CloseSessionTool struct {
	keypad
}

// NewCloseSessionTool creates a new close session tool
func NewCloseSessionTool(sessions types.SessionStore, recorder metrics.Recorder) *CloseSessionTool {
	return &CloseSessionTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Close a session opened with new_session. The default session cannot be closed."),
		mcp.WithString(ParamSessionID, mcp.Required(), mcp.Description("Session ID returned by new_session")),
	)
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseString(req, ParamSessionID, "")
	if id == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	if err := t.sessions.Close(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to close session: %v", err)), nil
	}

	return newJSONResult(results.CloseSessionToolResult{
		Message:   fmt.Sprintf("Closed session %s.", id),
		Arguments: results.CloseSessionToolArgs{SessionID: id},
		Sessions:  t.sessions.List(),
	}), nil
}
