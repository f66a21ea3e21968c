package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolReadScreen              = "read_screen"
	ToolPressDigitKey           = "press_digit_key"
	ToolPressClearKey           = "press_clear_key"
	ToolPressBinaryOperationKey = "press_binary_operation_key"
	ToolPressUnaryOperationKey  = "press_unary_operation_key"
	ToolPressDotKey             = "press_dot_key"
	ToolPressNegativeKey        = "press_negative_key"
	ToolPressEqualsKey          = "press_equals_key"
	ToolPressKeys               = "press_keys"
	ToolNewSession              = "new_session"
	ToolCloseSession            = "close_session"
)

// ParamSessionID is accepted by every tool that acts on a calculator
const ParamSessionID = "session_id"

// Tool is an MCP tool definition together with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool, in the order they are registered
func All(sessions types.SessionStore, recorder metrics.Recorder) []Tool {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return []Tool{
		NewReadScreenTool(sessions, recorder),
		NewPressDigitKeyTool(sessions, recorder),
		NewPressClearKeyTool(sessions, recorder),
		NewPressBinaryOperationKeyTool(sessions, recorder),
		NewPressUnaryOperationKeyTool(sessions, recorder),
		NewPressDotKeyTool(sessions, recorder),
		NewPressNegativeKeyTool(sessions, recorder),
		NewPressEqualsKeyTool(sessions, recorder),
		NewPressKeysTool(sessions, recorder),
		NewNewSessionTool(sessions, recorder),
		NewCloseSessionTool(sessions, recorder),
	}
}

// keypad holds what every calculator tool needs
type keypad struct {
	sessions types.SessionStore
	recorder metrics.Recorder
}

// press runs fn against the session's calculator and reports the resulting state
func (k keypad) press(key string, args results.PressKeyToolArgs, fn func(*calculator.Calculator) error) *mcp.CallToolResult {
	state, err := k.sessions.Do(args.SessionID, fn)
	if errors.Is(err, session.ErrUnknownSession) {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press %s key: %v", key, err))
	}
	if err != nil {
		k.recorder.IncKeyPress(key, metrics.KeyResultInvalidArgument)
		slog.Debug("Key press rejected", "session_id", args.SessionID, "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press %s key: %v", key, err))
	}

	k.recorder.IncKeyPress(key, metrics.KeyResultOK)
	if state.Display == calculator.ErrorDisplay {
		k.recorder.IncErrorDisplay()
	}

	return newJSONResult(results.PressKeyToolResult{
		Message:   fmt.Sprintf("Pressed %s key. The display shows %s.", key, state.Display),
		Arguments: args,
		State:     results.NewCalculatorState(args.SessionID, state),
	})
}

// withSessionID declares the optional session ID parameter
func withSessionID() mcp.ToolOption {
	return mcp.WithString(ParamSessionID,
		mcp.Description("Calculator session ID returned by new_session; the default session is used when omitted"),
	)
}

// getSessionID extracts the session ID from an MCP request
func getSessionID(req mcp.CallToolRequest) string {
	return session.Resolve(mcp.ParseString(req, ParamSessionID, ""))
}

// newJSONResult marshals a tool result into a text result
func newJSONResult(v any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err))
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
