package tools

import (
	"context"
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

// PressKeysTool handles key sequence requests
type PressKeysTool struct {
	keypad
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(sessions types.SessionStore, recorder metrics.Recorder) *PressKeysTool {
	return &PressKeysTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a sequence of keys in one call, stopping at the first key that fails. "+
			"Keys already pressed stay pressed."),
		mcp.WithString("keys",
			mcp.Required(),
			mcp.Description("Space separated keys: digits 0-9, + - x / √ % 1/x, . (dot), +/- (sign), C (clear) and =. "+
				"Example: \"1 2 + 3 =\""),
		),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sequence := mcp.ParseString(req, "keys", "")
	keys, err := calculator.ParseKeys(sequence)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(keys) == 0 {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	args := results.PressKeyToolArgs{SessionID: getSessionID(req), Keys: sequence}

	var pressed int
	state, err := t.sessions.Do(args.SessionID, func(c *calculator.Calculator) error {
		var err error
		pressed, err = c.PressAll(keys, func(key calculator.Key, err error) {
			if err != nil {
				t.recorder.IncKeyPress(key.String(), metrics.KeyResultInvalidArgument)
				return
			}
			t.recorder.IncKeyPress(key.String(), metrics.KeyResultOK)
		})
		return err
	})
	if errors.Is(err, session.ErrUnknownSession) {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	}
	if err != nil {
		slog.Debug("Key sequence stopped", "session_id", args.SessionID, "pressed", pressed, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf(
			"Failed after pressing %d of %d keys: %v. The display shows %s.",
			pressed, len(keys), err, state.Display,
		)), nil
	}

	if state.Display == calculator.ErrorDisplay {
		t.recorder.IncErrorDisplay()
	}

	return newJSONResult(results.PressKeyToolResult{
		Message:   fmt.Sprintf("Pressed %d keys. The display shows %s.", pressed, state.Display),
		Arguments: args,
		State:     results.NewCalculatorState(args.SessionID, state),
	}), nil
}
