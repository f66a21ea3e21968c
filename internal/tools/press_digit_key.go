package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressDigitKeyTool handles digit key presses
type PressDigitKeyTool struct {
	keypad
}

// NewPressDigitKeyTool creates a new press digit key tool
func NewPressDigitKeyTool(sessions types.SessionStore, recorder metrics.Recorder) *PressDigitKeyTool {
	return &PressDigitKeyTool{keypad{sessions: sessions, recorder: recorder}}
}

// GetTool returns the MCP tool definition
func (t *PressDigitKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressDigitKey,
		mcp.WithDescription("Press a digit key. The digit is appended to the display; a display showing only 0 is replaced."),
		mcp.WithNumber("digit", mcp.Required(), mcp.Description("Digit to press (0-9)"), mcp.Min(0), mcp.Max(9)),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressDigitKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := mcp.ParseFloat64(req, "digit", math.NaN())
	if math.IsNaN(raw) {
		return mcp.NewToolResultError("digit parameter is required"), nil
	}
	if raw != math.Trunc(raw) {
		return mcp.NewToolResultError("digit parameter must be a whole number"), nil
	}
	// Only 0-9 may reach the key metric label.
	if raw < 0 || raw > 9 {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press digit key: %v: digit %s is not between 0 and 9",
			calculator.ErrInvalidArgument, strconv.FormatFloat(raw, 'f', -1, 64))), nil
	}

	digit := int(raw)
	args := results.PressKeyToolArgs{SessionID: getSessionID(req), Digit: &digit}
	return t.press(strconv.Itoa(digit), args, func(c *calculator.Calculator) error {
		return c.PressDigitKey(digit)
	}), nil
}
