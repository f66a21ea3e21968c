package results

// PressKeyToolResult represents the result of any of the key press tools
type PressKeyToolResult struct {
	Message   string           `json:"message"`
	Arguments PressKeyToolArgs `json:"arguments"`
	State     CalculatorState  `json:"state"`
}

// PressKeyToolArgs represents the arguments of the key press tools; only the ones the
// tool takes are set
type PressKeyToolArgs struct {
	SessionID string `json:"session_id,omitempty"`
	Digit     *int   `json:"digit,omitempty"`
	Operation string `json:"operation,omitempty"`
	Keys      string `json:"keys,omitempty"`
}
