package results

// NewSessionToolResult represents the result of the new session tool
type NewSessionToolResult struct {
	Message string          `json:"message"`
	State   CalculatorState `json:"state"`
}

// CloseSessionToolResult represents the result of the close session tool
type CloseSessionToolResult struct {
	Message   string               `json:"message"`
	Arguments CloseSessionToolArgs `json:"arguments"`
	Sessions  []string             `json:"sessions"`
}

// CloseSessionToolArgs represents the arguments for the close session tool
type CloseSessionToolArgs struct {
	SessionID string `json:"session_id"`
}
