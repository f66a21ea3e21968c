package results

// ReadScreenToolResult represents the result of the read screen tool
type ReadScreenToolResult struct {
	Message   string             `json:"message"`
	Arguments ReadScreenToolArgs `json:"arguments"`
	State     CalculatorState    `json:"state"`
}

// ReadScreenToolArgs represents the arguments for the read screen tool
type ReadScreenToolArgs struct {
	SessionID string `json:"session_id,omitempty"`
}
