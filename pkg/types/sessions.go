package types

import "github.com/averycrespi/calculator-mcp/internal/calculator"

// SessionStore owns the calculators behind the MCP tools and serializes key presses
// per session
type SessionStore interface {
	Create() (string, error)
	Close(id string) error
	Do(id string, fn func(*calculator.Calculator) error) (calculator.State, error)
	List() []string
}
