package types

// Config represents the configuration for the calculator-mcp server
type Config struct {
	LogLevel    string `json:"log_level,omitempty" yaml:"log_level"`
	MaxSessions int    `json:"max_sessions,omitempty" yaml:"max_sessions"`
	MetricsAddr string `json:"metrics_addr,omitempty" yaml:"metrics_addr"`
}
