package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/internal/tools"
	"github.com/averycrespi/calculator-mcp/pkg/project"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Manager
	config    types.Config
	stdin     io.Reader
	stdout    io.Writer
}

// NewCalculatorServer creates a new calculator MCP server that talks MCP over stdin and stdout
func NewCalculatorServer(config types.Config, recorder metrics.Recorder, stdin io.Reader, stdout io.Writer) (*CalculatorServer, error) {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	sessions, err := session.NewManager(config.MaxSessions, recorder)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s := &CalculatorServer{
		mcpServer: mcpServer,
		sessions:  sessions,
		config:    config,
		stdin:     stdin,
		stdout:    stdout,
	}
	s.registerTools(recorder)
	return s, nil
}

// Serve serves MCP requests until ctx is cancelled or stdin is closed
func (s *CalculatorServer) Serve(ctx context.Context) error {
	slog.Info("Starting calculator MCP server", "version", project.Version, "max_sessions", s.config.MaxSessions)

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, s.stdin, s.stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("Calculator MCP server stopped")
	return nil
}

func (s *CalculatorServer) registerTools(recorder metrics.Recorder) {
	for _, tool := range tools.All(s.sessions, recorder) {
		definition := tool.GetTool()
		s.mcpServer.AddTool(definition, tool.Handle)
		slog.Debug("Registered tool", "name", definition.Name)
	}
}
