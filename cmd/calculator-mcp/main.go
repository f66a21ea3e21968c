package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/averycrespi/calculator-mcp/internal/config"
	"github.com/averycrespi/calculator-mcp/pkg/project"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

// CLI holds the global flags and subcommands
type CLI struct {
	Config   string           `short:"c" help:"Configuration file path (YAML)" type:"path"`
	LogLevel string           `help:"Log level (debug, info, warn, error); overrides the config file"`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve ServeCmd `cmd:"" default:"withargs" help:"Serve the calculator over MCP on stdin and stdout"`
	Run   RunCmd   `cmd:"" help:"Replay a key tape and print the display after every key"`

	config types.Config
}

// AfterApply loads the configuration and sets up logging once flags are parsed
func (c *CLI) AfterApply() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	// stdout carries MCP messages, so logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c.config = cfg
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name(project.Name),
		kong.Description("A calculator keypad served as MCP tools."),
		kong.Vars{"version": project.Version},
		kong.Bind(&cli),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
