package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/averycrespi/calculator-mcp/internal/config"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/server"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsShutdownTimeout = 5 * time.Second

// ServeCmd implements the 'serve' command
type ServeCmd struct {
	MaxSessions int    `help:"Maximum number of open calculator sessions, including the default one; overrides the config file"`
	MetricsAddr string `help:"Serve Prometheus metrics on this address (e.g. :9464); overrides the config file"`
}

func (s *ServeCmd) Run(root *CLI) error {
	cfg := root.config
	if s.MaxSessions != 0 {
		cfg.MaxSessions = s.MaxSessions
	}
	if s.MetricsAddr != "" {
		cfg.MetricsAddr = s.MetricsAddr
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)

		stop, err := serveMetrics(cfg.MetricsAddr, registry)
		if err != nil {
			return err
		}
		defer stop()
	}

	calcServer, err := server.NewCalculatorServer(cfg, recorder, os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return calcServer.Serve(ctx)
}

// serveMetrics binds addr and serves the metrics endpoint in the background. It returns a
// function that shuts the endpoint down.
func serveMetrics(addr string, registry *prometheus.Registry) (func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for metrics on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(registry))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Serving metrics", "addr", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Warn("Failed to shut down metrics server", "error", err)
		}
	}, nil
}
