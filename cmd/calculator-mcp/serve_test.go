package main

import (
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)
	recorder.IncErrorDisplay()

	// Reserve a free port, then hand it to serveMetrics.
	reserved, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := reserved.Addr().String()
	require.NoError(t, reserved.Close())

	stop, err := serveMetrics(addr, registry)
	require.NoError(t, err)
	defer stop()

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "calculator_error_displays_total 1")
}

func TestServeMetricsAddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	stop, err := serveMetrics(taken.Addr().String(), prometheus.NewRegistry())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen for metrics")
	assert.Nil(t, stop)
}
