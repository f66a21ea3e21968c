package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calculator"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	keyPresses    *prom.CounterVec
	errorDisplays prom.Counter
	openSessions  prom.Gauge
}

// NewPrometheusRecorder constructs the calculator metrics and registers them with reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		keyPresses: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "key_presses_total",
			Help:      "Key presses by key label and outcome",
		}, []string{"key", "result"}),
		errorDisplays: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "error_displays_total",
			Help:      "Key presses that left the display showing Error",
		}),
		openSessions: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "open_sessions",
			Help:      "Calculator sessions currently open, including the default session",
		}),
	}
	reg.MustRegister(pr.keyPresses, pr.errorDisplays, pr.openSessions)
	return pr
}

func (pr *PrometheusRecorder) IncKeyPress(key string, result KeyResult) {
	pr.keyPresses.WithLabelValues(key, string(result)).Inc()
}

func (pr *PrometheusRecorder) IncErrorDisplay() {
	pr.errorDisplays.Inc()
}

func (pr *PrometheusRecorder) SetOpenSessions(n int) {
	pr.openSessions.Set(float64(n))
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
