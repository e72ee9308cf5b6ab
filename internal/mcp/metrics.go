package mcp

import (
	"context"
	"time"

	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
)

// Tool call outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics counts tool calls and their latency.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the tool call collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airflow_mcp_tool_calls_total",
				Help: "Total number of MCP tool calls.",
			},
			[]string{"tool", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "airflow_mcp_tool_call_duration_seconds",
				Help:    "Duration of MCP tool calls.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

// Middleware records every tool call. A result flagged IsError counts as an error.
func (m *Metrics) Middleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, r)
			m.duration.WithLabelValues(r.Params.Name).Observe(time.Since(start).Seconds())
			m.calls.WithLabelValues(r.Params.Name, outcome(result, err)).Inc()
			return result, err
		}
	}
}

// LoggingMiddleware logs each tool call with its duration.
func LoggingMiddleware(logger *common.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, r)
			event := logger.Info()
			if outcome(result, err) == OutcomeError {
				event = logger.Warn()
			}
			event.
				Str("tool", r.Params.Name).
				Str("outcome", outcome(result, err)).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("tool call")
			return result, err
		}
	}
}

func outcome(result *mcp.CallToolResult, err error) string {
	if err != nil || result == nil || result.IsError {
		return OutcomeError
	}
	return OutcomeOK
}
