package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tripweaver/tripweaver/pkg/domain"
)

// Metrics holds the planner's Prometheus collectors.
type Metrics struct {
	planRequests *prometheus.CounterVec
	planDuration prometheus.Histogram
	toolDuration *prometheus.HistogramVec
	toolErrors   *prometheus.CounterVec
	modelRounds  prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// Pass prometheus.DefaultRegisterer for process-wide metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		planRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripweaver_plan_requests_total",
				Help: "Total planning requests by terminal outcome",
			},
			[]string{"outcome"},
		),
		planDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tripweaver_plan_duration_seconds",
				Help:    "End-to-end duration of planning runs",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			},
		),
		toolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "tripweaver_tool_duration_seconds",
				Help: "Duration of tool executions",
			},
			[]string{"tool_name"},
		),
		toolErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripweaver_tool_errors_total",
				Help: "Tool executions that returned a dispatch error",
			},
			[]string{"tool_name"},
		),
		modelRounds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tripweaver_model_rounds_total",
				Help: "Model invocations across all planning runs",
			},
		),
	}

	reg.MustRegister(m.planRequests, m.planDuration, m.toolDuration, m.toolErrors, m.modelRounds)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors. Install
// them on the planner at construction time.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPlanEnd: func(ctx context.Context, e *domain.PlanEvent) {
			m.planRequests.WithLabelValues(string(e.Outcome)).Inc()
			m.planDuration.Observe(e.Duration.Seconds())
		},
		OnToolReturn: func(ctx context.Context, e *domain.ToolEvent) {
			m.toolDuration.WithLabelValues(e.ToolName).Observe(e.Duration.Seconds())
			if e.IsError {
				m.toolErrors.WithLabelValues(e.ToolName).Inc()
			}
		},
		OnModelRound: func(ctx context.Context) {
			m.modelRounds.Inc()
		},
	}
}
