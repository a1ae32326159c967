package observability

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "parley"

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Metrics holds the collectors fed by loop hooks.
type Metrics struct {
	commands  *prometheus.CounterVec
	unknown   prometheus.Counter
	durations *prometheus.HistogramVec
	depth     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// It panics if they are already registered, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of command handler invocations",
			},
			[]string{"command", "outcome"},
		),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_commands_total",
			Help:      "Total number of input lines that matched no command",
		}),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Duration of command handler invocations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loop_depth",
			Help:      "Nesting level of the innermost running loop",
		}),
	}
	reg.MustRegister(m.commands, m.unknown, m.durations, m.depth)
	return m
}

// Hooks returns loop hooks that record into m.
func (m *Metrics) Hooks() domain.LoopHooks {
	return domain.LoopHooks{
		OnLoopEnter: func(_ context.Context, e *domain.LoopEvent) {
			m.depth.Set(float64(e.Level))
		},
		OnLoopExit: func(_ context.Context, e *domain.LoopEvent) {
			m.depth.Set(float64(e.Level - 1))
		},
		OnCommand: func(_ context.Context, e *domain.CommandEvent) {
			outcome := outcomeOK
			if e.Err != nil {
				outcome = outcomeError
			}
			m.commands.WithLabelValues(e.Command, outcome).Inc()
			m.durations.WithLabelValues(e.Command).Observe(e.Duration.Seconds())
		},
		// Unknown names are not used as labels: user input would make the
		// label set unbounded.
		OnUnknownCommand: func(_ context.Context, _ *domain.CommandEvent) {
			m.unknown.Inc()
		},
	}
}
