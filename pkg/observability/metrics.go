package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/scrambler/pkg/domain"
)

// Metrics holds the engine collectors.
type Metrics struct {
	CommandsApplied *prometheus.CounterVec
	Lines           *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CommandsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scrambler_commands_applied_total",
				Help: "Total number of commands applied, by operator family and direction",
			},
			[]string{"family", "direction"},
		),
		Lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scrambler_lines_total",
				Help: "Total number of command lines processed, by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.CommandsApplied, m.Lines)
	}
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommandApply: func(_ context.Context, e *domain.CommandEvent) {
			m.CommandsApplied.WithLabelValues(string(e.Family), e.Direction.String()).Inc()
		},
		OnLineDone: func(_ context.Context, e *domain.LineEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			}
			m.Lines.WithLabelValues(e.Direction.String(), outcome).Inc()
		},
	}
}

// Chain merges several hook sets; each callback runs in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommandApply: func(ctx context.Context, e *domain.CommandEvent) {
			for _, h := range sets {
				if h.OnCommandApply != nil {
					h.OnCommandApply(ctx, e)
				}
			}
		},
		OnLineDone: func(ctx context.Context, e *domain.LineEvent) {
			for _, h := range sets {
				if h.OnLineDone != nil {
					h.OnLineDone(ctx, e)
				}
			}
		},
	}
}
