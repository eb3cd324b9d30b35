package observability

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// Metrics holds the engine collectors.
type Metrics struct {
	executions *prometheus.CounterVec
	steps      *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
	operations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algotrace_executions_total",
				Help: "Total number of algorithm executions by outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algotrace_trace_steps",
				Help:    "Number of steps per produced trace",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"algorithm"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algotrace_execution_duration_seconds",
				Help:    "Duration of trace production",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"algorithm"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algotrace_operations_total",
				Help: "Comparisons and swaps counted across all traces",
			},
			[]string{"algorithm", "kind"},
		),
	}

	var err error
	if m.executions, err = register(reg, m.executions); err != nil {
		return nil, err
	}
	if m.steps, err = register(reg, m.steps); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.operations, err = register(reg, m.operations); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, reusing an identical collector that is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Hooks records every finished execution.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExecutionFinish: m.observe,
	}
}

func (m *Metrics) observe(_ context.Context, e *domain.ExecutionEvent) {
	algorithm := string(e.Algorithm)
	if e.Err != nil {
		if !e.Algorithm.Valid() {
			// Keep label cardinality bounded.
			algorithm = "unknown"
		}
		m.executions.WithLabelValues(algorithm, OutcomeRejected).Inc()
		return
	}

	m.executions.WithLabelValues(algorithm, OutcomeSuccess).Inc()
	m.steps.WithLabelValues(algorithm).Observe(float64(e.Steps))
	m.duration.WithLabelValues(algorithm).Observe(e.Duration.Seconds())
	m.operations.WithLabelValues(algorithm, "comparison").Add(float64(e.Comparisons))
	m.operations.WithLabelValues(algorithm, "swap").Add(float64(e.Swaps))
}
