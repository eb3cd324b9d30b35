package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/algotrace/pkg/domain"
)

// DefaultMaxInputSize bounds the input length accepted by a default engine.
// Quadratic variants emit O(n²) steps, each holding a full array snapshot.
const DefaultMaxInputSize = 1000

// Engine dispatches an algorithm identifier to its trace-producing variant.
// It holds configuration only; every call builds its own working copy and
// counters, so one Engine can serve concurrent callers without locks.
type Engine struct {
	logger       *slog.Logger
	hooks        domain.LifecycleHooks
	maxInputSize int
	now          func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxInputSize sets the input ceiling. Zero or negative disables the check.
func WithMaxInputSize(n int) EngineOption {
	return func(e *Engine) {
		e.maxInputSize = n
	}
}

// WithClock overrides the clock used for event timestamps and durations.
// Traces never depend on it.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine with the default input ceiling and a no-op logger.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxInputSize: DefaultMaxInputSize,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxInputSize returns the configured input ceiling (zero when disabled).
func (e *Engine) MaxInputSize() int {
	if e.maxInputSize < 0 {
		return 0
	}
	return e.maxInputSize
}

// Execute runs one algorithm over a private copy of values.
//
// A target is required for searching variants and ignored for sorting ones.
// The call is all-or-nothing: on error no trace is returned. The context is
// only consulted before dispatch; once started, a run completes.
func (e *Engine) Execute(ctx context.Context, id domain.AlgorithmID, values []int, target *int) (domain.Trace, error) {
	err := e.validate(id, values, target)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		e.logger.Debug("execution rejected", "algorithm", id, "size", len(values), "err", err)
		if e.hooks.OnExecutionFinish != nil {
			e.hooks.OnExecutionFinish(ctx, &domain.ExecutionEvent{
				EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventExecutionFinish},
				Algorithm: id,
				InputSize: len(values),
				Err:       err,
			})
		}
		return nil, err
	}

	start := e.now()
	if e.hooks.OnExecutionStart != nil {
		e.hooks.OnExecutionStart(ctx, &domain.ExecutionEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventExecutionStart},
			Algorithm: id,
			InputSize: len(values),
		})
	}

	var trace domain.Trace
	if id.IsSearch() {
		trace = searchers[id](values, *target)
	} else {
		trace = sorters[id](values)
	}

	end := e.now()
	comparisons, swaps := trace.Totals()
	e.logger.Debug("execution finished",
		"algorithm", id,
		"size", len(values),
		"steps", len(trace),
		"comparisons", comparisons,
		"swaps", swaps,
	)

	if e.hooks.OnExecutionFinish != nil {
		e.hooks.OnExecutionFinish(ctx, &domain.ExecutionEvent{
			EventBase:   domain.EventBase{Timestamp: end, Type: domain.EventExecutionFinish},
			Algorithm:   id,
			InputSize:   len(values),
			Steps:       len(trace),
			Comparisons: comparisons,
			Swaps:       swaps,
			Duration:    end.Sub(start),
		})
	}

	return trace, nil
}

func (e *Engine) validate(id domain.AlgorithmID, values []int, target *int) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, id)
	}
	if id.IsSearch() && target == nil {
		return fmt.Errorf("%w: %s", domain.ErrMissingSearchTarget, id)
	}
	if limit := e.MaxInputSize(); limit > 0 && len(values) > limit {
		return fmt.Errorf("%w: %d elements (limit %d)", domain.ErrInputTooLarge, len(values), limit)
	}
	return nil
}
