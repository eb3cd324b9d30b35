package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventExecutionStart  EventType = "execution_start"
	EventExecutionFinish EventType = "execution_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ExecutionEvent describes one engine invocation.
// Result fields are only populated on EventExecutionFinish.
type ExecutionEvent struct {
	EventBase
	Algorithm   AlgorithmID   `json:"algorithm"`
	InputSize   int           `json:"input_size"`
	Steps       int           `json:"steps,omitempty"`
	Comparisons int           `json:"comparisons,omitempty"`
	Swaps       int           `json:"swaps,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	Err         error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the calling goroutine and must not block.
type LifecycleHooks struct {
	OnExecutionStart  func(context.Context, *ExecutionEvent)
	OnExecutionFinish func(context.Context, *ExecutionEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnExecutionStart:  chain(h.OnExecutionStart, other.OnExecutionStart),
		OnExecutionFinish: chain(h.OnExecutionFinish, other.OnExecutionFinish),
	}
}

func chain(a, b func(context.Context, *ExecutionEvent)) func(context.Context, *ExecutionEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *ExecutionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
