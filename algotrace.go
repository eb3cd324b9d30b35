package algotrace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/algotrace/internal/runtime"
	"github.com/aretw0/algotrace/internal/sanitize"
	"github.com/aretw0/algotrace/pkg/complexity"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/ports"
)

// Engine is the high-level entry point for the algotrace library.
// It wraps the trace runtime and adds complexity analysis, history and the assistant.
// An Engine is safe for concurrent use when its history store and assistant are.
type Engine struct {
	runtime   *runtime.Engine
	history   ports.HistoryStore
	assistant ports.Assistant
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	now       func() time.Time
	maxInput  *int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHistory records a summary of every execution, analysis and question.
func WithHistory(store ports.HistoryStore) Option {
	return func(e *Engine) {
		e.history = store
	}
}

// WithAssistant enables Ask.
func WithAssistant(a ports.Assistant) Option {
	return func(e *Engine) {
		e.assistant = a
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxInputSize bounds the array length accepted by Execute.
// Zero or negative disables the check. The default is runtime.DefaultMaxInputSize.
func WithMaxInputSize(n int) Option {
	return func(e *Engine) {
		e.maxInput = &n
	}
}

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New initializes a new Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("component", "engine")
	if eng.now == nil {
		eng.now = time.Now
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithClock(eng.now),
	}
	if eng.maxInput != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithMaxInputSize(*eng.maxInput))
	}
	eng.runtime = runtime.NewEngine(runtimeOpts...)

	return eng, nil
}

// MaxInputSize returns the array length ceiling (zero when disabled).
func (e *Engine) MaxInputSize() int {
	return e.runtime.MaxInputSize()
}

// ExecuteRequest selects an algorithm and its input.
type ExecuteRequest struct {
	Algorithm string `json:"algorithm_type" mapstructure:"algorithm_type"`
	Array     []int  `json:"array" mapstructure:"array"`
	// Target is required for searching algorithms and ignored otherwise.
	Target *int `json:"search_target,omitempty" mapstructure:"search_target"`
}

// Execute produces the trace for the request. The algorithm name is
// case-insensitive. A failure to record history is logged and does not fail the call.
func (e *Engine) Execute(ctx context.Context, req ExecuteRequest) (*domain.Execution, error) {
	id, err := domain.ParseAlgorithmID(req.Algorithm)
	if err != nil {
		// Let the runtime reject it so hooks observe the failure.
		id = domain.AlgorithmID(req.Algorithm)
	}

	trace, err := e.runtime.Execute(ctx, id, req.Array, req.Target)
	if err != nil {
		return nil, err
	}

	info, err := complexity.Lookup(id)
	if err != nil {
		return nil, err
	}

	comparisons, swaps := trace.Totals()
	exec := &domain.Execution{
		AlgorithmType:    id,
		AlgorithmName:    info.Name,
		Category:         info.Category,
		Steps:            trace,
		Complexity:       info.Complexity,
		TotalComparisons: comparisons,
		TotalSwaps:       swaps,
		Timestamp:        e.now().UTC(),
	}

	if e.history != nil {
		rec := domain.ExecutionRecord{
			ID:            uuid.NewString(),
			AlgorithmType: id,
			AlgorithmName: info.Name,
			ArraySize:     len(req.Array),
			Comparisons:   comparisons,
			Swaps:         swaps,
			Category:      info.Category,
			Timestamp:     exec.Timestamp,
		}
		if err := e.history.RecordExecution(ctx, rec); err != nil {
			e.logger.Warn("failed to record execution", "algorithm", id, "err", err)
		} else {
			exec.HistoryID = rec.ID
		}
	}

	return exec, nil
}

// Analyze returns the static complexity of an algorithm together with the
// operation estimates for an input of size n.
func (e *Engine) Analyze(ctx context.Context, algorithm string, n int) (*domain.Analysis, error) {
	id, err := domain.ParseAlgorithmID(algorithm)
	if err != nil {
		return nil, err
	}
	estimate, err := complexity.EstimateOperations(id, n)
	if err != nil {
		return nil, err
	}
	info, err := complexity.Lookup(id)
	if err != nil {
		return nil, err
	}

	analysis := &domain.Analysis{
		AlgorithmType:       id,
		AlgorithmName:       info.Name,
		Complexity:          info.Complexity,
		EstimatedOperations: estimate,
		ArraySize:           n,
	}

	if e.history != nil {
		err := e.history.RecordAnalysis(ctx, domain.ComplexityRecord{
			ID:                  uuid.NewString(),
			AlgorithmType:       id,
			AlgorithmName:       info.Name,
			ArraySize:           n,
			EstimatedOperations: estimate.Average,
			Timestamp:           e.now().UTC(),
		})
		if err != nil {
			e.logger.Warn("failed to record analysis", "algorithm", id, "err", err)
		}
	}

	return analysis, nil
}

// Ask forwards a question to the configured assistant.
// algorithmContext optionally names the algorithm the user is looking at.
func (e *Engine) Ask(ctx context.Context, query, algorithmContext string) (*domain.Answer, error) {
	if e.assistant == nil {
		return nil, domain.ErrAssistantUnavailable
	}
	query, err := sanitize.Query(query)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	algorithmContext, err = sanitize.Query(algorithmContext)
	if err != nil {
		return nil, err
	}

	response, err := e.assistant.Ask(ctx, query, algorithmContext)
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}
	answer := &domain.Answer{Response: response, Timestamp: e.now().UTC()}

	if e.history != nil {
		err := e.history.RecordQuery(ctx, domain.AssistantRecord{
			ID:        uuid.NewString(),
			UserQuery: query,
			Response:  response,
			Context:   algorithmContext,
			Timestamp: answer.Timestamp,
		})
		if err != nil {
			e.logger.Warn("failed to record query", "err", err)
		}
	}

	return answer, nil
}

// History lists recorded executions, newest first. Without a store the page is empty.
func (e *Engine) History(ctx context.Context, filter domain.HistoryFilter) (*domain.HistoryPage, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}
	if e.history == nil {
		return &domain.HistoryPage{Entries: []domain.ExecutionRecord{}}, nil
	}

	entries, total, err := e.history.ListExecutions(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.ExecutionRecord{}
	}
	return &domain.HistoryPage{Entries: entries, Total: total}, nil
}

// HistoryEntry returns one recorded execution.
func (e *Engine) HistoryEntry(ctx context.Context, id string) (*domain.ExecutionRecord, error) {
	if e.history == nil {
		return nil, domain.ErrExecutionNotFound
	}
	return e.history.GetExecution(ctx, id)
}

// HasAssistant reports whether Ask can succeed.
func (e *Engine) HasAssistant() bool {
	return e.assistant != nil
}

// Algorithms describes every supported algorithm in canonical order.
func (e *Engine) Algorithms() []complexity.Info {
	return complexity.All()
}

// Metadata returns the name and category of an algorithm.
func (e *Engine) Metadata(algorithm string) (domain.Metadata, error) {
	id, err := domain.ParseAlgorithmID(algorithm)
	if err != nil {
		return domain.Metadata{}, err
	}
	return complexity.Metadata(id)
}

// Complexity returns the static complexity of an algorithm.
func (e *Engine) Complexity(algorithm string) (domain.Complexity, error) {
	id, err := domain.ParseAlgorithmID(algorithm)
	if err != nil {
		return domain.Complexity{}, err
	}
	info, err := complexity.Lookup(id)
	if err != nil {
		return domain.Complexity{}, err
	}
	return info.Complexity, nil
}

// EstimateOperations returns best, average and worst operation counts for size n.
func (e *Engine) EstimateOperations(algorithm string, n int) (domain.OperationEstimate, error) {
	id, err := domain.ParseAlgorithmID(algorithm)
	if err != nil {
		return domain.OperationEstimate{}, err
	}
	return complexity.EstimateOperations(id, n)
}
