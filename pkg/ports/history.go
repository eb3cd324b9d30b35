package ports

import (
	"context"

	"github.com/aretw0/algotrace/pkg/domain"
)

// HistoryStore persists summaries of engine activity.
type HistoryStore interface {
	// RecordExecution stores the summary of one algorithm run.
	RecordExecution(ctx context.Context, rec domain.ExecutionRecord) error

	// RecordAnalysis stores one complexity analysis.
	RecordAnalysis(ctx context.Context, rec domain.ComplexityRecord) error

	// RecordQuery stores one exchange with the assistant.
	RecordQuery(ctx context.Context, rec domain.AssistantRecord) error

	// ListExecutions returns execution records newest first, together with the
	// number of records matching the filter before the limit is applied.
	// Implementations normalize the filter and return domain.ErrInvalidLimit
	// or domain.ErrUnknownAlgorithm for a bad one.
	ListExecutions(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExecutionRecord, int, error)

	// GetExecution returns a single record.
	// Returns domain.ErrExecutionNotFound if the id is unknown.
	GetExecution(ctx context.Context, id string) (*domain.ExecutionRecord, error)
}
