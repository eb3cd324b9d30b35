package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Store implements ports.HistoryStore in memory.
// Safe for concurrent use. Records are copied on the way in and out.
type Store struct {
	mu         sync.RWMutex
	executions []domain.ExecutionRecord
	analyses   []domain.ComplexityRecord
	queries    []domain.AssistantRecord
}

// NewStore creates a new in-memory history store.
func NewStore() *Store {
	return &Store{}
}

// RecordExecution appends an execution summary.
func (s *Store) RecordExecution(ctx context.Context, rec domain.ExecutionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executions = append(s.executions, rec)
	return nil
}

// RecordAnalysis appends a complexity analysis.
func (s *Store) RecordAnalysis(ctx context.Context, rec domain.ComplexityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = append(s.analyses, rec)
	return nil
}

// RecordQuery appends an assistant exchange.
func (s *Store) RecordQuery(ctx context.Context, rec domain.AssistantRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, rec)
	return nil
}

// ListExecutions returns matching records newest first. Records with equal
// timestamps are returned most recently recorded first.
func (s *Store) ListExecutions(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExecutionRecord, int, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	matched := make([]domain.ExecutionRecord, 0, len(s.executions))
	for i := len(s.executions) - 1; i >= 0; i-- {
		if filter.Matches(s.executions[i]) {
			matched = append(matched, s.executions[i])
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(matched, func(a, b domain.ExecutionRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	total := len(matched)
	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

// GetExecution returns the record with the given id.
func (s *Store) GetExecution(ctx context.Context, id string) (*domain.ExecutionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.executions {
		if rec.ID == id {
			ret := rec
			return &ret, nil
		}
	}
	return nil, domain.ErrExecutionNotFound
}

// Analyses returns a copy of the recorded complexity analyses, oldest first.
func (s *Store) Analyses() []domain.ComplexityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.analyses)
}

// Queries returns a copy of the recorded assistant exchanges, oldest first.
func (s *Store) Queries() []domain.AssistantRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.queries)
}
