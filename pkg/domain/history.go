package domain

import (
	"fmt"
	"time"
)

const (
	// DefaultHistoryLimit is used when a filter does not specify a limit.
	DefaultHistoryLimit = 50
	// MaxHistoryLimit is the largest page a store will return.
	MaxHistoryLimit = 100
)

// ExecutionRecord is the persisted summary of one execution. Traces are never stored.
type ExecutionRecord struct {
	ID            string      `json:"id"`
	AlgorithmType AlgorithmID `json:"algorithm_type"`
	AlgorithmName string      `json:"algorithm_name"`
	ArraySize     int         `json:"array_size"`
	Comparisons   int         `json:"comparisons"`
	Swaps         int         `json:"swaps"`
	Category      Category    `json:"category"`
	Timestamp     time.Time   `json:"timestamp"`
}

// ComplexityRecord is the persisted summary of one complexity analysis.
type ComplexityRecord struct {
	ID                  string      `json:"id"`
	AlgorithmType       AlgorithmID `json:"algorithm_type"`
	AlgorithmName       string      `json:"algorithm_name"`
	ArraySize           int         `json:"array_size"`
	EstimatedOperations int         `json:"estimated_operations"`
	Timestamp           time.Time   `json:"timestamp"`
}

// AssistantRecord is the persisted exchange with the assistant.
type AssistantRecord struct {
	ID        string    `json:"id"`
	UserQuery string    `json:"user_query"`
	Response  string    `json:"ai_response"`
	Context   string    `json:"context,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryFilter selects execution records. A zero AlgorithmType matches all.
type HistoryFilter struct {
	AlgorithmType AlgorithmID `json:"algorithm_type,omitempty"`
	Limit         int         `json:"limit,omitempty"`
}

// Normalize applies the default limit and validates the range.
func (f HistoryFilter) Normalize() (HistoryFilter, error) {
	if f.Limit == 0 {
		f.Limit = DefaultHistoryLimit
	}
	if f.Limit < 1 || f.Limit > MaxHistoryLimit {
		return f, fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidLimit, f.Limit, MaxHistoryLimit)
	}
	if f.AlgorithmType != "" {
		id, err := ParseAlgorithmID(string(f.AlgorithmType))
		if err != nil {
			return f, err
		}
		f.AlgorithmType = id
	}
	return f, nil
}

// Matches reports whether the record passes the filter's algorithm constraint.
func (f HistoryFilter) Matches(r ExecutionRecord) bool {
	return f.AlgorithmType == "" || f.AlgorithmType == r.AlgorithmType
}

// HistoryPage is one page of execution records, newest first.
type HistoryPage struct {
	Entries []ExecutionRecord `json:"entries"`
	Total   int               `json:"total"`
}
