package domain

import "time"

// Execution is the result of running one algorithm through the public engine.
type Execution struct {
	AlgorithmType    AlgorithmID `json:"algorithm_type"`
	AlgorithmName    string      `json:"algorithm_name"`
	Category         Category    `json:"category"`
	Steps            Trace       `json:"steps"`
	Complexity       Complexity  `json:"complexity"`
	TotalComparisons int         `json:"total_comparisons"`
	TotalSwaps       int         `json:"total_swaps"`
	Timestamp        time.Time   `json:"timestamp"`

	// HistoryID is the id of the persisted summary, empty when no store is configured
	// or when recording failed.
	HistoryID string `json:"history_id,omitempty"`
}

// Analysis is the result of a complexity analysis for one input size.
type Analysis struct {
	AlgorithmType       AlgorithmID       `json:"algorithm_type"`
	AlgorithmName       string            `json:"algorithm_name"`
	Complexity          Complexity        `json:"complexity"`
	EstimatedOperations OperationEstimate `json:"estimated_operations"`
	ArraySize           int               `json:"array_size"`
}

// Answer is a response from the assistant.
type Answer struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
