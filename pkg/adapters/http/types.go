package http

import (
	"time"

	"github.com/aretw0/algotrace/pkg/complexity"
)

// ExecuteAlgorithmRequest defines the body of POST /api/execute-algorithm.
type ExecuteAlgorithmRequest struct {
	AlgorithmType string `json:"algorithm_type"`
	Array         []int  `json:"array"`
	SearchTarget  *int   `json:"search_target,omitempty"`
}

// AnalyzeComplexityRequest defines the body of POST /api/analyze-complexity.
type AnalyzeComplexityRequest struct {
	AlgorithmType string `json:"algorithm_type"`
	ArraySize     int    `json:"array_size"`
}

// AIQueryRequest defines the body of POST /api/ai/query.
type AIQueryRequest struct {
	UserQuery string  `json:"user_query"`
	Context   *string `json:"context,omitempty"`
}

// ListHistoryParams defines the query parameters of GET /api/history.
type ListHistoryParams struct {
	AlgorithmType *string `form:"algorithm_type,omitempty" json:"algorithm_type,omitempty"`
	Limit         *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// HealthResponse defines the body of GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// AlgorithmsResponse defines the body of GET /api/algorithms.
type AlgorithmsResponse struct {
	Algorithms []complexity.Info `json:"algorithms"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
