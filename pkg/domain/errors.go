package domain

import "errors"

// ErrUnknownAlgorithm is returned when an algorithm identifier is outside the supported set.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrMissingSearchTarget is returned when a search algorithm is invoked without a target.
var ErrMissingSearchTarget = errors.New("search target is required")

// ErrInvalidArraySize is returned when a non-positive size is given to the estimator.
var ErrInvalidArraySize = errors.New("array size must be positive")

// ErrInputTooLarge is returned when the input exceeds the configured ceiling.
// Trace size grows quadratically with the input, so hosts bound it up front.
var ErrInputTooLarge = errors.New("input exceeds maximum size")

// ErrInvalidLimit is returned when a history page limit is out of range.
var ErrInvalidLimit = errors.New("limit out of range")

// ErrExecutionNotFound is returned when a history entry cannot be found in the store.
var ErrExecutionNotFound = errors.New("execution not found")

// ErrAssistantUnavailable is returned when no assistant is configured.
var ErrAssistantUnavailable = errors.New("assistant not configured")

// ErrEmptyQuery is returned when the assistant is asked an empty question.
var ErrEmptyQuery = errors.New("query must not be empty")

// ErrInvalidQuery is returned when an assistant query is too large or not valid UTF-8.
var ErrInvalidQuery = errors.New("invalid query")
