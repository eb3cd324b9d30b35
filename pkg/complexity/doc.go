// Package complexity holds the static complexity table of the supported
// algorithms and the closed-form operation-count estimator.
//
// The table is built once at package initialization and never mutated, so it
// is safe for concurrent readers. Estimates use fixed approximations:
//
//   - n log n class:      floor(n * log2 n)
//   - quadratic average:  floor(n² / 2)
//   - quadratic worst:    n²
//   - logarithmic:        floor(log2 n)
//
// Sizes n <= 1 are special-cased so log2 never sees a value below 1.
package complexity
