package domain

import (
	"fmt"
	"strings"
)

// AlgorithmID identifies one of the supported algorithm variants.
type AlgorithmID string

const (
	Bubble    AlgorithmID = "bubble"
	Quick     AlgorithmID = "quick"
	Merge     AlgorithmID = "merge"
	Selection AlgorithmID = "selection"
	Insertion AlgorithmID = "insertion"
	Linear    AlgorithmID = "linear"
	Binary    AlgorithmID = "binary"
)

// canonical listing order, shared by every adapter that enumerates algorithms.
var algorithmOrder = []AlgorithmID{Bubble, Quick, Merge, Selection, Insertion, Linear, Binary}

// AlgorithmIDs returns every supported identifier in canonical order.
func AlgorithmIDs() []AlgorithmID {
	out := make([]AlgorithmID, len(algorithmOrder))
	copy(out, algorithmOrder)
	return out
}

// ParseAlgorithmID normalizes s (trim + lower case) and checks it against the supported set.
func ParseAlgorithmID(s string) (AlgorithmID, error) {
	id := AlgorithmID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return id, nil
}

// Valid reports whether the identifier belongs to the supported set.
func (a AlgorithmID) Valid() bool {
	for _, id := range algorithmOrder {
		if a == id {
			return true
		}
	}
	return false
}

// IsSearch reports whether the algorithm requires a search target.
func (a AlgorithmID) IsSearch() bool {
	return a == Linear || a == Binary
}

func (a AlgorithmID) String() string {
	return string(a)
}

// Category groups algorithms for presentation and history.
type Category string

const (
	CategorySorting   Category = "sorting"
	CategorySearching Category = "searching"
)

// Metadata is the human-facing description of an algorithm.
type Metadata struct {
	ID       AlgorithmID `json:"algorithm_type"`
	Name     string      `json:"name"`
	Category Category    `json:"category"`
}

// Complexity holds the asymptotic classes and structural properties of an algorithm.
type Complexity struct {
	TimeBest    string `json:"time_best"`
	TimeAverage string `json:"time_average"`
	TimeWorst   string `json:"time_worst"`
	Space       string `json:"space"`
	Stable      bool   `json:"stable"`
	InPlace     bool   `json:"in_place"`
}

// OperationEstimate is the closed-form operation count for an input size.
type OperationEstimate struct {
	Best    int `json:"best"`
	Average int `json:"average"`
	Worst   int `json:"worst"`
}
