package runtime

import (
	"github.com/aretw0/algotrace/pkg/domain"
)

// SortFunc produces the trace of a sorting variant.
type SortFunc func(values []int) domain.Trace

// SearchFunc produces the trace of a searching variant.
type SearchFunc func(values []int, target int) domain.Trace

// The dispatch tables are populated once and only read afterwards.
var (
	sorters = map[domain.AlgorithmID]SortFunc{
		domain.Bubble:    BubbleSort,
		domain.Quick:     QuickSort,
		domain.Merge:     MergeSort,
		domain.Selection: SelectionSort,
		domain.Insertion: InsertionSort,
	}
	searchers = map[domain.AlgorithmID]SearchFunc{
		domain.Linear: LinearSearch,
		domain.Binary: BinarySearch,
	}
)
