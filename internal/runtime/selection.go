package runtime

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
)

// SelectionSort traces a selection sort. The current minimum is annotated as
// the pivot while the remaining suffix is scanned; a swap is only performed
// (and counted) when the minimum moved.
func SelectionSort(values []int) domain.Trace {
	r := NewRecorder(values)
	n := r.Len()

	for i := 0; i < n-1; i++ {
		minIdx := i
		r.Snapshot(fmt.Sprintf("Finding minimum element from position %d onwards", i), func(idx int) domain.Flags {
			return domain.Flags{Comparing: idx == i, Sorted: idx < i}
		})

		for j := i + 1; j < n; j++ {
			r.Compare()
			current := minIdx
			r.Snapshot(fmt.Sprintf("Comparing %d with current minimum %d", r.Value(j), r.Value(current)), func(idx int) domain.Flags {
				return domain.Flags{Comparing: idx == j, Pivot: idx == current, Sorted: idx < i}
			})

			if r.Value(j) < r.Value(minIdx) {
				minIdx = j
			}
		}

		if minIdx != i {
			r.Swap(i, minIdx)
			r.Snapshot(fmt.Sprintf("Swapped elements at positions %d and %d", i, minIdx), func(idx int) domain.Flags {
				return domain.Flags{Swapping: idx == i || idx == minIdx, Sorted: idx <= i}
			})
		}
	}

	return r.Finish("Selection sort completed!")
}
