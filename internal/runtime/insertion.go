package runtime

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
)

// InsertionSort traces an insertion sort.
//
// The key travels down the sorted prefix by adjacent exchanges, so it always
// sits at position j+1 while larger elements shift right past it. This keeps
// every id present exactly once in every step. Each shift and the final
// placement count as one swap.
func InsertionSort(values []int) domain.Trace {
	r := NewRecorder(values)
	n := r.Len()

	for i := 1; i < n; i++ {
		key := r.At(i)
		r.Snapshot(fmt.Sprintf("Picking key element %d at position %d", key.Value, i), func(idx int) domain.Flags {
			return domain.Flags{Comparing: idx == i, Sorted: idx < i}
		})

		j := i - 1
		for j >= 0 && r.Value(j) > key.Value {
			r.Compare()
			cmpAt := j
			r.Snapshot(fmt.Sprintf("Comparing key %d with %d", key.Value, r.Value(j)), func(idx int) domain.Flags {
				return domain.Flags{Comparing: idx == cmpAt || idx == cmpAt+1, Sorted: idx >= i}
			})

			r.Swap(j, j+1)
			j--

			keyAt := j + 1
			r.Snapshot("Shifted element right to make space", func(idx int) domain.Flags {
				return domain.Flags{Swapping: idx == keyAt || idx == keyAt+1, Sorted: idx >= i}
			})
		}

		// The key already sits at j+1; the placement is still an observable move.
		r.CountSwap()
		insertAt := j + 1
		r.Snapshot(fmt.Sprintf("Inserted key %d at position %d", key.Value, insertAt), func(idx int) domain.Flags {
			return domain.Flags{Swapping: idx == insertAt, Sorted: idx <= i}
		})
	}

	return r.Finish("Insertion sort completed!")
}
