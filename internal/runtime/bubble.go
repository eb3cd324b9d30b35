package runtime

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
)

// BubbleSort traces a full bubble sort (no early exit).
// Every adjacent comparison and every swap emits a step; the trailing
// i already-placed elements are marked sorted.
func BubbleSort(values []int) domain.Trace {
	r := NewRecorder(values)
	n := r.Len()

	for i := 0; i < n-1; i++ {
		placed := n - i
		for j := 0; j < n-i-1; j++ {
			r.Compare()
			r.Snapshot(fmt.Sprintf("Comparing elements at positions %d and %d", j, j+1), func(idx int) domain.Flags {
				return domain.Flags{Comparing: idx == j || idx == j+1, Sorted: idx >= placed}
			})

			if r.Value(j) > r.Value(j+1) {
				r.Swap(j, j+1)
				r.Snapshot(fmt.Sprintf("Swapped elements at positions %d and %d", j, j+1), func(idx int) domain.Flags {
					return domain.Flags{Swapping: idx == j || idx == j+1, Sorted: idx >= placed}
				})
			}
		}
	}

	return r.Finish("Sorting completed!")
}
