package runtime

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
)

// QuickSort traces a Lomuto-partition quick sort using the last element of
// each range as the pivot. The final pivot placement is always counted as a
// swap, even when the pivot is already in place.
func QuickSort(values []int) domain.Trace {
	r := NewRecorder(values)
	quickSortRange(r, 0, r.Len()-1)

	return r.Finish("Quick sort completed!")
}

func quickSortRange(r *Recorder, low, high int) {
	if low >= high {
		return
	}
	p := partition(r, low, high)
	quickSortRange(r, low, p-1)
	quickSortRange(r, p+1, high)
}

func partition(r *Recorder, low, high int) int {
	pivot := r.Value(high)
	i := low - 1

	r.Snapshot(fmt.Sprintf("Selected pivot: %d at position %d", pivot, high), func(idx int) domain.Flags {
		return domain.Flags{Pivot: idx == high}
	})

	for j := low; j < high; j++ {
		r.Compare()
		r.Snapshot(fmt.Sprintf("Comparing %d with pivot %d", r.Value(j), pivot), func(idx int) domain.Flags {
			return domain.Flags{Pivot: idx == high, Comparing: idx == j}
		})

		if r.Value(j) < pivot {
			i++
			if i != j {
				r.Swap(i, j)
				a, b := i, j
				r.Snapshot(fmt.Sprintf("Swapped elements at positions %d and %d", a, b), func(idx int) domain.Flags {
					return domain.Flags{Pivot: idx == high, Swapping: idx == a || idx == b}
				})
			}
		}
	}

	boundary := i + 1
	r.Swap(boundary, high)
	r.Snapshot(fmt.Sprintf("Placed pivot in correct position: %d", boundary), func(idx int) domain.Flags {
		return domain.Flags{Swapping: idx == boundary || idx == high, Sorted: idx == boundary}
	})

	return boundary
}
