package runtime

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/aretw0/algotrace/pkg/domain"
)

// BinarySearch sorts a private copy by (value, original index), emits the
// sorted view, then runs the classic two-pointer midpoint search.
//
// Positions reported in descriptions refer to the sorted view, not to the
// caller's original order. Element ids still carry the original indices.
func BinarySearch(values []int, target int) domain.Trace {
	r := NewRecorder(values)
	slices.SortFunc(r.working, func(a, b domain.Element) int {
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	r.Snapshot("Array sorted for binary search", allSorted)

	left, right := 0, r.Len()-1
	for left <= right {
		mid := (left + right) / 2
		r.Compare()

		lo, hi := left, right
		span := func(idx int) domain.Flags {
			return domain.Flags{Comparing: idx == mid, Pivot: between(idx, lo, hi)}
		}
		midValue := r.Value(mid)
		r.Snapshot(fmt.Sprintf("Checking middle element at position %d: %d", mid, midValue), span)

		switch {
		case midValue == target:
			r.Snapshot(fmt.Sprintf("Found target %d at position %d!", target, mid), func(idx int) domain.Flags {
				return domain.Flags{Found: idx == mid}
			})
			return r.Trace()
		case midValue < target:
			left = mid + 1
			r.Snapshot(fmt.Sprintf("%d < %d, searching right half", midValue, target), span)
		default:
			right = mid - 1
			r.Snapshot(fmt.Sprintf("%d > %d, searching left half", midValue, target), span)
		}
	}

	r.Snapshot(fmt.Sprintf("Target %d not found in array", target), nil)
	return r.Trace()
}
