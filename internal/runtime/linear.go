package runtime

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
)

// LinearSearch scans positions in order and stops at the first match.
// When no element matches, a final unannotated "not found" step is appended;
// comparisons then equal the array length.
func LinearSearch(values []int, target int) domain.Trace {
	r := NewRecorder(values)

	for i := 0; i < r.Len(); i++ {
		r.Compare()
		hit := r.Value(i) == target

		desc := fmt.Sprintf("Checking position %d: %d ≠ %d", i, r.Value(i), target)
		if hit {
			desc = fmt.Sprintf("Found target %d at position %d!", target, i)
		}
		r.Snapshot(desc, func(idx int) domain.Flags {
			return domain.Flags{Comparing: idx == i, Found: idx == i && hit}
		})

		if hit {
			return r.Trace()
		}
	}

	r.Snapshot(fmt.Sprintf("Target %d not found in array", target), nil)
	return r.Trace()
}
