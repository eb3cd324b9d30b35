package runtime

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
)

// MergeSort traces a top-down merge sort. No steps are emitted while
// splitting. Every comparison between run heads emits a step over the whole
// [left, right] span, and every element written into the merged region
// counts as one swap, drains included, so the swap total is independent of
// how sorted the input already was.
func MergeSort(values []int) domain.Trace {
	r := NewRecorder(values)
	mergeSortRange(r, 0, r.Len()-1)

	return r.Finish("Merge sort completed!")
}

func mergeSortRange(r *Recorder, left, right int) {
	if left >= right {
		return
	}
	mid := (left + right) / 2
	mergeSortRange(r, left, mid)
	mergeSortRange(r, mid+1, right)
	merge(r, left, mid, right)
}

func merge(r *Recorder, left, mid, right int) {
	leftRun := make([]domain.Element, mid-left+1)
	rightRun := make([]domain.Element, right-mid)
	for k := range leftRun {
		leftRun[k] = r.At(left + k)
	}
	for k := range rightRun {
		rightRun[k] = r.At(mid + 1 + k)
	}

	i, j, k := 0, 0, left
	for i < len(leftRun) && j < len(rightRun) {
		r.Compare()
		r.Snapshot(fmt.Sprintf("Merging: comparing %d and %d", leftRun[i].Value, rightRun[j].Value), func(idx int) domain.Flags {
			inSpan := between(idx, left, right)
			return domain.Flags{Comparing: inSpan, Sorted: !inSpan}
		})

		// <= takes the left head on ties, which is what makes the sort stable.
		if leftRun[i].Value <= rightRun[j].Value {
			r.Place(k, leftRun[i])
			i++
		} else {
			r.Place(k, rightRun[j])
			j++
		}
		k++
		pending(r, k, leftRun[i:], rightRun[j:])
	}

	for ; i < len(leftRun); i++ {
		r.Place(k, leftRun[i])
		k++
	}
	for ; j < len(rightRun); j++ {
		r.Place(k, rightRun[j])
		k++
	}
}

// pending lays the unmerged run tails out after the merged prefix so the
// working array stays a permutation of the input between comparisons.
func pending(r *Recorder, from int, leftTail, rightTail []domain.Element) {
	for _, el := range leftTail {
		r.working[from] = el
		from++
	}
	for _, el := range rightTail {
		r.working[from] = el
		from++
	}
}
