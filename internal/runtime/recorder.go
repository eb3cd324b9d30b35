package runtime

import (
	"github.com/aretw0/algotrace/pkg/domain"
)

// flagFunc computes the annotations for the element at a given position.
type flagFunc func(idx int) domain.Flags

// Recorder owns the private working copy of one invocation together with its
// running counters and the steps emitted so far.
//
// Algorithms mutate the working array through the Recorder and call snapshot at
// every notable event. Each snapshot copies the array, so a step is never
// modified after it has been emitted.
type Recorder struct {
	working     []domain.Element
	comparisons int
	swaps       int
	steps       domain.Trace
}

// NewRecorder binds every value to its original index and prepares an empty trace.
// The caller's slice is never retained.
func NewRecorder(values []int) *Recorder {
	return &Recorder{
		working: domain.NewElements(values),
	}
}

// Len returns the size of the working array.
func (r *Recorder) Len() int {
	return len(r.working)
}

// Value returns the value currently at position i.
func (r *Recorder) Value(i int) int {
	return r.working[i].Value
}

// At returns the element currently at position i.
func (r *Recorder) At(i int) domain.Element {
	return r.working[i]
}

// Compare counts one comparison.
func (r *Recorder) Compare() {
	r.comparisons++
}

// Swap exchanges two positions and counts one swap.
func (r *Recorder) Swap(i, j int) {
	r.working[i], r.working[j] = r.working[j], r.working[i]
	r.swaps++
}

// Place writes an element at position i and counts one swap.
// Merge sort uses it for every element written into the merged region.
func (r *Recorder) Place(i int, el domain.Element) {
	r.working[i] = el
	r.swaps++
}

// CountSwap counts a move that does not change the array (a placement that is
// already in position).
func (r *Recorder) CountSwap() {
	r.swaps++
}

// Counters returns the current comparison and swap totals.
func (r *Recorder) Counters() (comparisons, swaps int) {
	return r.comparisons, r.swaps
}

// Snapshot appends a step for the current array state. A nil flags function
// leaves every element unannotated.
func (r *Recorder) Snapshot(description string, flags flagFunc) {
	arr := make([]domain.AnnotatedElement, len(r.working))
	for idx, el := range r.working {
		arr[idx].Element = el
		if flags != nil {
			arr[idx].Flags = flags(idx)
		}
	}
	r.steps = append(r.steps, domain.Step{
		Array:       arr,
		Comparisons: r.comparisons,
		Swaps:       r.swaps,
		Description: description,
	})
}

// Finish appends the closing step with every element marked sorted and
// hands the trace over to the caller.
func (r *Recorder) Finish(description string) domain.Trace {
	r.Snapshot(description, allSorted)
	return r.Trace()
}

// Trace hands the recorded steps over to the caller. The recorder must not be
// used afterwards.
func (r *Recorder) Trace() domain.Trace {
	steps := r.steps
	r.steps = nil
	return steps
}

func allSorted(int) domain.Flags {
	return domain.Flags{Sorted: true}
}

func between(idx, lo, hi int) bool {
	return idx >= lo && idx <= hi
}
