package domain

// Step is one observable snapshot of the working array.
// Comparisons and Swaps are running totals at the moment the step was emitted.
type Step struct {
	Array       []AnnotatedElement `json:"array"`
	Comparisons int                `json:"comparisons"`
	Swaps       int                `json:"swaps"`
	Description string             `json:"description"`
}

// Values returns the element values of the step in array order.
func (s Step) Values() []int {
	out := make([]int, len(s.Array))
	for i, el := range s.Array {
		out[i] = el.Value
	}
	return out
}

// IDs returns the stable ids of the step in array order.
func (s Step) IDs() []int {
	out := make([]int, len(s.Array))
	for i, el := range s.Array {
		out[i] = el.ID
	}
	return out
}

// Trace is the ordered sequence of Steps produced by one invocation.
// It is owned entirely by the caller once returned.
type Trace []Step

// Final returns the last step of the trace.
func (t Trace) Final() (Step, bool) {
	if len(t) == 0 {
		return Step{}, false
	}
	return t[len(t)-1], true
}

// Totals returns the final comparison and swap counters, or zeros for an empty trace.
func (t Trace) Totals() (comparisons, swaps int) {
	last, ok := t.Final()
	if !ok {
		return 0, 0
	}
	return last.Comparisons, last.Swaps
}
