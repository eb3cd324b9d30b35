package domain

// Element is an input value bound to its stable id.
// The id is the value's original 0-based position and travels with the value
// through every swap or move; it never describes a position.
type Element struct {
	Value int `json:"value"`
	ID    int `json:"id"`
}

// Flags are the transient per-step annotations of an element.
// False flags are omitted on the wire; consumers treat absence as false.
type Flags struct {
	Comparing bool `json:"isComparing,omitempty"`
	Swapping  bool `json:"isSwapping,omitempty"`
	Pivot     bool `json:"isPivot,omitempty"`
	Sorted    bool `json:"isSorted,omitempty"`
	Found     bool `json:"isFound,omitempty"`
}

// AnnotatedElement is an Element as it appears inside one Step.
type AnnotatedElement struct {
	Element
	Flags
}

// NewElements binds each value to its index.
func NewElements(values []int) []Element {
	out := make([]Element, len(values))
	for i, v := range values {
		out[i] = Element{Value: v, ID: i}
	}
	return out
}
