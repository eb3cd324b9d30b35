package complexity

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Info is the full static description of one algorithm.
type Info struct {
	domain.Metadata
	domain.Complexity
}

var table = map[domain.AlgorithmID]Info{
	domain.Bubble: {
		Metadata: domain.Metadata{ID: domain.Bubble, Name: "Bubble Sort", Category: domain.CategorySorting},
		Complexity: domain.Complexity{
			TimeBest: "O(n)", TimeAverage: "O(n²)", TimeWorst: "O(n²)",
			Space: "O(1)", Stable: true, InPlace: true,
		},
	},
	domain.Quick: {
		Metadata: domain.Metadata{ID: domain.Quick, Name: "Quick Sort", Category: domain.CategorySorting},
		Complexity: domain.Complexity{
			TimeBest: "O(n log n)", TimeAverage: "O(n log n)", TimeWorst: "O(n²)",
			Space: "O(log n)", Stable: false, InPlace: true,
		},
	},
	domain.Merge: {
		Metadata: domain.Metadata{ID: domain.Merge, Name: "Merge Sort", Category: domain.CategorySorting},
		Complexity: domain.Complexity{
			TimeBest: "O(n log n)", TimeAverage: "O(n log n)", TimeWorst: "O(n log n)",
			Space: "O(n)", Stable: true, InPlace: false,
		},
	},
	domain.Selection: {
		Metadata: domain.Metadata{ID: domain.Selection, Name: "Selection Sort", Category: domain.CategorySorting},
		Complexity: domain.Complexity{
			TimeBest: "O(n²)", TimeAverage: "O(n²)", TimeWorst: "O(n²)",
			Space: "O(1)", Stable: false, InPlace: true,
		},
	},
	domain.Insertion: {
		Metadata: domain.Metadata{ID: domain.Insertion, Name: "Insertion Sort", Category: domain.CategorySorting},
		Complexity: domain.Complexity{
			TimeBest: "O(n)", TimeAverage: "O(n²)", TimeWorst: "O(n²)",
			Space: "O(1)", Stable: true, InPlace: true,
		},
	},
	domain.Linear: {
		Metadata: domain.Metadata{ID: domain.Linear, Name: "Linear Search", Category: domain.CategorySearching},
		Complexity: domain.Complexity{
			TimeBest: "O(1)", TimeAverage: "O(n)", TimeWorst: "O(n)",
			Space: "O(1)", Stable: true, InPlace: true,
		},
	},
	domain.Binary: {
		Metadata: domain.Metadata{ID: domain.Binary, Name: "Binary Search", Category: domain.CategorySearching},
		Complexity: domain.Complexity{
			TimeBest: "O(1)", TimeAverage: "O(log n)", TimeWorst: "O(log n)",
			Space: "O(1)", Stable: true, InPlace: true,
		},
	},
}

// Lookup returns the static description of an algorithm.
func Lookup(id domain.AlgorithmID) (Info, error) {
	info, ok := table[id]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, id)
	}
	return info, nil
}

// Metadata returns the name and category of an algorithm.
func Metadata(id domain.AlgorithmID) (domain.Metadata, error) {
	info, err := Lookup(id)
	if err != nil {
		return domain.Metadata{}, err
	}
	return info.Metadata, nil
}

// All returns every entry in canonical algorithm order.
func All() []Info {
	ids := domain.AlgorithmIDs()
	out := make([]Info, 0, len(ids))
	for _, id := range ids {
		out = append(out, table[id])
	}
	return out
}
