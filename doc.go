/*
Package algotrace is an instrumented sorting and searching engine that records
every observable step of an algorithm run, for teaching and visualization.

Each run produces a Trace: an ordered list of Steps, each holding a full
snapshot of the working array (values with their stable ids and per-element
flags such as comparing, swapping, pivot, sorted and found) together with the
running comparison and swap counters and a human-readable description.

# Algorithms

  - Sorting: bubble, quick (Lomuto, last element pivot), merge, selection, insertion.
  - Searching: linear, binary (on a sorted private copy).

# Key Features

  - Deterministic: the same input always yields the identical trace.
  - Isolated: the caller's slice is never mutated and emitted steps never change.
  - Concurrent: one Engine serves any number of goroutines.
  - Hexagonal: history stores (memory, SQLite, Redis) and the assistant (Gemini)
    plug in through the interfaces in pkg/ports.

# Usage

	eng, err := algotrace.New()
	if err != nil {
		log.Fatal(err)
	}

	exec, err := eng.Execute(ctx, algotrace.ExecuteRequest{
		Algorithm: "bubble",
		Array:     []int{3, 1, 2},
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, step := range exec.Steps {
		fmt.Println(step.Values(), step.Description)
	}

The static complexity table and the operation estimator are available through
Analyze, Complexity and EstimateOperations, or directly from pkg/complexity.
*/
package algotrace
