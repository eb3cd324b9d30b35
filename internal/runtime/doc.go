/*
Package runtime is the instrumented execution core of algotrace.

Each variant runs a classic algorithm over a private copy of the input and
appends one Step per notable event (comparison, swap, selection, placement)
to a Recorder. Runs are synchronous, CPU-bound and deterministic: the same
(algorithm, input, target) always yields an identical Trace.

# Variants

  - Sorting: BubbleSort, SelectionSort, InsertionSort, QuickSort (Lomuto, last
    element pivot), MergeSort (top-down, auxiliary runs).
  - Searching: LinearSearch, BinarySearch (stable pre-sort by value, then
    original index).

# Invariants

  - Every step holds exactly n elements and the ids {0..n-1} once each.
  - Comparisons and swaps never decrease along a trace.
  - Sorting traces end with a step where every element is marked sorted.
*/
package runtime
