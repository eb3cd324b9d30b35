/*
Package domain contains the core data shapes of the algotrace engine.

It defines the values every algorithm variant produces and every adapter
consumes. The package is kept pure and free of I/O, following the same
hexagonal layout as the rest of the module: adapters depend on domain, never
the other way around.

# Key Entities

  - Element: an input value bound to its stable id (the original 0-based index).
  - AnnotatedElement: an Element plus the per-step Flags (comparing, swapping,
    pivot, sorted, found).
  - Step: one snapshot of the working array with running counters.
  - Trace: the ordered Steps produced by one invocation.
  - AlgorithmID: the closed set of supported algorithms.
  - Execution, Analysis, Answer: the results returned by the public engine.
  - ExecutionRecord, ComplexityRecord, AssistantRecord: history summaries.
*/
package domain
