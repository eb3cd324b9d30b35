/*
Package ports defines the driven ports (interfaces) of the algotrace engine.

These interfaces decouple the trace engine from external implementations, so the
same engine can record history in memory, SQLite or Redis and answer questions
through any language model.

# Key Interfaces

  - HistoryStore: persists execution, analysis and assistant summaries. Traces
    themselves are never stored.
  - Assistant: answers free-form questions about the algorithms.

RunHistoryStoreContract is a reusable test suite every HistoryStore adapter runs.
*/
package ports
