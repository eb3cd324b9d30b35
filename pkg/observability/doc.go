/*
Package observability provides tools for monitoring the algotrace engine.

It turns the engine's lifecycle hooks into Prometheus metrics and structured
log lines. Both are plain domain.LifecycleHooks values and can be combined with
LifecycleHooks.Merge.
*/
package observability
