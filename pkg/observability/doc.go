/*
Package observability provides Prometheus instrumentation for the fsa pipeline.

It turns the lifecycle hooks emitted by the engine into counters and histograms:
outcomes by code, synthesis duration, expression length and cache hits.
*/
package observability
