// Package core defines the domain model shared by the extraction pipeline:
// document segments, per-segment outcomes, and the run report handed back
// to the caller. It has no dependencies on the pipeline, the extraction
// service, or any I/O.
package core
