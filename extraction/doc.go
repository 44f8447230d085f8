// Package extraction orchestrates the document-to-table pipeline: it
// chunks the document text, dispatches each segment to the extraction
// client, and aggregates the per-segment results in document order.
//
// Failures are handled per segment: a failed segment is skipped,
// recorded in the run report, and never aborts the run or triggers a
// retry. Execution is strictly sequential by default; WithWorkers
// enables a bounded pool, with result order reconstructed by segment
// index before aggregation.
package extraction
