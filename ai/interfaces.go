package ai

import (
	"context"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
)

// EntityExtractor sends one document segment to the external extraction
// service and returns its free-text response.
// Implementations must be thread-safe for concurrent use.
type EntityExtractor interface {
	// Extract builds the extraction instruction for the segment, invokes
	// the service synchronously, and returns the verbatim response payload
	// trimmed of surrounding whitespace. No validation of the payload's
	// structure is performed.
	//
	// All failure signaling is via the returned error: network failures,
	// timeouts, and service-reported errors are returned, never panicked.
	// Implementations must bound the call with a timeout so a segment can
	// never hang a run indefinitely. Extract performs no retries.
	Extract(ctx context.Context, segment core.Segment) (string, error)
}
