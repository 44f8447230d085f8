package core

import "fmt"

// ValidateSegment validates a Segment against the chunking invariants.
//
// Validation rules:
//   - Index must be 1-based
//   - Total must be at least Index
//
// Content is NOT validated: an empty Content is impossible from the
// chunker but is not a domain rule on its own.
func ValidateSegment(segment Segment) error {
	if segment.Index < 1 {
		return fmt.Errorf("%w: index %d is not 1-based", ErrInvalidSegment, segment.Index)
	}
	if segment.Total < segment.Index {
		return fmt.Errorf("%w: total %d is below index %d", ErrInvalidSegment, segment.Total, segment.Index)
	}
	return nil
}
