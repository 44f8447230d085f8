package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier for a document.
type ID uint64

// Fingerprint generates a deterministic ID for document text using BLAKE2b
// hashing. Identical text always produces the same fingerprint, so a run
// report can be matched back to the document that produced it.
func Fingerprint(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Segment is one bounded-size slice of the source document text.
// Segments are processed independently; concatenating the Content of all
// segments of a run, in Index order, reproduces the document text exactly.
type Segment struct {
	// Index is the 1-based position of the segment within the document.
	Index int

	// Total is the number of segments the document was split into.
	// It is the same for every segment of one run.
	Total int

	// Content is a contiguous substring of the document text.
	Content string
}

// SegmentResult is the outcome of extracting one segment.
// Err is nil on success, in which case Text holds the service's response
// payload. A result is produced exactly once per segment and never retried.
type SegmentResult struct {
	Index int
	Text  string
	Err   error
}

// Succeeded reports whether the segment was extracted successfully.
func (r SegmentResult) Succeeded() bool {
	return r.Err == nil
}

// SegmentFailure describes a segment that was skipped during a run.
type SegmentFailure struct {
	Index int
	Cause string
}

// RunReport summarizes one pipeline run for the caller.
// A run that skipped segments still produces whatever partial output the
// remaining segments yielded; the report is how the caller learns what
// was lost.
type RunReport struct {
	// Fingerprint identifies the (possibly truncated) document text that
	// was actually processed.
	Fingerprint ID

	// Segments is the total number of segments the document was split into.
	Segments int

	// Succeeded is the number of segments whose extraction succeeded.
	Succeeded int

	// Skipped lists the 1-based indices of failed segments, ascending.
	Skipped []int

	// Failures carries the cause for each skipped segment, in the same
	// order as Skipped.
	Failures []SegmentFailure

	// Truncated is set when the input exceeded the configured character
	// cap and was cut before chunking.
	Truncated bool
}
