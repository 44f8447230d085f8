package chunk

import (
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
)

// DefaultSize is the default segment length in characters.
// It is sized so one segment plus the extraction instructions stays well
// inside the context window of the small chat models this tool targets.
const DefaultSize = 20000

// Split partitions text into fixed-size segments of at most size
// characters each. Characters are counted as runes so a multi-byte
// character is never cut mid-encoding.
//
// The returned segments are ordered, contiguous, and non-overlapping:
// concatenating their Content in Index order reproduces text exactly.
// Every segment except possibly the last has length exactly size.
// Empty text yields a nil slice.
//
// Split is pure: no side effects, no I/O.
func Split(text string, size int) ([]core.Segment, error) {
	if size < 1 {
		return nil, core.ErrInvalidChunkSize
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	total := (len(runes) + size - 1) / size

	segments := make([]core.Segment, 0, total)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		segments = append(segments, core.Segment{
			Index:   len(segments) + 1,
			Total:   total,
			Content: string(runes[i:end]),
		})
	}
	return segments, nil
}
