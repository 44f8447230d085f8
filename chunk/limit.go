package chunk

import (
	"fmt"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
)

// DefaultMaxChars is the default cap on input length in characters.
// Very large documents would otherwise turn into hundreds of service
// calls for a single run.
const DefaultMaxChars = 1_000_000

// OversizePolicy selects what happens when input text exceeds the cap.
type OversizePolicy int

const (
	// TruncatePolicy cuts the text at the cap and continues. The cut is
	// always reported to the caller, never silent.
	TruncatePolicy OversizePolicy = iota + 1

	// FailPolicy aborts the run before any segment is processed.
	FailPolicy
)

// Limit caps the amount of document text a single run will process.
type Limit struct {
	// MaxChars is the cap in characters (runes). Zero or negative means
	// no cap.
	MaxChars int

	// Policy selects truncation or failure for oversized input.
	Policy OversizePolicy
}

// DefaultLimit returns the default input cap: truncate at one million
// characters.
func DefaultLimit() Limit {
	return Limit{MaxChars: DefaultMaxChars, Policy: TruncatePolicy}
}

// Validate checks that the limit carries a known policy.
func (l Limit) Validate() error {
	switch l.Policy {
	case TruncatePolicy, FailPolicy:
		return nil
	default:
		return fmt.Errorf("unknown oversize policy %d", l.Policy)
	}
}

// Apply enforces the limit on text. It returns the text to process and
// whether it was truncated. Under FailPolicy an oversized input returns
// core.ErrInputTooLarge instead.
func (l Limit) Apply(text string) (string, bool, error) {
	if l.MaxChars < 1 {
		return text, false, nil
	}

	runes := []rune(text)
	if len(runes) <= l.MaxChars {
		return text, false, nil
	}

	switch l.Policy {
	case FailPolicy:
		return "", false, fmt.Errorf("%w: %d characters, limit %d", core.ErrInputTooLarge, len(runes), l.MaxChars)
	default:
		return string(runes[:l.MaxChars]), true, nil
	}
}
