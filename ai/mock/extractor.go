package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
)

// MockEntityExtractor is a test double for ai.EntityExtractor.
// It allows custom behavior injection via function fields.
type MockEntityExtractor struct {
	// ExtractFunc is called by Extract if set.
	// If nil, a deterministic placeholder row is returned per segment.
	ExtractFunc func(ctx context.Context, segment core.Segment) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockEntityExtractor creates a mock extractor with default behavior.
// Note: returns the concrete type to allow test assertions.
func NewMockEntityExtractor() *MockEntityExtractor {
	return &MockEntityExtractor{}
}

// Extract returns a scripted or default response for the segment.
// Default behavior: one plausible CSV row derived from the segment index,
// with a blank organisation field.
func (m *MockEntityExtractor) Extract(ctx context.Context, segment core.Segment) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, segment)
	}

	return fmt.Sprintf("ABCDE%04dF,PAN_Of,Person %d,", segment.Index, segment.Index), nil
}

// CallCount returns the number of times Extract was called.
func (m *MockEntityExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom function.
func (m *MockEntityExtractor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.ExtractFunc = nil
}
