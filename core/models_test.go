package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	t.Run("deterministic for identical text", func(t *testing.T) {
		a := Fingerprint("some document text")
		b := Fingerprint("some document text")
		assert.Equal(t, a, b)
	})

	t.Run("differs for different text", func(t *testing.T) {
		a := Fingerprint("some document text")
		b := Fingerprint("some other document text")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty text has a stable fingerprint", func(t *testing.T) {
		assert.Equal(t, Fingerprint(""), Fingerprint(""))
	})
}

func TestSegmentResultSucceeded(t *testing.T) {
	ok := SegmentResult{Index: 1, Text: "A,B,C,D"}
	assert.True(t, ok.Succeeded())

	failed := SegmentResult{Index: 2, Err: assert.AnError}
	assert.False(t, failed.Succeeded())
}

func TestValidateSegment(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		wantErr error
	}{
		{
			name:    "valid segment",
			segment: Segment{Index: 1, Total: 3, Content: "abc"},
			wantErr: nil,
		},
		{
			name:    "last segment",
			segment: Segment{Index: 3, Total: 3, Content: "abc"},
			wantErr: nil,
		},
		{
			name:    "zero index",
			segment: Segment{Index: 0, Total: 3, Content: "abc"},
			wantErr: ErrInvalidSegment,
		},
		{
			name:    "negative index",
			segment: Segment{Index: -1, Total: 3, Content: "abc"},
			wantErr: ErrInvalidSegment,
		},
		{
			name:    "total below index",
			segment: Segment{Index: 4, Total: 3, Content: "abc"},
			wantErr: ErrInvalidSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSegment(tt.segment)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
