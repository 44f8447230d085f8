package chunk

import (
	"strings"
	"testing"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
	}{
		{"exact multiple", strings.Repeat("a", 40), 10},
		{"remainder", strings.Repeat("b", 45), 10},
		{"size larger than text", "short", 100},
		{"size of one", "abcdef", 1},
		{"multi-byte runes", strings.Repeat("héllo wörld ", 37), 7},
		{"single char", "x", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := Split(tt.text, tt.size)
			require.NoError(t, err)

			var sb strings.Builder
			for _, s := range segments {
				sb.WriteString(s.Content)
			}
			assert.Equal(t, tt.text, sb.String(), "concatenation must reproduce input exactly")
		})
	}
}

func TestSplitSegmentLaws(t *testing.T) {
	text := strings.Repeat("x", 45000)
	segments, err := Split(text, 20000)
	require.NoError(t, err)

	require.Len(t, segments, 3)
	assert.Equal(t, 20000, len(segments[0].Content))
	assert.Equal(t, 20000, len(segments[1].Content))
	assert.Equal(t, 5000, len(segments[2].Content))

	for i, s := range segments {
		assert.Equal(t, i+1, s.Index, "indices are 1-based and gap-free")
		assert.Equal(t, 3, s.Total, "total is constant across the run")
		require.NoError(t, core.ValidateSegment(s))
	}
}

func TestSplitCount(t *testing.T) {
	// count = ceil(len/size)
	tests := []struct {
		length int
		size   int
		want   int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
	}

	for _, tt := range tests {
		segments, err := Split(strings.Repeat("a", tt.length), tt.size)
		require.NoError(t, err)
		assert.Len(t, segments, tt.want, "length %d size %d", tt.length, tt.size)
	}
}

func TestSplitEmptyText(t *testing.T) {
	segments, err := Split("", 20000)
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestSplitInvalidSize(t *testing.T) {
	_, err := Split("abc", 0)
	assert.ErrorIs(t, err, core.ErrInvalidChunkSize)

	_, err = Split("abc", -5)
	assert.ErrorIs(t, err, core.ErrInvalidChunkSize)
}

func TestSplitRuneSafety(t *testing.T) {
	// 3-byte runes with a size that would land mid-rune if split by bytes.
	text := strings.Repeat("文", 10)
	segments, err := Split(text, 4)
	require.NoError(t, err)
	require.Len(t, segments, 3)

	for _, s := range segments {
		for _, r := range s.Content {
			assert.Equal(t, '文', r)
		}
	}
}

func TestLimitApply(t *testing.T) {
	t.Run("under the cap passes through", func(t *testing.T) {
		l := Limit{MaxChars: 100, Policy: TruncatePolicy}
		out, truncated, err := l.Apply("hello")
		require.NoError(t, err)
		assert.False(t, truncated)
		assert.Equal(t, "hello", out)
	})

	t.Run("truncate policy cuts and reports", func(t *testing.T) {
		l := Limit{MaxChars: 5, Policy: TruncatePolicy}
		out, truncated, err := l.Apply("hello world")
		require.NoError(t, err)
		assert.True(t, truncated)
		assert.Equal(t, "hello", out)
	})

	t.Run("fail policy aborts", func(t *testing.T) {
		l := Limit{MaxChars: 5, Policy: FailPolicy}
		_, _, err := l.Apply("hello world")
		assert.ErrorIs(t, err, core.ErrInputTooLarge)
	})

	t.Run("zero cap means unlimited", func(t *testing.T) {
		l := Limit{MaxChars: 0, Policy: FailPolicy}
		out, truncated, err := l.Apply(strings.Repeat("a", 10000))
		require.NoError(t, err)
		assert.False(t, truncated)
		assert.Len(t, out, 10000)
	})

	t.Run("truncation counts runes not bytes", func(t *testing.T) {
		l := Limit{MaxChars: 3, Policy: TruncatePolicy}
		out, truncated, err := l.Apply("文文文文文")
		require.NoError(t, err)
		assert.True(t, truncated)
		assert.Equal(t, "文文文", out)
	})
}

func TestLimitValidate(t *testing.T) {
	assert.NoError(t, DefaultLimit().Validate())
	assert.NoError(t, Limit{MaxChars: 10, Policy: FailPolicy}.Validate())
	assert.Error(t, Limit{MaxChars: 10}.Validate())
}
