package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestStrokesForHole(t *testing.T) {
	testCases := []struct {
		name        string
		handicap    float64
		strokeIndex *int
		expected    int
	}{
		{
			name:        "scratch player gets nothing",
			handicap:    0,
			strokeIndex: intPtr(1),
			expected:    0,
		},
		{
			name:        "handicap 10 covers stroke index 8",
			handicap:    10,
			strokeIndex: intPtr(8),
			expected:    1,
		},
		{
			name:        "handicap 10 does not cover stroke index 11",
			handicap:    10,
			strokeIndex: intPtr(11),
			expected:    0,
		},
		{
			name:        "stroke index equal to remainder still counts",
			handicap:    10,
			strokeIndex: intPtr(10),
			expected:    1,
		},
		{
			name:        "handicap 18 gives one stroke everywhere",
			handicap:    18,
			strokeIndex: intPtr(18),
			expected:    1,
		},
		{
			name:        "handicap 20 gives two strokes on the hardest holes",
			handicap:    20,
			strokeIndex: intPtr(2),
			expected:    2,
		},
		{
			name:        "handicap 20 gives one stroke past the remainder",
			handicap:    20,
			strokeIndex: intPtr(3),
			expected:    1,
		},
		{
			name:        "handicap 36 doubles up everywhere",
			handicap:    36,
			strokeIndex: intPtr(18),
			expected:    2,
		},
		{
			name:        "missing stroke index only gets the base",
			handicap:    25,
			strokeIndex: nil,
			expected:    1,
		},
		{
			name:        "missing stroke index with low handicap",
			handicap:    9,
			strokeIndex: nil,
			expected:    0,
		},
		{
			name:        "fractional remainder has no extra effect",
			handicap:    10.4,
			strokeIndex: intPtr(11),
			expected:    0,
		},
		{
			name:        "negative handicap treated as scratch",
			handicap:    -3,
			strokeIndex: intPtr(1),
			expected:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StrokesForHole(tc.handicap, tc.strokeIndex)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestStrokesForHole_MonotonicInHandicap(t *testing.T) {
	for si := 1; si <= 18; si++ {
		prev := 0
		for h := 0.0; h <= 54; h++ {
			got := StrokesForHole(h, intPtr(si))
			assert.GreaterOrEqual(t, got, prev, "handicap %v stroke index %v", h, si)
			assert.GreaterOrEqual(t, got, 0)
			prev = got
		}
	}
}
