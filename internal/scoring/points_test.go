package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionPoints(t *testing.T) {
	testCases := []struct {
		position int
		expected int
	}{
		{1, 50},
		{2, 45},
		{3, 40},
		{4, 37},
		{5, 35},
		{6, 33},
		{7, 31},
		{8, 30},
		{9, 29},
		{10, 28},
		{11, 27},
		{15, 23},
		{28, 10},
		{30, 10},
		{100, 10},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, PositionPoints(tc.position), "position %d", tc.position)
	}
}
