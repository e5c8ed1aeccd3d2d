package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBatches(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		size     int
		expected []int
	}{
		{
			name:     "even split",
			count:    10,
			size:     5,
			expected: []int{5, 5},
		},
		{
			name:     "uneven split keeps remainder",
			count:    7,
			size:     3,
			expected: []int{3, 3, 1},
		},
		{
			name:     "batch larger than count",
			count:    3,
			size:     100,
			expected: []int{3},
		},
		{
			name:     "zero batch size is clamped",
			count:    4,
			size:     0,
			expected: []int{1, 1, 1, 1},
		},
		{
			name:     "negative batch size is clamped",
			count:    2,
			size:     -7,
			expected: []int{1, 1},
		},
		{
			name:     "zero count is clamped",
			count:    0,
			size:     500,
			expected: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitBatches(tt.count, tt.size)
			assert.Equal(t, tt.expected, got)

			total := 0
			for _, n := range got {
				require.Positive(t, n, "every batch must make progress")
				total += n
			}
			assert.Equal(t, max(tt.count, 1), total, "batches must cover the requested count exactly")
		})
	}
}
