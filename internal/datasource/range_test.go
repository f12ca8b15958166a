package datasource

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestRangeCoordinates(t *testing.T) {
	tests := []struct {
		in                     string
		col1, row1, col2, row2 int
	}{
		{"A1:E151", 1, 1, 5, 151},
		{"B2", 2, 2, 2, 2},
		{"C9:B2", 2, 2, 3, 9},
		{"AA10:AB12", 27, 10, 28, 12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			col1, row1, col2, row2, err := rangeCoordinates(tt.in)
			assert.NilError(t, err)
			assert.DeepEqual(t, []int{col1, row1, col2, row2}, []int{tt.col1, tt.row1, tt.col2, tt.row2})
		})
	}

	for _, bad := range []string{"", "A1:", "1A:B2", "A1:??"} {
		_, _, _, _, err := rangeCoordinates(bad)
		assert.ErrorContains(t, err, "invalid range", bad)
	}
}

func TestColumnLetters(t *testing.T) {
	letters, err := columnLetters("Y3:AB9", 4)
	assert.NilError(t, err)
	assert.DeepEqual(t, letters, []string{"Y", "Z", "AA", "AB"})
}
