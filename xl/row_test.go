package xl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnNumberAsLetters(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{4, "D"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{MaxColumns, "XFD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnNumberAsLetters(tt.n), "column %d", tt.n)
	}
}

func TestColumnNumberAsLetters_OutOfRange(t *testing.T) {
	assert.Panics(t, func() { ColumnNumberAsLetters(0) })
	assert.Panics(t, func() { ColumnNumberAsLetters(MaxColumns + 1) })
	assert.Panics(t, func() { CellCoordAsString(1, 0) })
}

func TestRangeRef(t *testing.T) {
	assert.Equal(t, "A1:D3", RangeRef(4, 3))
	assert.Equal(t, "A1:A1", RangeRef(1, 1))
	assert.Equal(t, "A1:AB10", RangeRef(28, 10))
	assert.Equal(t, "$A$1:$D$3", absRangeRef(4, 3))
}
