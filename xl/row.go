package xl

import "strconv"

// Row is one data row. Its length must match the table header.
type Row []Cell

// Limits of the SpreadsheetML grid.
const (
	MaxColumns = 16384
	MaxRows    = 1048576
)

// ColumnNumberAsLetters converts a 1-based column number into its A1-style
// letters: 1 is "A", 26 is "Z", 27 is "AA".
func ColumnNumberAsLetters(n int) string {
	if n < 1 || n > MaxColumns {
		panic("invalid column number")
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// CellCoordAsString returns the A1-style reference of a 1-based column and row.
func CellCoordAsString(col, row int) string {
	if row < 1 {
		panic("invalid row number")
	}
	return ColumnNumberAsLetters(col) + strconv.Itoa(row)
}

// RangeRef returns the reference of the rectangle anchored at A1 that spans
// cols columns and rows rows, e.g. RangeRef(4, 3) == "A1:D3".
func RangeRef(cols, rows int) string {
	return "A1:" + CellCoordAsString(cols, rows)
}

// absRangeRef is RangeRef with absolute anchors, as used by defined names.
func absRangeRef(cols, rows int) string {
	return "$A$1:$" + ColumnNumberAsLetters(cols) + "$" + strconv.Itoa(rows)
}
