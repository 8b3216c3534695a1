package xl

import "strconv"

// Cell is a single worksheet value. A cell is either text, stored through
// the shared string table, or an integer number stored inline.
//
// The zero Cell is unset and is rejected by Table.Validate.
type Cell struct {
	typ CellType
	s   string
	n   int64
}

// CellType is the type of cell value type.
type CellType int

// Cell value types enumeration.
const (
	CellTypeUnset CellType = iota
	CellTypeNumber
	CellTypeSharedString
)

func (t CellType) String() string {
	switch t {
	case CellTypeNumber:
		return "number"
	case CellTypeSharedString:
		return "text"
	default:
		return "unset"
	}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{typ: CellTypeSharedString, s: s}
}

// Number returns an integer cell.
func Number(v int64) Cell {
	return Cell{typ: CellTypeNumber, n: v}
}

func (c Cell) Type() CellType { return c.typ }

// Text returns the text value; it is empty for number cells.
func (c Cell) Text() string { return c.s }

// Number returns the numeric value; it is zero for text cells.
func (c Cell) Number() int64 { return c.n }

// String renders the value the way it is stored in the worksheet.
func (c Cell) String() string {
	if c.typ == CellTypeNumber {
		return strconv.FormatInt(c.n, 10)
	}
	return c.s
}
