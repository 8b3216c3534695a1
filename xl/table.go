package xl

import (
	"fmt"
	"unicode/utf8"
)

// DefaultSheetName names the sheet when Table.SheetName is empty.
const DefaultSheetName = "Risk Register"

// maxColumnWidth is the widest column SpreadsheetML allows, in characters.
const maxColumnWidth = 255

// Table is the input of one write: a header and the rows under it.
//
// Widths optionally sets the width of the leading columns; columns beyond
// len(Widths) get DefaultColumnWidth. HeaderStyle applies to every header
// cell; the zero value leaves the header unformatted.
type Table struct {
	SheetName   string
	Header      []string
	Rows        []Row
	Widths      []float64
	HeaderStyle Style
}

// NewTable returns a table with a banded header.
func NewTable(header []string, rows []Row) *Table {
	return &Table{
		SheetName:   DefaultSheetName,
		Header:      header,
		Rows:        rows,
		HeaderStyle: StyleHeaderBand,
	}
}

func (t *Table) sheetName() string {
	if t.SheetName == "" {
		return DefaultSheetName
	}
	return t.SheetName
}

func (t *Table) columnWidth(n int) float64 {
	if n <= len(t.Widths) && t.Widths[n-1] > 0 {
		return t.Widths[n-1]
	}
	return DefaultColumnWidth
}

// Validate reports the first shape or encoding problem in t. A table that
// validates always serializes to a well-formed package.
func (t *Table) Validate() error {
	if err := validateSheetName(t.sheetName()); err != nil {
		return err
	}
	if len(t.Header) == 0 {
		return ErrEmptyHeader
	}
	if len(t.Header) > MaxColumns || len(t.Rows)+1 > MaxRows {
		return fmt.Errorf("%w: %d columns, %d rows", ErrTooLarge, len(t.Header), len(t.Rows)+1)
	}
	if !t.HeaderStyle.Valid() {
		return fmt.Errorf("%w %s", ErrInvalidStyle, t.HeaderStyle)
	}
	if len(t.Widths) > len(t.Header) {
		return fmt.Errorf("%w: %d widths for %d columns", ErrWidthCount, len(t.Widths), len(t.Header))
	}
	for i, w := range t.Widths {
		if w < 0 || w > maxColumnWidth {
			return fmt.Errorf("%w: column %s width %g", ErrWidthCount, ColumnNumberAsLetters(i+1), w)
		}
	}
	for i, h := range t.Header {
		if err := validateText(h); err != nil {
			return fmt.Errorf("header %s: %w", ColumnNumberAsLetters(i+1), err)
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRowLength, i, len(row), len(t.Header))
		}
		for j, c := range row {
			switch c.typ {
			case CellTypeNumber:
			case CellTypeSharedString:
				if err := validateText(c.s); err != nil {
					return fmt.Errorf("row %d column %s: %w", i, ColumnNumberAsLetters(j+1), err)
				}
			default:
				return fmt.Errorf("%w: row %d column %s", ErrUnsetCell, i, ColumnNumberAsLetters(j+1))
			}
		}
	}
	return nil
}

// validateText rejects strings that cannot appear in an XML 1.0 document.
func validateText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8", ErrInvalidText)
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: character %U", ErrInvalidText, r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}

// needsSpacePreserve reports whether readers would strip whitespace from s
// unless it is marked xml:space="preserve".
func needsSpacePreserve(s string) bool {
	if s == "" {
		return false
	}
	isSpace := func(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
	return isSpace(s[0]) || isSpace(s[len(s)-1])
}
