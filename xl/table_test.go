package xl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr error
	}{
		{"ok", func(*Table) {}, nil},
		{"empty sheet name uses default", func(tb *Table) { tb.SheetName = "" }, nil},
		{"no header", func(tb *Table) { tb.Header = nil; tb.Rows = nil }, ErrEmptyHeader},
		{"short row", func(tb *Table) { tb.Rows[1] = tb.Rows[1][:3] }, ErrRowLength},
		{"long row", func(tb *Table) { tb.Rows[0] = append(tb.Rows[0], Text("extra")) }, ErrRowLength},
		{"unset cell", func(tb *Table) { tb.Rows[0][2] = Cell{} }, ErrUnsetCell},
		{"control char in cell", func(tb *Table) { tb.Rows[0][1] = Text("bad\x01") }, ErrInvalidText},
		{"invalid utf8 in header", func(tb *Table) { tb.Header[0] = "\xff" }, ErrInvalidText},
		{"too many widths", func(tb *Table) { tb.Widths = []float64{1, 2, 3, 4, 5} }, ErrWidthCount},
		{"negative width", func(tb *Table) { tb.Widths = []float64{-1} }, ErrWidthCount},
		{"huge width", func(tb *Table) { tb.Widths = []float64{300} }, ErrWidthCount},
		{"unknown style", func(tb *Table) { tb.HeaderStyle = Style(7) }, ErrInvalidStyle},
		{"sheet name too long", func(tb *Table) { tb.SheetName = strings.Repeat("x", 32) }, ErrSheetName},
		{"sheet name slash", func(tb *Table) { tb.SheetName = "a/b" }, ErrSheetName},
		{"sheet name quote", func(tb *Table) { tb.SheetName = "'a" }, ErrSheetName},
		{"sheet name line break", func(tb *Table) { tb.SheetName = "Q3\nFindings" }, ErrSheetName},
		{"sheet name carriage return", func(tb *Table) { tb.SheetName = "Q3\rFindings" }, ErrSheetName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := exampleTable()
			tt.mutate(tbl)
			err := tbl.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTableValidate_RowIndexInError(t *testing.T) {
	tbl := exampleTable()
	tbl.Rows[1] = tbl.Rows[1][:2]
	err := tbl.Validate()
	require.ErrorIs(t, err, ErrRowLength)
	assert.Contains(t, err.Error(), "row 1 has 2 cells, header has 4")
}

func TestTableValidate_AllowedWhitespace(t *testing.T) {
	tbl := exampleTable()
	tbl.Rows[0][2] = Text("line one\nline two\ttabbed\r")
	assert.NoError(t, tbl.Validate())
}

func TestColumnWidth(t *testing.T) {
	tbl := exampleTable()
	tbl.Widths = []float64{10, 0, 60}
	assert.Equal(t, 10.0, tbl.columnWidth(1))
	assert.Equal(t, DefaultColumnWidth, tbl.columnWidth(2))
	assert.Equal(t, 60.0, tbl.columnWidth(3))
	assert.Equal(t, DefaultColumnWidth, tbl.columnWidth(4))
}

func TestParseStyle(t *testing.T) {
	for s := Style(0); s < StyleCount; s++ {
		got, err := ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStyle("italic")
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestNeedsSpacePreserve(t *testing.T) {
	assert.False(t, needsSpacePreserve(""))
	assert.False(t, needsSpacePreserve("a b"))
	assert.True(t, needsSpacePreserve(" lead"))
	assert.True(t, needsSpacePreserve("trail\n"))
}
