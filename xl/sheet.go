package xl

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/adnsv/srw/xml"
)

// DefaultColumnWidth is used for columns without an explicit width. It is
// wide enough for short labels; long text columns should be given more.
const DefaultColumnWidth = 18.0

// writeSheet emits xl/worksheets/sheet1.xml. The shared string table must be
// complete: cells carry table positions, not values.
func (w *Writer) writeSheet(t *Table, sst *SharedStrings) error {
	w.register(PartWorksheet)

	ncols := len(t.Header)
	ref := RangeRef(ncols, len(t.Rows)+1)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("worksheet")
	x.Attr("xmlns", nsMain)
	x.Attr("xmlns:r", nsRelationships)

	x.OTag("+dimension").Attr("ref", ref).CTag()

	// header stays visible while scrolling
	x.OTag("+sheetViews")
	x.OTag("+sheetView").Attr("tabSelected", 1).Attr("workbookViewId", 0)
	x.OTag("+pane")
	x.Attr("ySplit", 1).Attr("topLeftCell", "A2").Attr("activePane", "bottomLeft").Attr("state", "frozen")
	x.CTag()
	x.OTag("+selection").Attr("pane", "bottomLeft").Attr("activeCell", "A2").Attr("sqref", "A2").CTag()
	x.CTag() // sheetView
	x.CTag() // sheetViews

	x.OTag("+sheetFormatPr").Attr("defaultRowHeight", 15).CTag()

	x.OTag("+cols")
	for n := 1; n <= ncols; n++ {
		x.OTag("+col").Attr("min", n).Attr("max", n)
		x.Attr("width", formatWidth(t.columnWidth(n))).Attr("customWidth", 1)
		x.CTag()
	}
	x.CTag()

	x.OTag("+sheetData")
	header := make(Row, ncols)
	for i, h := range t.Header {
		header[i] = Text(h)
	}
	if err := writeRow(x, 1, header, t.HeaderStyle, sst); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(x, i+2, row, StyleDefault, sst); err != nil {
			return err
		}
	}
	x.CTag() // sheetData

	x.OTag("+autoFilter").Attr("ref", ref).CTag()

	x.CTag() // worksheet

	return w.writePart(PartWorksheet, bb.Bytes())
}

func writeRow(x *xml.Writer, rowNumber int, cells Row, style Style, sst *SharedStrings) error {
	x.OTag("+row").Attr("r", rowNumber)
	for col, cell := range cells {
		x.OTag("+c").Attr("r", CellCoordAsString(col+1, rowNumber))
		if style != StyleDefault {
			x.Attr("s", int(style))
		}

		switch cell.typ {
		case CellTypeNumber:
			x.Attr("t", "n")
			x.OTag("v").Write(strconv.FormatInt(cell.n, 10)).CTag()
		case CellTypeSharedString:
			i, ok := sst.Index(cell.s)
			if !ok {
				return fmt.Errorf("xl: %s: text missing from shared strings", CellCoordAsString(col+1, rowNumber))
			}
			x.Attr("t", "s")
			x.OTag("v").Write(i).CTag()
		default:
			return fmt.Errorf("%w at %s", ErrUnsetCell, CellCoordAsString(col+1, rowNumber))
		}
		x.CTag() // c
	}
	x.CTag() // row
	return nil
}

func formatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
