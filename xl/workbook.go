package xl

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/adnsv/srw/xml"
)

func validateSheetName(s string) error {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return fmt.Errorf("%w: empty sheet name is not allowed", ErrSheetName)
	} else if n > 31 {
		return fmt.Errorf("%w: the sheet name is too long", ErrSheetName)
	}
	if strings.HasPrefix(s, "'") || strings.HasSuffix(s, "'") {
		return fmt.Errorf("%w: the first or last character of the sheet name can not be a single quote", ErrSheetName)
	}
	if strings.ContainsAny(s, ":\\/?*[]") {
		return fmt.Errorf("%w: the sheet can not contain any of the characters :\\/?*[]", ErrSheetName)
	}
	if strings.ContainsAny(s, "\t\n\r") {
		return fmt.Errorf("%w: the sheet name can not contain line breaks or tabs", ErrSheetName)
	}
	if err := validateText(s); err != nil {
		return fmt.Errorf("%w: %w", ErrSheetName, err)
	}
	return nil
}

// quoteSheetName returns the sheet name as it appears in a formula reference.
func quoteSheetName(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (w *Writer) writeWorkbook(t *Table) error {
	w.register(PartWorkbook)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("workbook")
	x.Attr("xmlns", nsMain)
	x.Attr("xmlns:r", nsRelationships)

	x.OTag("+bookViews")
	x.OTag("+workbookView").Attr("activeTab", 0).CTag()
	x.CTag()

	x.OTag("+sheets")
	x.OTag("+sheet")
	x.Attr("name", t.sheetName())
	x.Attr("sheetId", 1)
	x.Attr("r:id", PartWorksheet.RelID())
	x.CTag()
	x.CTag()

	// spreadsheet applications keep the autofilter range in this hidden name
	x.OTag("+definedNames")
	x.OTag("+definedName")
	x.Attr("name", "_xlnm._FilterDatabase").Attr("localSheetId", 0).Attr("hidden", 1)
	x.RawString(xml.RawString(escapeText(quoteSheetName(t.sheetName()) + "!" + absRangeRef(len(t.Header), len(t.Rows)+1))))
	x.CTag()
	x.CTag()

	x.CTag() // workbook

	return w.writePart(PartWorkbook, bb.Bytes())
}
