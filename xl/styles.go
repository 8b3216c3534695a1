package xl

import (
	"bytes"
	"fmt"

	"github.com/adnsv/srw/xml"
)

// Style is an index into the workbook's cellXfs list. The set is closed:
// every value has exactly one record in styleRecords.
type Style int

const (
	StyleDefault     Style = iota // implicit, unformatted
	StyleHeaderLabel              // bold label
	StyleHeaderBand               // bold label on a shaded band

	StyleCount = iota
)

func (s Style) Valid() bool { return s >= 0 && s < StyleCount }

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleHeaderLabel:
		return "label"
	case StyleHeaderBand:
		return "band"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle is the inverse of Style.String.
func ParseStyle(name string) (Style, error) {
	for s := Style(0); s < StyleCount; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidStyle, name)
}

// HeaderBandColor is the ARGB fill of StyleHeaderBand.
const HeaderBandColor = "FFD9E1F2"

// fills 0 and 1 are reserved by SpreadsheetML (none and gray125).
const (
	fillNone = 0
	fillBand = 2
)

type styleRecord struct {
	font  int
	fill  int
	align bool // vertical centering for the header band
}

var fonts = []Font{regularFont, boldFont}

var styleRecords = [StyleCount]styleRecord{
	StyleDefault:     {font: 0, fill: fillNone},
	StyleHeaderLabel: {font: 1, fill: fillNone},
	StyleHeaderBand:  {font: 1, fill: fillBand, align: true},
}

func (w *Writer) writeStyles() error {
	w.register(PartStyles)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("styleSheet")
	x.Attr("xmlns", nsMain)

	x.OTag("+fonts").Attr("count", len(fonts))
	for _, f := range fonts {
		f.write(x)
	}
	x.CTag()

	x.OTag("+fills").Attr("count", 3)
	x.OTag("+fill")
	x.OTag("patternFill").Attr("patternType", "none").CTag()
	x.CTag()
	x.OTag("+fill")
	x.OTag("patternFill").Attr("patternType", "gray125").CTag()
	x.CTag()
	x.OTag("+fill")
	x.OTag("patternFill").Attr("patternType", "solid")
	x.OTag("fgColor").Attr("rgb", HeaderBandColor).CTag()
	x.OTag("bgColor").Attr("indexed", 64).CTag()
	x.CTag()
	x.CTag()
	x.CTag() // fills

	x.OTag("+borders").Attr("count", 1)
	x.OTag("+border")
	x.OTag("left").CTag()
	x.OTag("right").CTag()
	x.OTag("top").CTag()
	x.OTag("bottom").CTag()
	x.OTag("diagonal").CTag()
	x.CTag()
	x.CTag()

	x.OTag("+cellStyleXfs").Attr("count", 1)
	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", 0).Attr("borderId", 0).CTag()
	x.CTag()

	x.OTag("+cellXfs").Attr("count", int(StyleCount))
	for _, rec := range styleRecords {
		x.OTag("+xf")
		x.Attr("numFmtId", 0).Attr("fontId", rec.font).Attr("fillId", rec.fill).Attr("borderId", 0).Attr("xfId", 0)
		if rec.font != 0 {
			x.Attr("applyFont", 1)
		}
		if rec.fill != fillNone {
			x.Attr("applyFill", 1)
		}
		if rec.align {
			x.Attr("applyAlignment", 1)
			x.OTag("alignment").Attr("vertical", "center").CTag()
		}
		x.CTag()
	}
	x.CTag()

	x.OTag("+cellStyles").Attr("count", 1)
	x.OTag("+cellStyle").Attr("name", "Normal").Attr("xfId", 0).Attr("builtinId", 0).CTag()
	x.CTag()

	x.CTag() // styleSheet

	return w.writePart(PartStyles, bb.Bytes())
}
