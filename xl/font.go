package xl

import "github.com/adnsv/srw/xml"

// Font represents font formatting properties of a style record.
// These properties correspond to the OpenXML font element as defined in ECMA-376.
type Font struct {
	Name   string  // Typeface, e.g. "Calibri"
	Family int     // Font family as in ST_FontFamily (2 = swiss)
	Size   float64 // Font size in points
	Bold   bool
}

var (
	regularFont = Font{Name: "Calibri", Family: 2, Size: 11}
	boldFont    = Font{Name: "Calibri", Family: 2, Size: 11, Bold: true}
)

func (f Font) write(x *xml.Writer) {
	x.OTag("+font")
	if f.Bold {
		x.OTag("b").CTag()
	}
	x.OTag("sz").Attr("val", f.Size).CTag()
	x.OTag("color").Attr("theme", 1).CTag()
	x.OTag("name").Attr("val", f.Name).CTag()
	x.OTag("family").Attr("val", f.Family).CTag()
	x.CTag()
}
