package xl

import (
	"fmt"
	"path"
	"strings"
)

// Namespaces shared by the SpreadsheetML parts.
const (
	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// PartID names every part of the package. The parts table below is the
// single source for part names, content types and relationships; the
// content-type and relationship writers both read from it.
type PartID int

const (
	PartContentTypes PartID = iota
	PartPackageRels
	PartWorkbook
	PartWorkbookRels
	PartWorksheet
	PartStyles
	PartSharedStrings

	partCount
)

type partInfo struct {
	name        string // archive member name, no leading slash
	contentType string // Override content type; empty when a Default covers it
	relType     string // relationship type; empty when not a relationship target
	source      PartID // relationships part that targets this part
}

var parts = [partCount]partInfo{
	PartContentTypes: {
		name: "[Content_Types].xml",
	},
	PartPackageRels: {
		name: "_rels/.rels",
	},
	PartWorkbook: {
		name:        "xl/workbook.xml",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml",
		relType:     "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument",
		source:      PartPackageRels,
	},
	PartWorkbookRels: {
		name: "xl/_rels/workbook.xml.rels",
	},
	PartWorksheet: {
		name:        "xl/worksheets/sheet1.xml",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml",
		relType:     "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet",
		source:      PartWorkbookRels,
	},
	PartStyles: {
		name:        "xl/styles.xml",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml",
		relType:     "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles",
		source:      PartWorkbookRels,
	},
	PartSharedStrings: {
		name:        "xl/sharedStrings.xml",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml",
		relType:     "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings",
		source:      PartWorkbookRels,
	},
}

// defaultContentTypes maps extensions to the content type of every part
// that has no Override.
var defaultContentTypes = map[string]string{
	"xml":  "application/xml",
	"rels": "application/vnd.openxmlformats-package.relationships+xml",
}

// Parts lists every member of a package in archive order.
func Parts() []PartID {
	ids := make([]PartID, partCount)
	for i := range ids {
		ids[i] = PartID(i)
	}
	return ids
}

func (p PartID) String() string {
	if p < 0 || p >= partCount {
		return fmt.Sprintf("PartID(%d)", int(p))
	}
	return parts[p].name
}

// Name returns the archive member name of the part.
func (p PartID) Name() string { return parts[p].name }

// PartName returns the OPC part name, which is the member name with a
// leading slash.
func (p PartID) PartName() string { return "/" + parts[p].name }

// ContentType returns the Override content type, or the Default for the
// part's extension.
func (p PartID) ContentType() string {
	if ct := parts[p].contentType; ct != "" {
		return ct
	}
	return defaultContentTypes[strings.TrimPrefix(path.Ext(parts[p].name), ".")]
}

// RelID returns the relationship id under which the part's source refers to
// it. Ids are numbered in table order among parts sharing a source.
func (p PartID) RelID() string {
	if parts[p].relType == "" {
		return ""
	}
	n := 0
	for q := PartID(0); q <= p; q++ {
		if parts[q].relType != "" && parts[q].source == parts[p].source {
			n++
		}
	}
	return fmt.Sprintf("rId%d", n)
}

// Target returns the relationship target of the part, relative to the
// directory of the part that owns the relationships part.
func (p PartID) Target() string {
	base := relsBase(parts[p].source)
	if base == "" {
		return parts[p].name
	}
	return strings.TrimPrefix(parts[p].name, base+"/")
}

// relsBase returns the directory that relationship targets in rels are
// resolved against: "_rels/.rels" resolves from the package root,
// "xl/_rels/workbook.xml.rels" from "xl".
func relsBase(rels PartID) string {
	dir := path.Dir(path.Dir(parts[rels].name))
	if dir == "." {
		return ""
	}
	return dir
}

// resolveTarget is the inverse of Target.
func resolveTarget(rels PartID, target string) string {
	base := relsBase(rels)
	if base == "" {
		return target
	}
	return path.Join(base, target)
}
