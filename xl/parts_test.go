package xl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartRelationships(t *testing.T) {
	tests := []struct {
		id     PartID
		rid    string
		target string
	}{
		{PartWorkbook, "rId1", "xl/workbook.xml"},
		{PartWorksheet, "rId1", "worksheets/sheet1.xml"},
		{PartStyles, "rId2", "styles.xml"},
		{PartSharedStrings, "rId3", "sharedStrings.xml"},
		{PartContentTypes, "", "[Content_Types].xml"},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			assert.Equal(t, tt.rid, tt.id.RelID())
			if tt.rid != "" {
				assert.Equal(t, tt.target, tt.id.Target())
				assert.Equal(t, tt.id.Name(), resolveTarget(parts[tt.id].source, tt.id.Target()))
			}
		})
	}
}

func TestPartContentTypes(t *testing.T) {
	assert.Equal(t, "application/vnd.openxmlformats-package.relationships+xml", PartPackageRels.ContentType())
	assert.Equal(t, "application/vnd.openxmlformats-package.relationships+xml", PartWorkbookRels.ContentType())
	assert.Equal(t, "application/xml", PartContentTypes.ContentType())
	assert.Contains(t, PartWorksheet.ContentType(), "worksheet+xml")
	assert.Equal(t, "/xl/styles.xml", PartStyles.PartName())
}

func TestParts_Members(t *testing.T) {
	var names []string
	for _, id := range Parts() {
		names = append(names, id.Name())
	}
	assert.ElementsMatch(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/styles.xml",
		"xl/sharedStrings.xml",
		"xl/worksheets/sheet1.xml",
	}, names)
	assert.Equal(t, "PartID(99)", PartID(99).String())
}
