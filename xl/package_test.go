package xl

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// Decoding models for inspecting generated parts. Tags omit namespaces so
// they match the SpreadsheetML default namespace.

type xWorksheet struct {
	Dimension struct {
		Ref string `xml:"ref,attr"`
	} `xml:"dimension"`
	Pane struct {
		YSplit      int    `xml:"ySplit,attr"`
		TopLeftCell string `xml:"topLeftCell,attr"`
		State       string `xml:"state,attr"`
	} `xml:"sheetViews>sheetView>pane"`
	Cols []struct {
		Min         int     `xml:"min,attr"`
		Max         int     `xml:"max,attr"`
		Width       float64 `xml:"width,attr"`
		CustomWidth int     `xml:"customWidth,attr"`
	} `xml:"cols>col"`
	Rows []struct {
		R     int `xml:"r,attr"`
		Cells []struct {
			R string `xml:"r,attr"`
			T string `xml:"t,attr"`
			S int    `xml:"s,attr"`
			V string `xml:"v"`
		} `xml:"c"`
	} `xml:"sheetData>row"`
	AutoFilter struct {
		Ref string `xml:"ref,attr"`
	} `xml:"autoFilter"`
}

type xSST struct {
	Count       int `xml:"count,attr"`
	UniqueCount int `xml:"uniqueCount,attr"`
	SI          []struct {
		T string `xml:"t"`
	} `xml:"si"`
}

type xRelationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xTypes struct {
	Defaults []struct {
		Extension   string `xml:"Extension,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Default"`
	Overrides []struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Override"`
}

type xWorkbook struct {
	Sheets []struct {
		Name    string `xml:"name,attr"`
		SheetID int    `xml:"sheetId,attr"`
		RID     string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
	DefinedNames []struct {
		Name  string `xml:"name,attr"`
		Value string `xml:",chardata"`
	} `xml:"definedNames>definedName"`
}

type xStyleSheet struct {
	CellXfs struct {
		Count int `xml:"count,attr"`
		Xf    []struct {
			FontID int `xml:"fontId,attr"`
			FillID int `xml:"fillId,attr"`
		} `xml:"xf"`
	} `xml:"cellXfs"`
	Fonts struct {
		Count int `xml:"count,attr"`
	} `xml:"fonts"`
	Fills struct {
		Count int `xml:"count,attr"`
		Fill  []struct {
			PatternFill struct {
				PatternType string `xml:"patternType,attr"`
			} `xml:"patternFill"`
		} `xml:"fill"`
	} `xml:"fills"`
}

// unpack returns every archive member keyed by name.
func unpack(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	members := map[string][]byte{}
	for _, f := range zr.File {
		require.Equal(t, zip.Deflate, f.Method, f.Name)
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		members[f.Name] = b
	}
	return members
}

func decode(t *testing.T, members map[string][]byte, name string, v any) {
	t.Helper()
	b, ok := members[name]
	require.True(t, ok, "missing member %s", name)
	require.NoError(t, xml.Unmarshal(b, v), name)
}

func exampleTable() *Table {
	return NewTable(
		[]string{"Priority", "Resource Type", "Issue", "Risk Score"},
		[]Row{
			{Number(1), Text("Storage Account"), Text("Public blob access enabled"), Number(9)},
			{Number(2), Text("Key Vault"), Text("No network ACLs"), Number(7)},
		},
	)
}

func encodeTable(t *testing.T, tbl *Table) map[string][]byte {
	t.Helper()
	data, err := Encode(tbl)
	require.NoError(t, err)
	return unpack(t, data)
}
