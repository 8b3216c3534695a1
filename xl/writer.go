package xl

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/adnsv/srw/xml"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Writer assembles one table into an OPC package. A Writer is single use:
// create one per table.
type Writer struct {
	out Storage

	PackageRels         map[string]RelInfo // maps id to target relative to the package root
	WorkbookRels        map[string]RelInfo // maps id to target relative to xl/
	DefaultContentTypes map[string]string  // maps path extension to content-type
	PartContentTypes    map[string]string  // maps partname to content-type

	written map[string]bool // member names already handed to out
}

type RelInfo struct {
	Type   string // url to schema type
	Target string // relative path
}

func NewWriter(s Storage) *Writer {
	return &Writer{
		out:                 s,
		PackageRels:         map[string]RelInfo{},
		WorkbookRels:        map[string]RelInfo{},
		DefaultContentTypes: maps.Clone(defaultContentTypes),
		PartContentTypes:    map[string]string{},
		written:             map[string]bool{},
	}
}

// register declares the part's content type and the relationship that
// reaches it, and returns the relationship id.
func (w *Writer) register(id PartID) string {
	info := parts[id]
	if info.contentType != "" {
		w.PartContentTypes[id.PartName()] = info.contentType
	}
	rid := id.RelID()
	if rid == "" {
		return ""
	}
	rel := RelInfo{Type: info.relType, Target: id.Target()}
	switch info.source {
	case PartPackageRels:
		w.PackageRels[rid] = rel
	case PartWorkbookRels:
		w.WorkbookRels[rid] = rel
	}
	return rid
}

func (w *Writer) writePart(id PartID, blob []byte) error {
	if err := w.out.WriteBlob(id.Name(), blob); err != nil {
		return fmt.Errorf("write %s: %w", id.Name(), err)
	}
	w.written[id.Name()] = true
	return nil
}

// Write validates t and emits every part of the package. Nothing reaches
// the storage when validation fails.
func (w *Writer) Write(t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	sst := BuildSharedStrings(t.Header, t.Rows)

	if err := w.writeSheet(t, sst); err != nil {
		return err
	}
	if err := w.writeStyles(); err != nil {
		return err
	}
	if err := w.writeSharedStrings(sst); err != nil {
		return err
	}
	if err := w.writeWorkbook(t); err != nil {
		return err
	}

	if err := w.verify(); err != nil {
		return err
	}

	if err := w.writeRels(PartWorkbookRels, w.WorkbookRels); err != nil {
		return err
	}
	if err := w.writeRels(PartPackageRels, w.PackageRels); err != nil {
		return err
	}
	return w.writeContentTypes()
}

// verify checks that every relationship target and every content-type
// override names a part that has been written.
func (w *Writer) verify() error {
	for _, src := range []struct {
		id   PartID
		rels map[string]RelInfo
	}{
		{PartPackageRels, w.PackageRels},
		{PartWorkbookRels, w.WorkbookRels},
	} {
		err := enumerate(src.rels, func(rid string, info RelInfo) error {
			if name := resolveTarget(src.id, info.Target); !w.written[name] {
				return fmt.Errorf("%w: %s %s targets %s", ErrDanglingPart, src.id, rid, name)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return enumerate(w.PartContentTypes, func(partname, _ string) error {
		if !w.written[partname[1:]] {
			return fmt.Errorf("%w: content type override for %s", ErrDanglingPart, partname)
		}
		return nil
	})
}

func (w *Writer) writeContentTypes() error {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})

	x.XmlStandaloneDecl()
	x.OTag("Types")
	x.Attr("xmlns", nsContentTypes)
	enumerate(w.DefaultContentTypes, func(ext, ctype string) error {
		x.OTag("+Default").Attr("Extension", ext).Attr("ContentType", ctype).CTag()
		return nil
	})
	enumerate(w.PartContentTypes, func(partname, ctype string) error {
		x.OTag("+Override").Attr("PartName", partname).Attr("ContentType", ctype).CTag()
		return nil
	})

	x.CTag()

	return w.writePart(PartContentTypes, bb.Bytes())
}

func (w *Writer) writeSharedStrings(sst *SharedStrings) error {
	w.register(PartSharedStrings)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("sst")
	x.Attr("xmlns", nsMain)
	x.Attr("count", sst.Len())
	x.Attr("uniqueCount", sst.Len())

	for _, s := range sst.Values() {
		x.OTag("+si")
		x.OTag("t")
		if needsSpacePreserve(s) {
			x.Attr("xml:space", "preserve")
		}
		x.RawString(xml.RawString(escapeText(s)))
		x.CTag()
		x.CTag()
	}

	x.CTag()

	return w.writePart(PartSharedStrings, bb.Bytes())
}

func (w *Writer) writeRels(id PartID, rels map[string]RelInfo) error {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("Relationships")
	x.Attr("xmlns", nsPackageRels)
	err := enumerate(rels, func(rid string, info RelInfo) error {
		x.OTag("+Relationship").Attr("Id", rid).Attr("Type", info.Type).Attr("Target", info.Target)
		x.CTag()
		return nil
	})
	if err != nil {
		return err
	}
	x.CTag()

	return w.writePart(id, bb.Bytes())
}

// Encode returns t as a complete .xlsx archive.
func Encode(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	zs := NewZipStorage(&buf)
	if err := NewWriter(zs).Write(t); err != nil {
		return nil, err
	}
	if err := zs.Close(); err != nil {
		return nil, fmt.Errorf("finish archive: %w", err)
	}
	return buf.Bytes(), nil
}

func enumerate[M ~map[K]V, K constraints.Ordered, V any](m M, callback func(k K, v V) error) error {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		err := callback(k, m[k])
		if err != nil {
			return err
		}
	}
	return nil
}
