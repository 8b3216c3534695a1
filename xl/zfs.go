package xl

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage receives the parts of a package by member name.
type Storage interface {
	WriteBlob(path string, blob []byte) error
}

// DirStorage writes parts to a directory tree instead of an archive, so
// the generated XML can be inspected.
type DirStorage struct {
	Dir string // Root directory path
}

// ZipStorage writes parts to a ZIP archive, producing an .xlsx file.
type ZipStorage struct {
	z *zip.Writer
}

func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{
		Dir: dir,
	}
}

// WriteBlob writes a part below Dir, creating parent directories as needed.
func (ds *DirStorage) WriteBlob(path string, blob []byte) error {
	path = strings.TrimPrefix(path, "/")
	fn := filepath.Join(ds.Dir, filepath.FromSlash(path))
	err := os.MkdirAll(filepath.Dir(fn), 0777)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, blob, 0666)
}

// NewZipStorage creates an archive that writes to out.
func NewZipStorage(out io.Writer) *ZipStorage {
	return &ZipStorage{z: zip.NewWriter(out)}
}

// WriteBlob adds a DEFLATE-compressed member to the archive.
func (zs *ZipStorage) WriteBlob(path string, blob []byte) error {
	path = strings.TrimPrefix(path, "/")
	f, err := zs.z.CreateHeader(&zip.FileHeader{
		Name:   path,
		Method: zip.Deflate,
	})
	if err != nil {
		return err
	}
	_, err = f.Write(blob)
	return err
}

// Close writes the archive's central directory. The archive is invalid
// until Close returns nil.
func (zs *ZipStorage) Close() error {
	return zs.z.Close()
}
