package xl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Outcome tells where WriteFileAtomic put the data.
type Outcome int

const (
	WrittenAtRequestedPath Outcome = iota
	WrittenAtFallbackPath
)

func (o Outcome) String() string {
	if o == WrittenAtFallbackPath {
		return "fallback"
	}
	return "requested"
}

// WriteResult describes a successful write.
type WriteResult struct {
	Outcome Outcome
	Path    string // path actually written
	Reason  error  // why the requested path was not used; nil unless Outcome is WrittenAtFallbackPath
}

// FallbackSuffix is inserted before the extension of a locked target.
const FallbackSuffix = ".fallback"

// FallbackPath returns the alternate path used when path is locked:
// "register.xlsx" becomes "register.fallback.xlsx".
func FallbackPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + FallbackSuffix + ext
}

var errRename = errors.New("replace target")

// rename is swapped in tests to simulate a target held open by another
// process.
var rename = os.Rename

// WriteFileAtomic writes data to path through a temporary file in the same
// directory and a rename, so path never holds a partial file.
//
// If the rename fails because path is locked, the data is written to
// FallbackPath(path) instead and the result reports the fallback. There is
// exactly one fallback attempt. No temporary file is left behind on any
// outcome.
func WriteFileAtomic(path string, data []byte) (WriteResult, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return WriteResult{}, fmt.Errorf("create directory: %w", err)
	}

	err := replaceFile(path, data)
	if err == nil {
		return WriteResult{Outcome: WrittenAtRequestedPath, Path: path}, nil
	}
	if !errors.Is(err, errRename) || !isLocked(err) {
		return WriteResult{}, err
	}

	alt := FallbackPath(path)
	if ferr := replaceFile(alt, data); ferr != nil {
		return WriteResult{}, fmt.Errorf("%s is locked (%v), fallback failed: %w", path, err, ferr)
	}
	return WriteResult{Outcome: WrittenAtFallbackPath, Path: alt, Reason: err}, nil
}

func replaceFile(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %w", errRename, err)
	}
	return nil
}

// isLocked reports whether err means another process holds the file.
func isLocked(err error) bool {
	return errors.Is(err, fs.ErrPermission) || isSharingViolation(err)
}

// Save encodes t and writes it to path with WriteFileAtomic. Input errors
// are returned before the filesystem is touched.
func Save(path string, t *Table) (WriteResult, error) {
	data, err := Encode(t)
	if err != nil {
		return WriteResult{}, err
	}
	return WriteFileAtomic(path, data)
}
