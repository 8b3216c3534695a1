//go:build windows

package xl

import (
	"errors"

	"golang.org/x/sys/windows"
)

// A workbook open in a spreadsheet application holds a sharing lock.
func isSharingViolation(err error) bool {
	return errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
		errors.Is(err, windows.ERROR_LOCK_VIOLATION) ||
		errors.Is(err, windows.ERROR_ACCESS_DENIED)
}
