package xl

import "errors"

// Input errors. They are returned before anything is written, and callers
// should use errors.Is to check for them.
var (
	ErrEmptyHeader  = errors.New("xl: header has no columns")
	ErrRowLength    = errors.New("xl: row length does not match header")
	ErrUnsetCell    = errors.New("xl: cell has no value")
	ErrInvalidText  = errors.New("xl: text is not encodable in XML")
	ErrWidthCount   = errors.New("xl: invalid column widths")
	ErrInvalidStyle = errors.New("xl: unknown style")
	ErrSheetName    = errors.New("xl: invalid sheet name")
	ErrTooLarge     = errors.New("xl: table exceeds worksheet limits")
)

// ErrDanglingPart reports a relationship or content-type override that does
// not resolve to a part in the package.
var ErrDanglingPart = errors.New("xl: unresolved package part")
