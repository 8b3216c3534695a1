// Package inspect reads a generated workbook back with an independent
// SpreadsheetML reader, to confirm the file opens outside this module.
package inspect

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var ErrNotSingleSheet = errors.New("inspect: workbook must contain exactly one sheet")

// Summary describes what a reader sees in a register workbook.
type Summary struct {
	Sheet      string
	Header     []string
	DataRows   int
	FrozenRows int
}

func File(path string) (Summary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return summarize(f)
}

func summarize(f *excelize.File) (Summary, error) {
	sheets := f.GetSheetList()
	if len(sheets) != 1 {
		return Summary{}, fmt.Errorf("%w: found %d", ErrNotSingleSheet, len(sheets))
	}
	s := Summary{Sheet: sheets[0]}

	rows, err := f.GetRows(s.Sheet)
	if err != nil {
		return s, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) > 0 {
		s.Header = rows[0]
		s.DataRows = len(rows) - 1
	}

	panes, err := f.GetPanes(s.Sheet)
	if err != nil {
		return s, fmt.Errorf("read panes: %w", err)
	}
	if panes.Freeze {
		s.FrozenRows = panes.YSplit
	}
	return s, nil
}
