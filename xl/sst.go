package xl

// SharedStrings is the workbook's deduplicated text table. Values keep
// their first-appearance order: header labels first, then text cells row by
// row, left to right.
type SharedStrings struct {
	values []string
	index  map[string]int // 0-based index into values
}

// BuildSharedStrings interns every header label and text cell. Number cells
// are skipped.
func BuildSharedStrings(header []string, rows []Row) *SharedStrings {
	sst := &SharedStrings{index: make(map[string]int, len(header))}
	for _, h := range header {
		sst.add(h)
	}
	for _, row := range rows {
		for _, c := range row {
			if c.typ == CellTypeSharedString {
				sst.add(c.s)
			}
		}
	}
	return sst
}

func (sst *SharedStrings) add(s string) int {
	if i, ok := sst.index[s]; ok {
		return i
	}
	i := len(sst.values)
	sst.values = append(sst.values, s)
	sst.index[s] = i
	return i
}

// Index returns the position of s in the table.
func (sst *SharedStrings) Index(s string) (int, bool) {
	i, ok := sst.index[s]
	return i, ok
}

// Values returns the table in order. The slice must not be modified.
func (sst *SharedStrings) Values() []string { return sst.values }

func (sst *SharedStrings) Len() int { return len(sst.values) }
