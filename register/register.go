// Package register maps security findings onto the rows of a Risk Register
// workbook.
package register

import (
	"errors"
	"fmt"
	"sort"

	"github.com/adnsv/riskreg/xl"
)

// Finding is one triaged issue.
type Finding struct {
	Priority       int    `yaml:"priority"`
	Severity       string `yaml:"severity"`
	ResourceType   string `yaml:"resource_type"`
	Resource       string `yaml:"resource"`
	Issue          string `yaml:"issue"`
	Description    string `yaml:"description"`
	Recommendation string `yaml:"recommendation"`
	RiskScore      int    `yaml:"risk_score"`
}

// MaxRiskScore is the top of the risk score scale.
const MaxRiskScore = 10

var (
	ErrPriority  = errors.New("register: priority must be 1 or greater")
	ErrRiskScore = errors.New("register: risk score out of range")
	ErrNoIssue   = errors.New("register: finding has no issue")
)

func (f Finding) Validate() error {
	if f.Priority < 1 {
		return fmt.Errorf("%w: %d", ErrPriority, f.Priority)
	}
	if f.RiskScore < 0 || f.RiskScore > MaxRiskScore {
		return fmt.Errorf("%w: %d not in 0..%d", ErrRiskScore, f.RiskScore, MaxRiskScore)
	}
	if f.Issue == "" {
		return ErrNoIssue
	}
	return nil
}

// Column is one register column: its label, width in characters, and how a
// finding fills it.
type Column struct {
	Header string
	Width  float64
	Value  func(Finding) xl.Cell
}

var columns = []Column{
	{"Priority", 10, func(f Finding) xl.Cell { return xl.Number(int64(f.Priority)) }},
	{"Severity", 12, func(f Finding) xl.Cell { return xl.Text(f.Severity) }},
	{"Resource Type", 22, func(f Finding) xl.Cell { return xl.Text(f.ResourceType) }},
	{"Resource", 30, func(f Finding) xl.Cell { return xl.Text(f.Resource) }},
	{"Issue", 45, func(f Finding) xl.Cell { return xl.Text(f.Issue) }},
	{"Description", 70, func(f Finding) xl.Cell { return xl.Text(f.Description) }},
	{"Recommendation", 60, func(f Finding) xl.Cell { return xl.Text(f.Recommendation) }},
	{"Risk Score", 12, func(f Finding) xl.Cell { return xl.Number(int64(f.RiskScore)) }},
}

// Columns returns the register layout in order.
func Columns() []Column {
	return append([]Column(nil), columns...)
}

func Header() []string {
	h := make([]string, len(columns))
	for i, c := range columns {
		h[i] = c.Header
	}
	return h
}

func Widths() []float64 {
	w := make([]float64, len(columns))
	for i, c := range columns {
		w[i] = c.Width
	}
	return w
}

// Row renders f in column order.
func Row(f Finding) xl.Row {
	row := make(xl.Row, len(columns))
	for i, c := range columns {
		row[i] = c.Value(f)
	}
	return row
}

func Rows(findings []Finding) []xl.Row {
	rows := make([]xl.Row, len(findings))
	for i, f := range findings {
		rows[i] = Row(f)
	}
	return rows
}

// Sort orders findings by priority, then by descending risk score. Ties keep
// their input order.
func Sort(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Priority != findings[j].Priority {
			return findings[i].Priority < findings[j].Priority
		}
		return findings[i].RiskScore > findings[j].RiskScore
	})
}

// Table validates and sorts findings and lays them out as a register sheet.
// The findings slice is sorted in place.
func Table(sheetName string, findings []Finding) (*xl.Table, error) {
	for i, f := range findings {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("finding %d: %w", i, err)
		}
	}
	Sort(findings)

	t := xl.NewTable(Header(), Rows(findings))
	if sheetName != "" {
		t.SheetName = sheetName
	}
	t.Widths = Widths()
	return t, nil
}
