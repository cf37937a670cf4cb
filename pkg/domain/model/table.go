package model

import "strings"

// Sheet names in the project planning workbook
const (
	SheetWorkstreams = "Workstreams"
	SheetRisks       = "Risk_Register"
	SheetIssues      = "Issue_Tracker"
	SheetTeam        = "References"
	SheetMilestones  = "Milestones"
	SheetActivities  = "Activities"
)

// Table is the raw content of one worksheet: a header row followed by data rows.
// Rows may be shorter than the header (trailing empty cells are not returned by the API).
type Table struct {
	Name   string     `json:"name" yaml:"name"`
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// NewTable builds a table from a 2D grid where the first row is the header.
// Rows whose cells are all blank are dropped.
func NewTable(name string, values [][]string) *Table {
	t := &Table{Name: name}
	if len(values) == 0 {
		return t
	}

	t.Header = make([]string, len(values[0]))
	for i, h := range values[0] {
		t.Header[i] = strings.TrimSpace(h)
	}

	for _, row := range values[1:] {
		if isBlankRow(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ColumnIndex returns the index of the first header matching any of the names, or -1
func (t *Table) ColumnIndex(names ...string) int {
	if t == nil {
		return -1
	}
	for _, name := range names {
		for i, h := range t.Header {
			if h == name {
				return i
			}
		}
	}
	return -1
}

// HasColumn reports whether any of the names is present in the header
func (t *Table) HasColumn(names ...string) bool {
	return t.ColumnIndex(names...) >= 0
}

// Value returns the trimmed cell of row for the first matching column.
// Missing columns and short rows yield an empty string.
func (t *Table) Value(row []string, names ...string) string {
	idx := t.ColumnIndex(names...)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Records returns every row as a header-keyed map
func (t *Table) Records() []map[string]string {
	if t == nil {
		return nil
	}
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for i, h := range t.Header {
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// Column returns every value of the first matching column
func (t *Table) Column(names ...string) []string {
	if t == nil {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, t.Value(row, names...))
	}
	return values
}
