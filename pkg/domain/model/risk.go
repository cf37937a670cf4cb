package model

import (
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// Column names of the Risk_Register sheet
var (
	ColRiskID          = []string{"Risk ID"}
	ColRiskDescription = []string{"Risk Description", "Description"}
	ColLikelihood      = []string{"Likelihood (1-5)", "Likelihood"}
	ColImpact          = []string{"Impact (1-5)", "Impact"}
	ColRiskLevel       = []string{"Risk Level"}
	ColStatus          = []string{"Status"}
)

// RiskRow is one entry of the risk register.
// Likelihood and Impact are 1..5, or 0 when the cell is missing or invalid.
type RiskRow struct {
	ID          types.RiskID `json:"id"`
	Description string       `json:"description"`
	Likelihood  int          `json:"likelihood"`
	Impact      int          `json:"impact"`
	Level       string       `json:"level,omitempty"` // verbatim "Risk Level" cell, display only
	Status      types.Status `json:"status"`
}

// Rated reports whether both likelihood and impact are valid ratings
func (r RiskRow) Rated() bool {
	return r.Likelihood >= 1 && r.Likelihood <= 5 && r.Impact >= 1 && r.Impact <= 5
}

// Score returns likelihood x impact, or 0 for unrated risks
func (r RiskRow) Score() int {
	if !r.Rated() {
		return 0
	}
	return r.Likelihood * r.Impact
}

// Band returns the severity band derived from the score
func (r RiskRow) Band() types.SeverityBand {
	return types.BandForScore(r.Score())
}

// ParseRiskRows converts the Risk_Register sheet into typed rows
func ParseRiskRows(t *Table) []RiskRow {
	if t == nil {
		return nil
	}

	rows := make([]RiskRow, 0, len(t.Rows))
	for _, raw := range t.Rows {
		rows = append(rows, RiskRow{
			ID:          types.RiskID(t.Value(raw, ColRiskID...)),
			Description: t.Value(raw, ColRiskDescription...),
			Likelihood:  ParseLevel(t.Value(raw, ColLikelihood...)),
			Impact:      ParseLevel(t.Value(raw, ColImpact...)),
			Level:       t.Value(raw, ColRiskLevel...),
			Status:      types.NewStatus(t.Value(raw, ColStatus...)),
		})
	}
	return rows
}

// RiskMatrixCell holds the risks at one (likelihood, impact) position
type RiskMatrixCell struct {
	Likelihood int                `json:"likelihood"`
	Impact     int                `json:"impact"`
	Score      int                `json:"score"`
	Band       types.SeverityBand `json:"band"`
	Color      string             `json:"color"`
	RiskIDs    []types.RiskID     `json:"risk_ids"`
}

// RiskMatrix is the fixed 5x5 likelihood x impact grid.
// Cells[l-1][i-1] holds likelihood l and impact i.
type RiskMatrix struct {
	Cells [5][5]RiskMatrixCell `json:"cells"`
}

// Cell returns the cell for a likelihood and impact in 1..5, or nil
func (m *RiskMatrix) Cell(likelihood, impact int) *RiskMatrixCell {
	if likelihood < 1 || likelihood > 5 || impact < 1 || impact > 5 {
		return nil
	}
	return &m.Cells[likelihood-1][impact-1]
}

// Rows returns the grid in display order: impact 5 at the top, likelihood 1 on the left
func (m *RiskMatrix) Rows() [][]RiskMatrixCell {
	rows := make([][]RiskMatrixCell, 0, 5)
	for impact := 5; impact >= 1; impact-- {
		row := make([]RiskMatrixCell, 0, 5)
		for likelihood := 1; likelihood <= 5; likelihood++ {
			row = append(row, m.Cells[likelihood-1][impact-1])
		}
		rows = append(rows, row)
	}
	return rows
}

// Len returns the number of cells, always 25
func (m *RiskMatrix) Len() int {
	n := 0
	for _, col := range m.Cells {
		n += len(col)
	}
	return n
}

// SeverityCounts counts risks per severity band
type SeverityCounts struct {
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Low     int `json:"low"`
	Unrated int `json:"unrated"`
}
