package metrics_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
	"github.com/secmon-lab/workboard/pkg/metrics"
)

func countPlaced(m model.RiskMatrix) int {
	n := 0
	for _, row := range m.Rows() {
		for _, cell := range row {
			n += len(cell.RiskIDs)
		}
	}
	return n
}

func TestRiskMatrix(t *testing.T) {
	t.Run("always 25 cells", func(t *testing.T) {
		m := metrics.RiskMatrix(nil)
		gt.Equal(t, 25, m.Len())
		rows := m.Rows()
		gt.A(t, rows).Length(5)
		for _, row := range rows {
			gt.A(t, row).Length(5)
		}
		gt.Equal(t, 0, countPlaced(m))
	})

	t.Run("open risks placed after upstream filter", func(t *testing.T) {
		risks := []model.RiskRow{
			{ID: "R1", Likelihood: 5, Impact: 5, Status: types.NewStatus("open")},
			{ID: "R2", Likelihood: 1, Impact: 1, Status: types.NewStatus("closed")},
		}

		m := metrics.RiskMatrix(metrics.OpenRisks(risks))
		cell := m.Cell(5, 5)
		gt.V(t, cell).NotNil()
		gt.Equal(t, []types.RiskID{"R1"}, cell.RiskIDs)
		gt.Equal(t, types.BandHigh, cell.Band)
		gt.Equal(t, "red", cell.Color)
		gt.Equal(t, 1, countPlaced(m))
		gt.Equal(t, 0, len(m.Cell(1, 1).RiskIDs))
	})

	t.Run("does not filter by status itself", func(t *testing.T) {
		m := metrics.RiskMatrix([]model.RiskRow{
			{ID: "R9", Likelihood: 2, Impact: 3, Status: types.StatusClosed},
		})
		gt.Equal(t, []types.RiskID{"R9"}, m.Cell(2, 3).RiskIDs)
	})

	t.Run("out of range ratings are dropped not clamped", func(t *testing.T) {
		m := metrics.RiskMatrix([]model.RiskRow{
			{ID: "L6", Likelihood: 6, Impact: 3},
			{ID: "I0", Likelihood: 3, Impact: 0},
			{ID: "NEG", Likelihood: -1, Impact: 2},
			{ID: "OK", Likelihood: 3, Impact: 3},
		})
		gt.Equal(t, 25, m.Len())
		gt.Equal(t, 1, countPlaced(m))
		gt.Equal(t, 0, len(m.Cell(5, 3).RiskIDs))
	})

	t.Run("parsed non-numeric ratings are dropped", func(t *testing.T) {
		table := model.NewTable(model.SheetRisks, [][]string{
			{"Risk ID", "Likelihood (1-5)", "Impact (1-5)", "Status"},
			{"R1", "high", "3", "open"},
			{"R2", "2.5", "3", "open"},
			{"R3", "4", "2", "open"},
		})
		m := metrics.RiskMatrix(model.ParseRiskRows(table))
		gt.Equal(t, 1, countPlaced(m))
		gt.Equal(t, []types.RiskID{"R3"}, m.Cell(4, 2).RiskIDs)
	})

	t.Run("several risks share a cell in input order", func(t *testing.T) {
		m := metrics.RiskMatrix([]model.RiskRow{
			{ID: "A", Likelihood: 2, Impact: 2},
			{ID: "B", Likelihood: 2, Impact: 2},
		})
		gt.Equal(t, []types.RiskID{"A", "B"}, m.Cell(2, 2).RiskIDs)
	})

	t.Run("bands follow score thresholds", func(t *testing.T) {
		m := metrics.NewRiskMatrix()
		gt.Equal(t, types.BandHigh, m.Cell(2, 5).Band)
		gt.Equal(t, types.BandMedium, m.Cell(3, 3).Band)
		gt.Equal(t, types.BandMedium, m.Cell(1, 5).Band)
		gt.Equal(t, types.BandLow, m.Cell(2, 2).Band)
		gt.Equal(t, "yellow", m.Cell(1, 4).Color)
	})

	t.Run("display order puts impact 5 first", func(t *testing.T) {
		rows := metrics.NewRiskMatrix().Rows()
		gt.Equal(t, 5, rows[0][0].Impact)
		gt.Equal(t, 1, rows[0][0].Likelihood)
		gt.Equal(t, 1, rows[4][4].Impact)
		gt.Equal(t, 5, rows[4][4].Likelihood)
	})
}

func TestRiskSeverityCounts(t *testing.T) {
	counts := metrics.RiskSeverityCounts([]model.RiskRow{
		{Likelihood: 5, Impact: 2},
		{Likelihood: 3, Impact: 3},
		{Likelihood: 1, Impact: 5},
		{Likelihood: 2, Impact: 2},
		{Likelihood: 0, Impact: 2},
	})
	gt.Equal(t, model.SeverityCounts{High: 1, Medium: 2, Low: 1, Unrated: 1}, counts)
}
