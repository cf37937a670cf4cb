package metrics

import (
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// NewRiskMatrix returns an empty 5x5 matrix with the band of every cell filled in
func NewRiskMatrix() model.RiskMatrix {
	var m model.RiskMatrix
	for l := 1; l <= 5; l++ {
		for i := 1; i <= 5; i++ {
			score := l * i
			band := types.BandForScore(score)
			m.Cells[l-1][i-1] = model.RiskMatrixCell{
				Likelihood: l,
				Impact:     i,
				Score:      score,
				Band:       band,
				Color:      band.Color(),
				RiskIDs:    []types.RiskID{},
			}
		}
	}
	return m
}

// RiskMatrix places risks on the likelihood x impact grid.
//
// Status is not looked at: callers pass the risks they want shown (usually OpenRisks).
// Risks whose likelihood or impact is not an integer in 1..5 are left out.
func RiskMatrix(risks []model.RiskRow) model.RiskMatrix {
	m := NewRiskMatrix()
	for _, risk := range risks {
		cell := m.Cell(risk.Likelihood, risk.Impact)
		if cell == nil {
			continue
		}
		cell.RiskIDs = append(cell.RiskIDs, risk.ID)
	}
	return m
}

// RiskSeverityCounts counts the given risks per severity band.
// Like RiskMatrix it does not filter by status.
func RiskSeverityCounts(risks []model.RiskRow) model.SeverityCounts {
	var counts model.SeverityCounts
	for _, risk := range risks {
		switch risk.Band() {
		case types.BandHigh:
			counts.High++
		case types.BandMedium:
			counts.Medium++
		case types.BandLow:
			counts.Low++
		default:
			counts.Unrated++
		}
	}
	return counts
}
