package metrics

import (
	"math"
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// Thresholds on |planned% - actual%| for the progress bar color
const (
	progressGreenMaxDelta  = 15.0
	progressOrangeMaxDelta = 30.0
)

// ElapsedFraction returns how much of the row's span has elapsed at asOf, clamped to [0, 1].
// Rows without both dates or with end <= start yield 0.
func ElapsedFraction(row model.WorkstreamRow, asOf time.Time) float64 {
	if !row.HasValidSpan() {
		return 0
	}
	span := row.EndDate.Sub(*row.StartDate)
	elapsed := model.CalendarTime(asOf).Sub(*row.StartDate)
	return clamp(float64(elapsed)/float64(span), 0, 1)
}

// WorkstreamSummaries aggregates planned and actual progress per workstream.
//
// Negative or unparseable effort counts as 0. Each row contributes elapsedFraction*effort to the planned total and actual*effort to the
// actual total. Both percentages are the weighted sum divided by the total effort days, times 100.
// A workstream with no effort yields 0 for both. Output is ordered by first appearance.
func WorkstreamSummaries(rows []model.WorkstreamRow, asOf time.Time) []model.WorkstreamSummary {
	index := make(map[string]int)
	var summaries []model.WorkstreamSummary

	for _, row := range rows {
		idx, ok := index[row.Workstream]
		if !ok {
			idx = len(summaries)
			index[row.Workstream] = idx
			summaries = append(summaries, model.WorkstreamSummary{Workstream: row.Workstream})
		}

		effort := math.Max(0, finite(row.EffortDays))
		s := &summaries[idx]
		s.TotalEffortDays += effort
		s.PlannedWeighted += ElapsedFraction(row, asOf) * effort
		s.ActualWeighted += clamp(finite(row.ActualComplete), 0, 1) * effort
	}

	for i := range summaries {
		s := &summaries[i]
		s.PlannedPercent = percentOf(s.PlannedWeighted, s.TotalEffortDays)
		s.ActualPercent = percentOf(s.ActualWeighted, s.TotalEffortDays)
		s.Color = ProgressColor(s.PlannedPercent, s.ActualPercent)
	}

	return summaries
}

// ProgressColor classifies the gap between planned and actual percent complete
func ProgressColor(plannedPercent, actualPercent float64) types.ProgressColor {
	delta := math.Abs(plannedPercent - actualPercent)
	switch {
	case delta <= progressGreenMaxDelta:
		return types.ProgressGreen
	case delta <= progressOrangeMaxDelta:
		return types.ProgressOrange
	default:
		return types.ProgressRed
	}
}

// percentOf returns part/total*100 bounded to [0, 100], or 0 when total is not positive
func percentOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return clamp(part/total*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
