package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Padding(0, 1)

	nameColumn    = lipgloss.NewStyle().Width(24)
	percentColumn = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
)

var colorHex = map[string]string{
	"green":     "#4CAF50",
	"orange":    "#F7B801",
	"red":       "#FF6B6B",
	"yellow":    "#F5E663",
	"lightgray": "#999999",
	"danger":    "#FF6B6B",
	"warning":   "#F7B801",
	"secondary": "#999999",
}

func colored(color, text string) string {
	hex, ok := colorHex[color]
	if !ok {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
}

// Report renders dashboard views for a terminal
type Report struct {
	Dashboard *model.Dashboard
	Risks     *model.RiskView
}

// Render writes the report to w
func (r *Report) Render(w io.Writer) error {
	if r.Dashboard == nil {
		return goerr.New("dashboard is required")
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("Project dashboard as of %s", r.Dashboard.AsOf.Format("2006-01-02"))),
		mutedStyle.Render(fmt.Sprintf("snapshot %s", r.Dashboard.SnapshotID)),
		panelStyle.Render(renderKPIs(r.Dashboard)),
		renderWorkstreams(r.Dashboard.Workstreams),
		ProgressLegend(),
	}
	if r.Risks != nil {
		sections = append(sections, renderRiskMatrix(&r.Risks.Matrix))
	}
	sections = append(sections, renderMembers(r.Dashboard.ActiveMembers))

	if _, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...)); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}

func renderKPIs(d *model.Dashboard) string {
	period := fmt.Sprintf("%s - %s", d.Period.Start.Format("Jan 2"), d.Period.End.Format("Jan 2"))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		fmt.Sprintf("Tasks (%s): %d   ", period, d.KPI.TasksInPeriod),
		fmt.Sprintf("Open issues: %d   ", d.KPI.OpenIssues),
		"Open risks: "+colored(d.KPI.RiskSeverityColor.String(), fmt.Sprintf("%d", d.KPI.OpenRisks)),
	)
}

func renderWorkstreams(summaries []model.WorkstreamSummary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(
		nameColumn.Render("Workstream") + percentColumn.Render("Planned") + percentColumn.Render("Actual"),
	))
	b.WriteString("\n")

	if len(summaries) == 0 {
		b.WriteString(mutedStyle.Render("no workstreams"))
		return b.String()
	}

	for _, s := range summaries {
		b.WriteString(nameColumn.Render(s.Workstream))
		b.WriteString(percentColumn.Render(fmt.Sprintf("%.1f%%", s.PlannedPercent)))
		b.WriteString(percentColumn.Render(colored(s.Color.String(), fmt.Sprintf("%.1f%%", s.ActualPercent))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderRiskMatrix(m *model.RiskMatrix) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Risk matrix (impact ↓, likelihood →)"))
	b.WriteString("\n")

	for _, row := range m.Rows() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d ", row[0].Impact)))
		for _, cell := range row {
			label := "  .  "
			if n := len(cell.RiskIDs); n > 0 {
				label = fmt.Sprintf("%3d  ", n)
			}
			b.WriteString(colored(cell.Color, label))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMembers(members []model.TeamMember) string {
	if len(members) == 0 {
		return headerStyle.Render("Active members: ") + mutedStyle.Render("none")
	}

	names := make([]string, len(members))
	for i, m := range members {
		if m.Role != "" {
			names[i] = fmt.Sprintf("%s (%s)", m.Name, m.Role)
		} else {
			names[i] = m.Name
		}
	}
	return headerStyle.Render("Active members: ") + strings.Join(names, ", ")
}

// ProgressLegend describes the colors used for actual progress
func ProgressLegend() string {
	return strings.Join([]string{
		colored(types.ProgressGreen.String(), "on track (<=15pt)"),
		colored(types.ProgressOrange.String(), "behind (<=30pt)"),
		colored(types.ProgressRed.String(), "at risk"),
	}, "  ")
}
