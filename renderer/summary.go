package renderer

import (
	"fmt"

	"finboard"
)

// SummaryReport is the data behind the overview headline numbers.
type SummaryReport struct {
	Date         string
	Holdings     int
	TotalValue   string
	TotalCost    string
	GainLoss     string
	SimpleReturn string
	Top1         string
	Top3         string
	Top5         string
	HHI          string
}

// NewSummaryReport builds the overview report from the dashboard summary.
func NewSummaryReport(v finboard.SummaryView) *SummaryReport {
	return &SummaryReport{
		Date:         finboard.Today().String(),
		Holdings:     v.Holdings,
		TotalValue:   v.TotalValue.String(),
		TotalCost:    v.TotalCost.String(),
		GainLoss:     fmt.Sprintf("%s (%.1f%%)", v.GainLoss.SignedString(), v.SimpleReturn),
		SimpleReturn: fmt.Sprintf("%.1f%%", v.SimpleReturn),
		Top1:         fmt.Sprintf("%.1f%%", v.Concentration.Top1),
		Top3:         fmt.Sprintf("%.1f%%", v.Concentration.Top3),
		Top5:         fmt.Sprintf("%.1f%%", v.Concentration.Top5),
		HHI:          fmt.Sprintf("%.0f", v.Concentration.HHI),
	}
}

// Summary renders the overview headline numbers to markdown.
func Summary(v finboard.SummaryView) string {
	return renderTemplate("summary", "summary.md", nil, NewSummaryReport(v))
}
