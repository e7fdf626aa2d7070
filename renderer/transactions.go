package renderer

import "finboard"

// TimelineReport is the data behind the transaction history view.
type TimelineReport struct {
	Rows []TimelineRow
}

// TimelineRow is one transaction summary.
type TimelineRow struct {
	Date     string
	Asset    string
	Action   string
	Quantity string
	Price    string
}

// NewTimelineReport builds the history table, date ascending.
func NewTimelineReport(entries []finboard.TimelineEntry) *TimelineReport {
	r := &TimelineReport{Rows: make([]TimelineRow, 0, len(entries))}
	for _, e := range entries {
		r.Rows = append(r.Rows, TimelineRow{
			Date:     e.Date.String(),
			Asset:    e.AssetName,
			Action:   e.Action.String(),
			Quantity: e.Quantity.String(),
			Price:    e.Price.String(),
		})
	}
	return r
}

// Timeline renders the transaction history to markdown.
func Timeline(entries []finboard.TimelineEntry) string {
	return renderTemplate("timeline", "timeline.md", nil, NewTimelineReport(entries))
}
