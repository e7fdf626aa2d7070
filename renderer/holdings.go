package renderer

import (
	"fmt"

	"finboard"
)

// HoldingsReport is the data behind the holdings table.
type HoldingsReport struct {
	Date       finboard.Date
	Currency   string
	TotalValue finboard.Money
	Rows       []HoldingRow
}

// HoldingRow is one line of the holdings table, pre-formatted for display.
type HoldingRow struct {
	Asset    string
	Type     string
	Quantity string
	AvgCost  string
	Price    string
	Value    string
	GainLoss string
	Closed   bool
}

// NewHoldingsReport builds the holdings table from a snapshot. Closed
// positions are listed after open ones.
func NewHoldingsReport(s *finboard.Snapshot) *HoldingsReport {
	r := &HoldingsReport{
		Date:       finboard.Today(),
		Currency:   s.Currency(),
		TotalValue: s.TotalValue(),
	}
	var closed []HoldingRow
	for _, h := range s.Holdings() {
		row := HoldingRow{
			Asset:    h.AssetName,
			Type:     h.AssetType.String(),
			Quantity: h.NetQuantity.String(),
			AvgCost:  h.AverageCost.String(),
			Price:    h.Price.String(),
			Value:    h.Value.String(),
			GainLoss: fmt.Sprintf("%s (%.1f%%)", h.GainLoss.SignedString(), h.GainLossPercent()),
			Closed:   h.NetQuantity.IsZero() || h.NetQuantity.IsNegative(),
		}
		if row.Closed {
			closed = append(closed, row)
		} else {
			r.Rows = append(r.Rows, row)
		}
	}
	r.Rows = append(r.Rows, closed...)
	return r
}

// Holdings renders the holdings table to markdown.
func Holdings(s *finboard.Snapshot) string {
	return renderTemplate("holdings", "holdings.md", nil, NewHoldingsReport(s))
}
