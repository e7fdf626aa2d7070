package renderer

import (
	"sort"

	"finboard"
)

// AllocationReport is the data behind an allocation breakdown, one row per
// asset or per asset type depending on the grouping.
type AllocationReport struct {
	GroupBy string // "asset" or "type"
	Rows    []AllocationRow
}

// AllocationRow is one slice of the pie.
type AllocationRow struct {
	Key      string
	Fraction string
	Bar      string // coarse text gauge, one block per 2%

	value float64 // raw fraction, kept for ordering
}

func bar(fraction float64) string {
	n := int(fraction*50 + 0.5)
	blocks := make([]rune, n)
	for i := range blocks {
		blocks[i] = '█'
	}
	return string(blocks)
}

// NewAllocationReport builds the per-asset breakdown, largest first.
func NewAllocationReport(s *finboard.Snapshot) *AllocationReport {
	return newAllocation("asset", toRows(s.Allocation()))
}

// NewAllocationByTypeReport builds the per-type breakdown, largest first.
func NewAllocationByTypeReport(s *finboard.Snapshot) *AllocationReport {
	fractions := make(map[string]float64)
	for t, f := range s.AllocationByType() {
		fractions[t.String()] = f
	}
	return newAllocation("type", toRows(fractions))
}

func toRows(fractions map[string]float64) []AllocationRow {
	rows := make([]AllocationRow, 0, len(fractions))
	for key, f := range fractions {
		rows = append(rows, AllocationRow{Key: key, Fraction: percent(f), Bar: bar(f), value: f})
	}
	return rows
}

func newAllocation(groupBy string, rows []AllocationRow) *AllocationReport {
	// Largest slice first, name as tie-break for stable output.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].value != rows[j].value {
			return rows[i].value > rows[j].value
		}
		return rows[i].Key < rows[j].Key
	})
	return &AllocationReport{GroupBy: groupBy, Rows: rows}
}

// Allocation renders an allocation breakdown to markdown.
func Allocation(r *AllocationReport) string {
	return renderTemplate("allocation", "allocation.md", nil, r)
}
