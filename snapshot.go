package finboard

import (
	"maps"
	"slices"
	"sort"
)

// Holding is a derived, point-in-time summary of the net position and cost
// basis for one asset. Holdings are never persisted; they are recomputed
// from the full ledger on every view render.
type Holding struct {
	AssetName   string
	AssetType   AssetType
	NetQuantity Quantity // cumulative buys minus cumulative sells
	AverageCost Quantity // weighted average of buy prices, untouched by sells
	Price       Quantity // current per-unit price used for valuation
	CostBasis   Money    // AverageCost × NetQuantity, in the reporting currency
	Value       Money    // Price × NetQuantity, in the reporting currency
	GainLoss    Money    // Value − CostBasis
}

// GainLossPercent returns the unrealized gain/loss relative to cost basis,
// in percent. Zero cost basis yields zero.
func (h Holding) GainLossPercent() float64 {
	if h.CostBasis.IsZero() {
		return 0
	}
	return h.GainLoss.InexactFloat64() / h.CostBasis.InexactFloat64() * 100
}

// Snapshot is the aggregated state of the portfolio derived from a ledger.
// It is a pure function of its inputs: computing it twice from the same
// ledger produces identical output, and it never mutates the ledger.
type Snapshot struct {
	currency string
	holdings map[string]Holding
}

// NewSnapshot folds the full ledger into per-asset holdings. Transactions
// are consumed in date order with insertion order breaking ties. Quantity
// accumulates +quantity on buys and −quantity on sells; the running average
// cost is recomputed on buys only. Assets whose net quantity reaches zero
// are retained so closed positions still appear in the holdings view.
//
// The fold assumes Store-validated input and fails fast with an
// *InvalidTransactionError if a record violates the invariants.
func NewSnapshot(ledger *Ledger, oracle PriceOracle, currency string) (*Snapshot, error) {
	type position struct {
		assetType AssetType
		net       Quantity
		avgCost   Quantity
	}
	positions := make(map[string]*position)

	for i, tx := range ledger.Transactions() {
		if err := tx.Validate(); err != nil {
			return nil, &InvalidTransactionError{Index: i, Err: err}
		}
		pos, ok := positions[tx.AssetName]
		if !ok {
			pos = &position{}
			positions[tx.AssetName] = pos
		}
		pos.assetType = tx.AssetType
		switch tx.Action {
		case Buy:
			// new_avg = (old_avg × old_qty + price × qty) / (old_qty + qty).
			// Only meaningful while the running quantity is non-negative; a
			// negative position bought back simply restarts the average.
			oldCost := pos.avgCost.Mul(pos.net)
			newQty := pos.net.Add(tx.Quantity)
			if pos.net.IsNegative() || pos.net.IsZero() {
				pos.avgCost = tx.Price
			} else if !newQty.IsZero() {
				pos.avgCost = oldCost.Add(tx.Price.Mul(tx.Quantity)).Div(newQty)
			}
			pos.net = newQty
		case Sell:
			// Sells reduce quantity but never move the average cost.
			pos.net = pos.net.Sub(tx.Quantity)
		}
	}

	snapshot := &Snapshot{currency: currency, holdings: make(map[string]Holding, len(positions))}
	for name, pos := range positions {
		price, ok := oracle.Price(name)
		if !ok {
			// No price known anywhere: value at cost, like the original.
			price = pos.avgCost
		}
		costBasis := M(pos.avgCost.Mul(pos.net).value, currency)
		value := M(price.Mul(pos.net).value, currency)
		snapshot.holdings[name] = Holding{
			AssetName:   name,
			AssetType:   pos.assetType,
			NetQuantity: pos.net,
			AverageCost: pos.avgCost,
			Price:       price,
			CostBasis:   costBasis,
			Value:       value,
			GainLoss:    value.Sub(costBasis),
		}
	}
	return snapshot, nil
}

// Currency returns the reporting currency of the snapshot.
func (s *Snapshot) Currency() string { return s.currency }

// Holding returns the holding for one asset.
func (s *Snapshot) Holding(assetName string) (Holding, bool) {
	h, ok := s.holdings[assetName]
	return h, ok
}

// Holdings returns all holdings sorted by asset name, closed positions
// included.
func (s *Snapshot) Holdings() []Holding {
	names := slices.Collect(maps.Keys(s.holdings))
	slices.Sort(names)
	holdings := make([]Holding, 0, len(names))
	for _, name := range names {
		holdings = append(holdings, s.holdings[name])
	}
	return holdings
}

// open yields the holdings that contribute to valuation: net quantity
// strictly positive.
func (s *Snapshot) open(yield func(Holding) bool) {
	for _, h := range s.holdings {
		if !h.NetQuantity.IsPositive() {
			continue
		}
		if !yield(h) {
			return
		}
	}
}

// TotalValue returns the sum of current value across holdings with a
// positive net quantity.
func (s *Snapshot) TotalValue() Money {
	total := M(0, s.currency)
	for h := range s.open {
		total = total.Add(h.Value)
	}
	return total
}

// TotalCost returns the sum of cost basis across holdings with a positive
// net quantity.
func (s *Snapshot) TotalCost() Money {
	total := M(0, s.currency)
	for h := range s.open {
		total = total.Add(h.CostBasis)
	}
	return total
}

// SimpleReturn returns (TotalValue − TotalCost) / TotalCost in percent, or
// zero when nothing is invested.
func (s *Snapshot) SimpleReturn() float64 {
	cost := s.TotalCost()
	if cost.IsZero() {
		return 0
	}
	return s.TotalValue().Sub(cost).InexactFloat64() / cost.InexactFloat64() * 100
}

// Allocation returns each open asset's fraction of total portfolio value.
// When total value is zero (empty ledger or fully liquidated portfolio) it
// returns an empty map rather than dividing by zero.
func (s *Snapshot) Allocation() map[string]float64 {
	fractions := make(map[string]float64)
	total := s.TotalValue()
	if total.IsZero() {
		return fractions
	}
	for h := range s.open {
		fractions[h.AssetName] = h.Value.InexactFloat64() / total.InexactFloat64()
	}
	return fractions
}

// AllocationByType returns each asset type's fraction of total portfolio
// value, with the same zero-total behavior as Allocation.
func (s *Snapshot) AllocationByType() map[AssetType]float64 {
	fractions := make(map[AssetType]float64)
	total := s.TotalValue()
	if total.IsZero() {
		return fractions
	}
	for h := range s.open {
		fractions[h.AssetType] += h.Value.InexactFloat64() / total.InexactFloat64()
	}
	return fractions
}

// Concentration summarizes how concentrated the portfolio is: the value
// share of the largest 1, 3 and 5 positions, and the Herfindahl-Hirschman
// index (sum of squared percentage shares, 0..10000).
type Concentration struct {
	Top1 float64 // percent of total value in the single largest position
	Top3 float64
	Top5 float64
	HHI  float64
}

// Concentration computes concentration metrics over open holdings. A zero
// total yields the zero value.
func (s *Snapshot) Concentration() Concentration {
	total := s.TotalValue().InexactFloat64()
	if total == 0 {
		return Concentration{}
	}
	var values []float64
	for h := range s.open {
		values = append(values, h.Value.InexactFloat64())
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	var c Concentration
	for i, v := range values {
		share := v / total * 100
		if i < 1 {
			c.Top1 += share
		}
		if i < 3 {
			c.Top3 += share
		}
		if i < 5 {
			c.Top5 += share
		}
		c.HHI += share * share
	}
	return c
}
