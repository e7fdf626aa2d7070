package finboard

// PriceOracle supplies a current per-unit price for an asset. The ledger
// itself has no live price feed, so valuation is an injected capability:
// callers choose between the last recorded transaction price (default), a
// fixed price table, or a live quote adapter.
type PriceOracle interface {
	// Price returns the current per-unit price for the asset, and false if
	// the oracle has no price for it.
	Price(assetName string) (Quantity, bool)
}

// StaticPrices is a fixed price table, mainly for tests and manual marks.
type StaticPrices map[string]Quantity

func (p StaticPrices) Price(assetName string) (Quantity, bool) {
	q, ok := p[assetName]
	return q, ok
}

// lastPrices is the default oracle: the last recorded transaction price per
// asset, a proxy for a market price in the absence of a feed.
type lastPrices map[string]Quantity

func (p lastPrices) Price(assetName string) (Quantity, bool) {
	q, ok := p[assetName]
	return q, ok
}

// LastTransactionPrices builds the default oracle from the ledger: for each
// asset, the price of the most recent transaction (latest date, then latest
// insertion order).
func LastTransactionPrices(ledger *Ledger) PriceOracle {
	prices := make(lastPrices)
	// The ledger iterates in chronological order with a stable tie-break,
	// so the last write wins.
	for _, tx := range ledger.Transactions() {
		prices[tx.AssetName] = tx.Price
	}
	return prices
}
