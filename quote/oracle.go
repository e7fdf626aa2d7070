package quote

import (
	"log"

	"finboard"
)

// Oracle is a finboard.PriceOracle backed by the quote client. Only assets
// explicitly marked quotable are fetched (the dashboard marks stocks and
// crypto); everything else, and every failed fetch, is answered by the
// fallback oracle. Fetched prices are memoized for the lifetime of the
// oracle, so one view render fetches each symbol at most once.
type Oracle struct {
	client   *Client
	fallback finboard.PriceOracle
	symbols  map[string]string // asset name -> ticker symbol
	cache    map[string]finboard.Quantity
}

// NewOracle creates an oracle delegating unknown assets and fetch failures
// to fallback.
func NewOracle(client *Client, fallback finboard.PriceOracle) *Oracle {
	return &Oracle{
		client:   client,
		fallback: fallback,
		symbols:  make(map[string]string),
		cache:    make(map[string]finboard.Quantity),
	}
}

// Mark declares an asset quotable under the given ticker symbol. An empty
// symbol uses the asset name itself.
func (o *Oracle) Mark(assetName, symbol string) {
	if symbol == "" {
		symbol = assetName
	}
	o.symbols[assetName] = symbol
}

// MarkQuotable marks every stock and crypto holding of the ledger, using
// asset names as symbols, mirroring the original tracker which only looked
// up live prices for those two types.
func (o *Oracle) MarkQuotable(ledger *finboard.Ledger) {
	for _, tx := range ledger.Transactions(finboard.ByType(finboard.Stock), finboard.ByType(finboard.Crypto)) {
		if _, ok := o.symbols[tx.AssetName]; !ok {
			o.Mark(tx.AssetName, "")
		}
	}
}

// Price implements finboard.PriceOracle.
func (o *Oracle) Price(assetName string) (finboard.Quantity, bool) {
	if q, ok := o.cache[assetName]; ok {
		return q, true
	}
	symbol, quotable := o.symbols[assetName]
	if !quotable {
		return o.fallback.Price(assetName)
	}
	val, err := o.client.Latest(symbol)
	if err != nil {
		log.Printf("no live quote for %q, falling back to ledger price: %v", assetName, err)
		return o.fallback.Price(assetName)
	}
	q := finboard.Q(val)
	o.cache[assetName] = q
	return q, true
}

var _ finboard.PriceOracle = (*Oracle)(nil)
