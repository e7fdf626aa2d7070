package finboard

import "strings"

// DefaultCurrency is the reporting currency used when none is configured.
// The original dashboard displayed everything in Australian dollars.
const DefaultCurrency = "AUD"

// TransactionForm carries the raw form fields a UI posts when recording a
// transaction. All fields are strings; parsing and validation happen in
// SubmitTransaction.
type TransactionForm struct {
	AssetName string
	AssetType string
	Action    string
	Quantity  string
	Price     string
	Date      string // ISO-8601; empty means today
}

// Dashboard is the presentation boundary: it owns an explicit ledger (no
// module-level session state), the store that persists it, the pricing
// oracle, and the reporting policy. Any UI layer renders exclusively from
// its view methods.
type Dashboard struct {
	store  *Store
	ledger *Ledger
	oracle PriceOracle
	// Currency is the reporting currency for all derived monetary values.
	Currency string
	// AllowNegativePositions keeps the historical behavior of accepting
	// sells that exceed the current net position. When false, such sells
	// are rejected as validation errors.
	AllowNegativePositions bool
}

// NewDashboard loads the ledger from the store and returns a ready
// dashboard. The oracle may be nil, in which case the last recorded
// transaction price per asset is used for valuation.
func NewDashboard(store *Store, oracle PriceOracle, currency string) (*Dashboard, error) {
	ledger, err := store.Load()
	if err != nil {
		return nil, err
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Dashboard{
		store:                  store,
		ledger:                 ledger,
		oracle:                 oracle,
		Currency:               currency,
		AllowNegativePositions: true,
	}, nil
}

// Ledger exposes the in-memory ledger for read-only consumers.
func (d *Dashboard) Ledger() *Ledger { return d.ledger }

// Refresh reloads the ledger from the store, discarding the in-memory copy.
func (d *Dashboard) Refresh() error {
	ledger, err := d.store.Load()
	if err != nil {
		return err
	}
	d.ledger = ledger
	return nil
}

// parseForm turns raw form fields into a Transaction, reporting the first
// unparseable field.
func parseForm(form TransactionForm) (Transaction, error) {
	var tx Transaction
	tx.AssetName = strings.TrimSpace(form.AssetName)

	assetType, err := ParseAssetType(strings.TrimSpace(form.AssetType))
	if err != nil {
		return tx, invalidf("asset_type", "%v", err)
	}
	tx.AssetType = assetType

	action, err := ParseAction(strings.TrimSpace(form.Action))
	if err != nil {
		return tx, invalidf("action", "%v", err)
	}
	tx.Action = action

	quantity, err := ParseQuantity(strings.TrimSpace(form.Quantity))
	if err != nil {
		return tx, invalidf("quantity", "not a number: %q", form.Quantity)
	}
	tx.Quantity = quantity

	price, err := ParseQuantity(strings.TrimSpace(form.Price))
	if err != nil {
		return tx, invalidf("price_per_unit", "not a number: %q", form.Price)
	}
	tx.Price = price

	if strings.TrimSpace(form.Date) == "" {
		tx.Date = Today()
	} else {
		day, err := ParseDate(form.Date)
		if err != nil {
			return tx, invalidf("date", "%v", err)
		}
		tx.Date = day
	}
	return tx, nil
}

// SubmitTransaction parses the form, validates the transaction, applies the
// negative-position policy, appends it to the ledger and persists the full
// document. On error the ledger is unchanged and nothing was written.
func (d *Dashboard) SubmitTransaction(form TransactionForm) (Transaction, error) {
	tx, err := parseForm(form)
	if err != nil {
		return Transaction{}, err
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}

	if tx.Action == Sell && !d.AllowNegativePositions {
		held := d.position(tx.AssetName, tx.Date)
		if tx.Quantity.GreaterThan(held) {
			return Transaction{}, invalidf("quantity",
				"cannot sell %s %s, only %s held on %s", tx.Quantity, tx.AssetName, held, tx.Date)
		}
	}

	if err := d.store.Append(d.ledger, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// position computes the net quantity held for an asset up to and including
// a date.
func (d *Dashboard) position(assetName string, on Date) Quantity {
	net := Q(0)
	for _, tx := range d.ledger.Transactions(ByAsset(assetName)) {
		if tx.Date.After(on) {
			break // the ledger is sorted by date
		}
		switch tx.Action {
		case Buy:
			net = net.Add(tx.Quantity)
		case Sell:
			net = net.Sub(tx.Quantity)
		}
	}
	return net
}

// snapshot computes the aggregate state with the configured oracle.
func (d *Dashboard) snapshot() (*Snapshot, error) {
	oracle := d.oracle
	if oracle == nil {
		oracle = LastTransactionPrices(d.ledger)
	}
	return NewSnapshot(d.ledger, oracle, d.Currency)
}

// HoldingsView returns all holdings sorted by asset name, for tables and
// bar charts. Closed positions are retained with a zero net quantity.
func (d *Dashboard) HoldingsView() ([]Holding, error) {
	s, err := d.snapshot()
	if err != nil {
		return nil, err
	}
	return s.Holdings(), nil
}

// AllocationView returns each open asset's fraction of total value, for the
// per-asset pie chart.
func (d *Dashboard) AllocationView() (map[string]float64, error) {
	s, err := d.snapshot()
	if err != nil {
		return nil, err
	}
	return s.Allocation(), nil
}

// AllocationByTypeView returns each asset type's fraction of total value,
// for the per-type pie chart.
func (d *Dashboard) AllocationByTypeView() (map[AssetType]float64, error) {
	s, err := d.snapshot()
	if err != nil {
		return nil, err
	}
	return s.AllocationByType(), nil
}

// TimelineView returns the transaction history, date ascending.
func (d *Dashboard) TimelineView() []TimelineEntry {
	return d.ledger.Timeline()
}

// SummaryView aggregates the headline numbers of the overview page.
type SummaryView struct {
	TotalValue    Money
	TotalCost     Money
	GainLoss      Money
	SimpleReturn  float64 // percent
	Concentration Concentration
	Holdings      int // open positions
}

// Summary computes the overview headline numbers.
func (d *Dashboard) Summary() (SummaryView, error) {
	s, err := d.snapshot()
	if err != nil {
		return SummaryView{}, err
	}
	value, cost := s.TotalValue(), s.TotalCost()
	open := 0
	for range s.open {
		open++
	}
	return SummaryView{
		TotalValue:    value,
		TotalCost:     cost,
		GainLoss:      value.Sub(cost),
		SimpleReturn:  s.SimpleReturn(),
		Concentration: s.Concentration(),
		Holdings:      open,
	}, nil
}

// Snapshot exposes the full aggregate for renderers that need more than one
// view at a time.
func (d *Dashboard) Snapshot() (*Snapshot, error) { return d.snapshot() }
