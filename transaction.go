package finboard

import (
	"encoding/json"
	"fmt"
)

// Transaction is a single immutable ledger record: one buy or sell of a
// quantity of an asset at a per-unit price on a calendar date.
type Transaction struct {
	AssetName string    `json:"asset_name"`
	AssetType AssetType `json:"asset_type"`
	Action    Action    `json:"action"`
	Quantity  Quantity  `json:"quantity"`
	Price     Quantity  `json:"price_per_unit"`
	Date      Date      `json:"date"`
}

// NewBuy creates a validated-shape buy transaction.
func NewBuy(day Date, name string, typ AssetType, quantity, price Quantity) Transaction {
	return Transaction{AssetName: name, AssetType: typ, Action: Buy, Quantity: quantity, Price: price, Date: day}
}

// NewSell creates a validated-shape sell transaction.
func NewSell(day Date, name string, typ AssetType, quantity, price Quantity) Transaction {
	return Transaction{AssetName: name, AssetType: typ, Action: Sell, Quantity: quantity, Price: price, Date: day}
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.Date }

// Value returns quantity × price per unit, the cash amount the transaction moved.
func (t Transaction) Value() Quantity { return t.Quantity.Mul(t.Price) }

// Equal reports whether two transactions are field-for-field identical.
func (t Transaction) Equal(o Transaction) bool {
	return t.AssetName == o.AssetName &&
		t.AssetType == o.AssetType &&
		t.Action == o.Action &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Date == o.Date
}

// Validate checks the transaction invariants: non-empty asset name, known
// asset type and action, quantity > 0, price ≥ 0, non-zero date.
func (t Transaction) Validate() error {
	if t.AssetName == "" {
		return invalidf("asset_name", "must not be empty")
	}
	if _, err := ParseAssetType(string(t.AssetType)); err != nil {
		return invalidf("asset_type", "%v", err)
	}
	if _, err := ParseAction(string(t.Action)); err != nil {
		return invalidf("action", "%v", err)
	}
	if !t.Quantity.IsPositive() {
		return invalidf("quantity", "must be positive, got %s", t.Quantity)
	}
	if t.Price.IsNegative() {
		return invalidf("price_per_unit", "must not be negative, got %s", t.Price)
	}
	if t.Date.IsZero() {
		return invalidf("date", "is missing")
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", t.Date, t.Action, t.Quantity, t.AssetName, t.Price)
}

// MarshalJSON writes the record with a canonical field order, so rewritten
// documents diff cleanly.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("asset_name", t.AssetName)
	w.Append("asset_type", t.AssetType)
	w.Append("action", t.Action)
	w.Append("quantity", t.Quantity)
	w.Append("price_per_unit", t.Price)
	w.Append("date", t.Date)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a record and rejects ones with missing required
// fields, so a structurally broken document fails the whole load.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		AssetName *string    `json:"asset_name"`
		AssetType *AssetType `json:"asset_type"`
		Action    *Action    `json:"action"`
		Quantity  *Quantity  `json:"quantity"`
		Price     *Quantity  `json:"price_per_unit"`
		Date      *Date      `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	missing := func(field string) error {
		return fmt.Errorf("record is missing required field %q", field)
	}
	switch {
	case temp.AssetName == nil:
		return missing("asset_name")
	case temp.AssetType == nil:
		return missing("asset_type")
	case temp.Action == nil:
		return missing("action")
	case temp.Quantity == nil:
		return missing("quantity")
	case temp.Price == nil:
		return missing("price_per_unit")
	case temp.Date == nil:
		return missing("date")
	}
	t.AssetName = *temp.AssetName
	t.AssetType = *temp.AssetType
	t.Action = *temp.Action
	t.Quantity = *temp.Quantity
	t.Price = *temp.Price
	t.Date = *temp.Date
	return nil
}
