package finboard

import (
	"encoding/json"
	"fmt"
)

// AssetType classifies an asset for the allocation-by-type view.
type AssetType string

const (
	Stock      AssetType = "stock"
	Crypto     AssetType = "crypto"
	Cash       AssetType = "cash"
	Bond       AssetType = "bond"
	RealEstate AssetType = "real_estate"
	Other      AssetType = "other"
)

// AssetTypes lists all known asset types in display order.
var AssetTypes = []AssetType{Stock, Crypto, Cash, Bond, RealEstate, Other}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(s)
	for _, known := range AssetTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown asset type: %q", s)
}

func (t AssetType) String() string { return string(t) }

// UnmarshalJSON rejects unknown asset types, so a corrupt document is caught
// at load time rather than surfacing as an empty bucket in the views.
func (t *AssetType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAssetType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Action identifies the direction of a transaction.
type Action string

const (
	Buy  Action = "buy"
	Sell Action = "sell"
)

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

func (a Action) String() string { return string(a) }

// UnmarshalJSON rejects unknown actions.
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
