package finboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// documentVersion is the schema version written to new documents. The
// original tracker wrote a bare array with no version field; that legacy
// shape is still read transparently.
const documentVersion = 1

// document is the persisted shape of a ledger.
type document struct {
	Version      int           `json:"version"`
	Transactions []Transaction `json:"transactions"`
}

// DecodeLedger reads a ledger document from r. It accepts both the
// versioned envelope and the legacy unversioned array. Any structural
// problem (malformed JSON, unknown version, missing record field, violated
// record invariant) fails the whole decode with a *CorruptDataError: there
// is no per-record recovery.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &CorruptDataError{Err: err}
	}

	var records []Transaction
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		// An empty file is an empty ledger, not corruption.
	case trimmed[0] == '[':
		// Legacy shape: a bare array of records.
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, &CorruptDataError{Err: err}
		}
	case trimmed[0] == '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &CorruptDataError{Err: err}
		}
		if doc.Version != documentVersion {
			return nil, &CorruptDataError{Err: fmt.Errorf("unsupported document version %d", doc.Version)}
		}
		records = doc.Transactions
	default:
		return nil, &CorruptDataError{Err: fmt.Errorf("document is neither an object nor an array")}
	}

	ledger := NewLedger()
	for i, tx := range records {
		if err := tx.Validate(); err != nil {
			return nil, &CorruptDataError{Err: fmt.Errorf("record #%d: %w", i, err)}
		}
		ledger.transactions = append(ledger.transactions, tx)
	}
	ledger.stableSort()
	return ledger, nil
}

// EncodeLedger writes the ledger to w in the canonical versioned shape,
// transactions in chronological order, record keys in a fixed order and
// decimals unquoted.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()
	doc := document{
		Version:      documentVersion,
		Transactions: ledger.transactions,
	}
	if doc.Transactions == nil {
		doc.Transactions = []Transaction{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger document: %w", err)
	}
	return nil
}
