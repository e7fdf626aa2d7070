package finboard

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents the ordered list of all recorded transactions.
//
// In a Ledger transactions are always in chronological order; transactions
// on the same day keep their insertion order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append appends transactions to this ledger and maintains the chronological
// order. It does not validate: the Store and Dashboard entry points do.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable,
// meaning transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Transactions returns an iterator that yields each transaction in
// chronological order. Optional filters restrict the sequence; a transaction
// is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByAsset returns a predicate that filters transactions by asset name.
func ByAsset(name string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AssetName == name }
}

// ByType returns a predicate that filters transactions by asset type.
func ByType(t AssetType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AssetType == t }
}

// AssetNames iterates over the distinct asset names in the ledger, sorted.
func (l *Ledger) AssetNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.AssetName] = struct{}{}
		}
		names := slices.Collect(maps.Keys(visited))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// TimelineEntry is one row of the transaction history view.
type TimelineEntry struct {
	Date      Date
	AssetName string
	Action    Action
	Quantity  Quantity
	Price     Quantity
}

// Timeline returns the transaction list sorted by date ascending, as shown
// in the history view. No aggregation is applied.
func (l *Ledger) Timeline() []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(l.transactions))
	for _, tx := range l.transactions {
		entries = append(entries, TimelineEntry{
			Date:      tx.Date,
			AssetName: tx.AssetName,
			Action:    tx.Action,
			Quantity:  tx.Quantity,
			Price:     tx.Price,
		})
	}
	return entries
}
