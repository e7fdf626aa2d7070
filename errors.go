package finboard

import "fmt"

// ValidationError reports a transaction that failed its invariants. The
// transaction is not recorded and the ledger is unchanged.
type ValidationError struct {
	Field  string // offending field, empty when the problem spans fields
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid transaction: " + e.Reason
	}
	return fmt.Sprintf("invalid transaction: %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// CorruptDataError reports a persisted document that exists but cannot be
// read as a ledger. It is never downgraded to an empty ledger: doing so
// would silently lose data on the next save.
type CorruptDataError struct {
	Path string // document path, empty when decoding from a plain reader
	Err  error
}

func (e *CorruptDataError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corrupt ledger document: %v", e.Err)
	}
	return fmt.Sprintf("corrupt ledger document %q: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// StorageWriteError reports a failed persist. The in-memory ledger remains
// valid but must not be assumed durable.
type StorageWriteError struct {
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("could not write ledger document %q: %v", e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// InvalidTransactionError reports an invariant violation discovered during
// aggregation. It indicates a ledger that bypassed Store validation; the
// aggregator fails fast rather than producing wrong numbers.
type InvalidTransactionError struct {
	Index int // position in the ledger
	Err   error
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("ledger transaction #%d: %v", e.Index, e.Err)
}

func (e *InvalidTransactionError) Unwrap() error { return e.Err }
