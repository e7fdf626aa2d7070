// Package finboard implements the core of a single-user personal finance
// dashboard: a transaction ledger persisted as one JSON document, and a
// portfolio aggregator deriving holdings, allocation and timeline views
// from it.
//
// The package is deliberately synchronous and single-user. Every view is
// recomputed from the full ledger; there is no incremental state and no
// caching. The Store owns the on-disk document, the aggregator only reads
// ledger snapshots, and the Dashboard type is the boundary any UI layer
// (CLI, web) talks to.
package finboard
