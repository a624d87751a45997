// Package pennybook provides the state and derivation engine for a
// client-resident personal expense ledger. It is designed to be local-first
// and auditable: the user keeps full control over a single durable data
// file, and every derived view is recomputed from the canonical record.
//
// The core functionalities include:
//   - Transaction Store: a single owned aggregate holding the canonical
//     transaction list and user settings, exposing mutation operations and
//     synchronous change notification to subscribers.
//   - Derived Views: a sortable, searchable projection of the transaction
//     list, with a per-column three-state sort cycle and a regular
//     expression search across all fields.
//   - Statistics: pure aggregation functions (totals, last-7-days buckets,
//     top category, budget threshold classification).
//   - Multi-Currency: a rate table with conversion between currency codes
//     and locale-aware display formatting.
//   - Import/Export: validated JSON import with identifier deduplication,
//     plus JSON and CSV export of the full ledger.
//   - Data Persistence: two independent slots (transactions, settings) in
//     durable local key-value storage, backed by bbolt.
//
// This package serves as the foundational logic for the `pny` command-line
// tool; any presentation layer is expected to drive it strictly through the
// store's operations and subscription callbacks.
package pennybook
