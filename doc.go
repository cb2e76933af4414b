// Package tourledger implements the multi-currency ledger and
// booking-reconciliation engine of a tour-operator operations dashboard. It
// is designed to be local-first and auditable: the ledger is an append-only
// JSONL file, and every figure is recomputed from that record on each query.
//
// The core functionalities include:
//   - Ledger Management: Recording cash movements (in, out, transfers and
//     currency exchanges) as an immutable, chronological record.
//   - Balance Engine: Folding the transaction set into per-holder,
//     per-currency confirmed balances and pending totals.
//   - Booking Rollup: Aggregating payments, expenses and the rule-based
//     meals charge into a per-booking financial row with a payment status.
//   - Derived Transactions: Materializing the computed meals expense as a
//     real ledger transaction, exactly once per booking.
//   - Loose-Transaction Matching: Proposing a booking for payments recorded
//     without one, with a confidence score.
//   - Alerts: Scanning holders and transactions for anomalies such as
//     negative balances or stale pending movements.
//
// This package serves as the foundational logic for the `tlg` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tourledger
