// Package writer implements the batch writer for order snapshots.
//
// The writer consumes snapshots emitted by the poller and inserts one row
// per observed order into the order_observations table. Rows are
// append-only (never update, only insert) so the table records how each
// order's fill and claim progress evolved over time.
package writer
