// Package orders assembles a user's limit orders from whichever backend
// the indexer_orders feature flag selects.
//
// With the flag on, orders come pre-enriched from the indexer passthrough.
// With it off, the service fans out orders_by_owner queries across every
// known order-book contract, reconstructs fill progress from tick state
// and unrealized cancels, and normalizes to the same order shape. Order
// history is indexer-only either way: contracts prune settled orders, so
// the chain cannot answer historical queries.
//
// The package also builds and submits batch_claim executions for filled
// orders with unclaimed proceeds.
package orders
