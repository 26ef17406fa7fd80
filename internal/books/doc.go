// Package books maintains the registry of order-book contracts.
//
// The registry syncs the order-book pool list from the indexer on startup,
// reconciles it in the background, and answers denom-pair lookups, maker
// fee queries (cached per contract), and selectable-denom cross-references
// against the asset list.
package books
