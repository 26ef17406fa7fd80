// Package indexer provides the HTTP client for the sidecar indexer's
// order-book passthrough endpoints.
//
// The indexer serves pre-joined order-book and order data ahead of the
// chain itself; responses carry cursor-paginated records already enriched
// with fill progress. When the indexer lags or the indexer_orders feature
// flag is off, the same data is assembled from direct contract queries by
// the node package instead.
package indexer
