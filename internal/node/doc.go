// Package node provides the direct chain REST client for order-book
// contract queries.
//
// Queries go through the CosmWasm smart-query endpoint
// (/cosmwasm/wasm/v1/contract/{address}/smart/{base64-query}) against a
// full node. Unlike the indexer passthrough, contract responses carry no
// fill progress; it is reconstructed from tick state and unrealized
// cancels, which is why node-backed order fetches issue follow-up tick
// queries.
package node
