// Package address validates wallet address formats across the networks
// the asset list can reference: EVM chains, Bitcoin mainnet/testnet, and
// Cosmos bech32 chains.
//
// Validation is purely syntactic (format, checksum, payload length); it
// never proves an address is in use on chain.
package address
