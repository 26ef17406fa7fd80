// Package model defines shared data types used across the order-book data layer.
//
// Conventions:
//   - Amounts: int64 micro units of the order's denom (1e6 = 1 whole unit)
//   - Prices and fee rates: decimal strings as returned by the contract
//   - Timestamps: int64 microseconds since Unix epoch
package model
