// Package assets provides the asset-list lookup used to cross-reference
// order-book denoms with display metadata.
//
// Production code uses a Registry loaded from the asset-list JSON file.
// Tests inject Map, a plain map-backed resolver.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

// Resolver maps a chain denom to its asset metadata. The second return
// is false when the denom is not in the asset list.
type Resolver interface {
	Lookup(denom string) (model.Asset, bool)
}

// assetList mirrors the asset-list file layout.
type assetList struct {
	Assets []assetEntry `json:"assets"`
}

type assetEntry struct {
	Denom    string `json:"denom"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	PriceUSD string `json:"price_usd"`
}

// Registry is a file-backed Resolver.
type Registry struct {
	mu     sync.RWMutex
	byDenom map[string]model.Asset
}

// LoadRegistry reads an asset-list JSON file into a Registry.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset list: %w", err)
	}

	var list assetList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse asset list: %w", err)
	}

	r := &Registry{byDenom: make(map[string]model.Asset, len(list.Assets))}
	for _, a := range list.Assets {
		r.byDenom[a.Denom] = model.Asset{
			Denom:    a.Denom,
			Symbol:   a.Symbol,
			Decimals: a.Decimals,
			PriceUSD: a.PriceUSD,
		}
	}

	return r, nil
}

// Lookup returns the asset metadata for a denom.
func (r *Registry) Lookup(denom string) (model.Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byDenom[denom]
	return a, ok
}

// Len returns the number of known assets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byDenom)
}

// Update replaces an asset's metadata, e.g. with a fresh USD price.
func (r *Registry) Update(a model.Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byDenom[a.Denom] = a
}

// Map is a map-backed Resolver for tests.
type Map map[string]model.Asset

// Lookup returns the asset metadata for a denom.
func (m Map) Lookup(denom string) (model.Asset, bool) {
	a, ok := m[denom]
	return a, ok
}
