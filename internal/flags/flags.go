// Package flags provides the feature-flag lookup used to switch order
// queries between the indexer passthrough and direct node queries.
package flags

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// IndexerOrders selects the indexer passthrough as the order backend.
// When off, orders are assembled from direct contract queries.
const IndexerOrders = "indexer_orders"

// Provider answers feature-flag lookups. Flags come from configuration;
// a FLAG_<NAME> environment variable overrides either way at startup.
type Provider struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewProvider creates a Provider from configured flag values, applying
// environment overrides.
func NewProvider(configured map[string]bool) *Provider {
	flags := make(map[string]bool, len(configured))
	for name, on := range configured {
		flags[name] = on
	}

	for name := range flags {
		if v, ok := os.LookupEnv(envKey(name)); ok {
			if on, err := strconv.ParseBool(v); err == nil {
				flags[name] = on
			}
		}
	}

	return &Provider{flags: flags}
}

// IsEnabled reports whether a flag is on. Unknown flags are off.
func (p *Provider) IsEnabled(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.flags[name]
}

// Set overrides a flag at runtime.
func (p *Provider) Set(name string, on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flags[name] = on
}

func envKey(name string) string {
	return "FLAG_" + strings.ToUpper(name)
}
