package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

const testAssetList = `{
  "assets": [
    {"denom": "uosmo", "symbol": "OSMO", "decimals": 6, "price_usd": "0.85"},
    {"denom": "uusdc", "symbol": "USDC", "decimals": 6, "price_usd": "1.00"},
    {"denom": "uatom", "symbol": "ATOM", "decimals": 6}
  ]
}`

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assetlist.json")
	if err := os.WriteFile(path, []byte(testAssetList), 0o600); err != nil {
		t.Fatalf("write asset list: %v", err)
	}

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}

	t.Run("known denom", func(t *testing.T) {
		a, ok := r.Lookup("uosmo")
		if !ok {
			t.Fatal("uosmo not found")
		}
		if a.Symbol != "OSMO" || a.Decimals != 6 || a.PriceUSD != "0.85" {
			t.Errorf("unexpected asset: %+v", a)
		}
	})

	t.Run("missing price is empty", func(t *testing.T) {
		a, ok := r.Lookup("uatom")
		if !ok {
			t.Fatal("uatom not found")
		}
		if a.PriceUSD != "" {
			t.Errorf("PriceUSD = %q, want empty", a.PriceUSD)
		}
	})

	t.Run("unknown denom", func(t *testing.T) {
		if _, ok := r.Lookup("ufoo"); ok {
			t.Error("unexpected hit for unknown denom")
		}
	})

	t.Run("update replaces metadata", func(t *testing.T) {
		r.Update(model.Asset{Denom: "uatom", Symbol: "ATOM", Decimals: 6, PriceUSD: "9.50"})
		a, _ := r.Lookup("uatom")
		if a.PriceUSD != "9.50" {
			t.Errorf("PriceUSD = %q after update, want 9.50", a.PriceUSD)
		}
	})
}

func TestLoadRegistryErrors(t *testing.T) {
	if _, err := LoadRegistry("/nonexistent/assetlist.json"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("not json"), 0o600)
	if _, err := LoadRegistry(path); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestMapResolver(t *testing.T) {
	m := Map{"uosmo": {Denom: "uosmo", Symbol: "OSMO", Decimals: 6}}

	if a, ok := m.Lookup("uosmo"); !ok || a.Symbol != "OSMO" {
		t.Errorf("Lookup(uosmo) = %+v, %v", a, ok)
	}
	if _, ok := m.Lookup("uusdc"); ok {
		t.Error("unexpected hit")
	}
}
