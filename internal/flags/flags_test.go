package flags

import "testing"

func TestProvider(t *testing.T) {
	t.Run("configured values", func(t *testing.T) {
		p := NewProvider(map[string]bool{IndexerOrders: true, "other": false})

		if !p.IsEnabled(IndexerOrders) {
			t.Error("indexer_orders should be on")
		}
		if p.IsEnabled("other") {
			t.Error("other should be off")
		}
	})

	t.Run("unknown flags are off", func(t *testing.T) {
		p := NewProvider(nil)
		if p.IsEnabled("missing") {
			t.Error("unknown flag should be off")
		}
	})

	t.Run("env override wins", func(t *testing.T) {
		t.Setenv("FLAG_INDEXER_ORDERS", "false")

		p := NewProvider(map[string]bool{IndexerOrders: true})
		if p.IsEnabled(IndexerOrders) {
			t.Error("env override should turn flag off")
		}
	})

	t.Run("invalid env value ignored", func(t *testing.T) {
		t.Setenv("FLAG_INDEXER_ORDERS", "maybe")

		p := NewProvider(map[string]bool{IndexerOrders: true})
		if !p.IsEnabled(IndexerOrders) {
			t.Error("invalid override should leave configured value")
		}
	})

	t.Run("runtime set", func(t *testing.T) {
		p := NewProvider(map[string]bool{IndexerOrders: false})
		p.Set(IndexerOrders, true)
		if !p.IsEnabled(IndexerOrders) {
			t.Error("Set should flip the flag")
		}
	})
}
