package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

type fakeOrders struct {
	mu     sync.Mutex
	orders map[string][]model.Order
	errFor map[string]error
	calls  int
}

func (f *fakeOrders) ActiveOrders(ctx context.Context, address string) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.errFor[address]; err != nil {
		return nil, err
	}
	return f.orders[address], nil
}

func (f *fakeOrders) Backend() string { return "indexer" }

type collector struct {
	mu        sync.Mutex
	snapshots []model.OrderSnapshot
}

func (c *collector) HandleSnapshot(s model.OrderSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots = append(c.snapshots, s)
	return nil
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snapshots)
}

func TestPollerFetchesOnStart(t *testing.T) {
	src := &fakeOrders{orders: map[string][]model.Order{
		"osmo1a": {{OrderID: 1}},
		"osmo1b": {{OrderID: 2}},
	}}
	sink := &collector{}

	cfg := DefaultConfig()
	cfg.Interval = time.Hour // only the immediate poll
	cfg.Concurrency = 2

	p := New(cfg, src, AddressList{"osmo1a", "osmo1b"}, sink, nil)
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// The initial poll runs asynchronously; give it a moment.
	deadline := time.After(2 * time.Second)
	for sink.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("snapshots = %d, want 2", sink.count())
		case <-time.After(10 * time.Millisecond):
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for _, s := range sink.snapshots {
		if s.Source != "indexer" {
			t.Errorf("Source = %q, want indexer", s.Source)
		}
		if s.ObservedAt == 0 {
			t.Error("ObservedAt not set")
		}
		if len(s.Orders) != 1 {
			t.Errorf("orders for %s = %d, want 1", s.Owner, len(s.Orders))
		}
	}
}

func TestPollerContinuesPastFailures(t *testing.T) {
	src := &fakeOrders{
		orders: map[string][]model.Order{"osmo1ok": {{OrderID: 1}}},
		errFor: map[string]error{"osmo1bad": errors.New("backend down")},
	}
	sink := &collector{}

	cfg := DefaultConfig()
	cfg.Interval = time.Hour

	p := New(cfg, src, AddressList{"osmo1bad", "osmo1ok"}, sink, nil)
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	deadline := time.After(2 * time.Second)
	for sink.count() < 1 {
		select {
		case <-deadline:
			t.Fatalf("snapshots = %d, want 1", sink.count())
		case <-time.After(10 * time.Millisecond):
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p.Stop(ctx)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.snapshots[0].Owner != "osmo1ok" {
		t.Errorf("Owner = %q, want osmo1ok", sink.snapshots[0].Owner)
	}
}

func TestPollerStopBeforePoll(t *testing.T) {
	p := New(DefaultConfig(), &fakeOrders{}, AddressList{}, nil, nil)
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
