package orders

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deividaspetraitis/orderbook-data/internal/flags"
	"github.com/deividaspetraitis/orderbook-data/internal/indexer"
	"github.com/deividaspetraitis/orderbook-data/internal/model"
	"github.com/deividaspetraitis/orderbook-data/internal/wallet"
)

func claimableOrder(contract string, tick, id int64) model.Order {
	return model.Order{
		OrderbookAddress: contract,
		TickID:           tick,
		OrderID:          id,
		Quantity:         0,
		PlacedQuantity:   1000000,
		PercentFilled:    1,
		Status:           model.StatusFilled,
	}
}

func TestBuildClaimBatches(t *testing.T) {
	orders := []model.Order{
		claimableOrder("osmo1book2", 200, 5),
		claimableOrder("osmo1book1", 100, 1),
		claimableOrder("osmo1book1", 150, 2),
		{OrderbookAddress: "osmo1book1", TickID: 1, OrderID: 9,
			Quantity: 1000000, PlacedQuantity: 1000000, Status: model.StatusOpen}, // not claimable
	}

	batches, err := BuildClaimBatches(orders)
	if err != nil {
		t.Fatalf("BuildClaimBatches() error = %v", err)
	}

	if len(batches) != 2 {
		t.Fatalf("len(batches) = %d, want 2", len(batches))
	}

	// Contracts sorted for deterministic transaction layout.
	if batches[0].Contract != "osmo1book1" || batches[1].Contract != "osmo1book2" {
		t.Errorf("contracts = %s, %s", batches[0].Contract, batches[1].Contract)
	}
	if batches[0].OrderCount != 2 || batches[1].OrderCount != 1 {
		t.Errorf("order counts = %d, %d", batches[0].OrderCount, batches[1].OrderCount)
	}
	if batches[0].ID == batches[1].ID {
		t.Error("batch ids should be distinct")
	}

	t.Run("payload shape", func(t *testing.T) {
		var payload struct {
			BatchClaim struct {
				Orders [][2]int64 `json:"orders"`
			} `json:"batch_claim"`
		}
		if err := json.Unmarshal(batches[0].Msg.Msg, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}

		want := [][2]int64{{100, 1}, {150, 2}}
		if len(payload.BatchClaim.Orders) != 2 {
			t.Fatalf("orders = %v", payload.BatchClaim.Orders)
		}
		for i, pair := range want {
			if payload.BatchClaim.Orders[i] != pair {
				t.Errorf("orders[%d] = %v, want %v", i, payload.BatchClaim.Orders[i], pair)
			}
		}
	})

	t.Run("no claimable orders", func(t *testing.T) {
		_, err := BuildClaimBatches([]model.Order{{Status: model.StatusOpen, Quantity: 1, PlacedQuantity: 1}})
		if !errors.Is(err, ErrNothingToClaim) {
			t.Errorf("err = %v, want ErrNothingToClaim", err)
		}
	})
}

func TestClaimAll(t *testing.T) {
	idx := &fakeIndexer{claimable: []indexer.APIOrder{
		{OrderbookAddress: "osmo1book1", TickID: 100, OrderID: 1,
			Quantity: "0", PlacedQuantity: "1000000", PercentFilled: "1", Status: "filled"},
		{OrderbookAddress: "osmo1book2", TickID: 200, OrderID: 2,
			Quantity: "0", PlacedQuantity: "1000000", PercentFilled: "1", Status: "filled"},
	}}

	caster := &fakeBroadcaster{txHash: "ABC123"}
	s := NewService(flagMap{flags.IndexerOrders: true}, idx, &fakeNode{}, testBooks,
		wallet.StaticAccount("osmo1owner"), caster)

	txHash, err := s.ClaimAll(context.Background())
	if err != nil {
		t.Fatalf("ClaimAll() error = %v", err)
	}

	if txHash != "ABC123" {
		t.Errorf("txHash = %q", txHash)
	}
	if caster.sender != "osmo1owner" {
		t.Errorf("sender = %q", caster.sender)
	}
	if len(caster.msgs) != 2 {
		t.Errorf("len(msgs) = %d, want 2 (one per contract)", len(caster.msgs))
	}
}

func TestClaimAllNoAccount(t *testing.T) {
	s := NewService(flagMap{}, &fakeIndexer{}, &fakeNode{}, testBooks,
		wallet.StaticAccount(""), &fakeBroadcaster{})

	if _, err := s.ClaimAll(context.Background()); !errors.Is(err, ErrNoAccount) {
		t.Errorf("err = %v, want ErrNoAccount", err)
	}
}

func TestClaimAllNothingToClaim(t *testing.T) {
	s := NewService(flagMap{flags.IndexerOrders: true}, &fakeIndexer{}, &fakeNode{}, testBooks,
		wallet.StaticAccount("osmo1owner"), &fakeBroadcaster{})

	if _, err := s.ClaimAll(context.Background()); !errors.Is(err, ErrNothingToClaim) {
		t.Errorf("err = %v, want ErrNothingToClaim", err)
	}
}

func TestClaimAllBroadcastError(t *testing.T) {
	idx := &fakeIndexer{claimable: []indexer.APIOrder{
		{OrderbookAddress: "osmo1book1", TickID: 100, OrderID: 1,
			Quantity: "0", PlacedQuantity: "1000000", PercentFilled: "1", Status: "filled"},
	}}
	caster := &fakeBroadcaster{err: errors.New("rejected")}

	s := NewService(flagMap{flags.IndexerOrders: true}, idx, &fakeNode{}, testBooks,
		wallet.StaticAccount("osmo1owner"), caster)

	if _, err := s.ClaimAll(context.Background()); err == nil {
		t.Fatal("expected broadcast error")
	}
}
