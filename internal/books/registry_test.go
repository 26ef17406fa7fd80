package books

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deividaspetraitis/orderbook-data/internal/assets"
	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

type fakePoolSource struct {
	books []model.Orderbook
	err   error
	calls atomic.Int32
}

func (f *fakePoolSource) ListOrderbooks(ctx context.Context) ([]model.Orderbook, error) {
	f.calls.Add(1)
	return f.books, f.err
}

type fakeFeeSource struct {
	fees  map[string]string
	calls atomic.Int32
}

func (f *fakeFeeSource) MakerFee(ctx context.Context, contract string) (string, error) {
	f.calls.Add(1)
	fee, ok := f.fees[contract]
	if !ok {
		return "", errors.New("unknown contract")
	}
	return fee, nil
}

var testBooks = []model.Orderbook{
	{ContractAddress: "osmo1book1", PoolID: 1, BaseDenom: "uosmo", QuoteDenom: "uusdc"},
	{ContractAddress: "osmo1book2", PoolID: 2, BaseDenom: "uatom", QuoteDenom: "uusdc"},
	{ContractAddress: "osmo1book3", PoolID: 3, BaseDenom: "ufoo", QuoteDenom: "uusdc"},
}

var testAssets = assets.Map{
	"uosmo": {Denom: "uosmo", Symbol: "OSMO", Decimals: 6},
	"uusdc": {Denom: "uusdc", Symbol: "USDC", Decimals: 6},
	"uatom": {Denom: "uatom", Symbol: "ATOM", Decimals: 6},
	// ufoo deliberately absent from the asset list
}

func startedRegistry(t *testing.T, pools *fakePoolSource, fees *fakeFeeSource) *Registry {
	t.Helper()

	cfg := DefaultConfig()
	cfg.ReconcileInterval = time.Hour // keep the loop quiet during tests

	r := NewRegistry(cfg, pools, fees, testAssets, nil)
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		r.Stop(ctx)
	})
	return r
}

func TestRegistryLookups(t *testing.T) {
	r := startedRegistry(t, &fakePoolSource{books: testBooks}, &fakeFeeSource{})

	t.Run("all sorted by pool id", func(t *testing.T) {
		all := r.All()
		if len(all) != 3 {
			t.Fatalf("len(All()) = %d, want 3", len(all))
		}
		if all[0].PoolID != 1 || all[2].PoolID != 3 {
			t.Errorf("not sorted by pool id: %+v", all)
		}
	})

	t.Run("by denom pair", func(t *testing.T) {
		b, err := r.ByDenomPair("uosmo", "uusdc")
		if err != nil {
			t.Fatalf("ByDenomPair() error = %v", err)
		}
		if b.ContractAddress != "osmo1book1" {
			t.Errorf("ContractAddress = %q", b.ContractAddress)
		}
	})

	t.Run("no matching orderbook", func(t *testing.T) {
		_, err := r.ByDenomPair("uosmo", "uatom")
		if err == nil {
			t.Fatal("expected error")
		}

		if !errors.Is(err, ErrNoOrderbook) {
			t.Errorf("errors.Is(err, ErrNoOrderbook) = false")
		}

		var noBook *NoOrderbookError
		if !errors.As(err, &noBook) {
			t.Fatalf("error type = %T", err)
		}
		if noBook.Code() != CodeNoOrderbook {
			t.Errorf("Code() = %q, want %q", noBook.Code(), CodeNoOrderbook)
		}
		if noBook.BaseDenom != "uosmo" || noBook.QuoteDenom != "uatom" {
			t.Errorf("pair = %s/%s", noBook.BaseDenom, noBook.QuoteDenom)
		}
	})

	t.Run("by address", func(t *testing.T) {
		if _, ok := r.ByAddress("osmo1book2"); !ok {
			t.Error("osmo1book2 not found")
		}
		if _, ok := r.ByAddress("osmo1missing"); ok {
			t.Error("unexpected hit")
		}
	})
}

func TestRegistryStartFailsOnSyncError(t *testing.T) {
	pools := &fakePoolSource{err: errors.New("indexer down")}
	r := NewRegistry(DefaultConfig(), pools, &fakeFeeSource{}, testAssets, nil)

	if err := r.Start(context.Background()); err == nil {
		t.Fatal("expected error from initial sync")
	}
}

func TestMakerFeeCaching(t *testing.T) {
	fees := &fakeFeeSource{fees: map[string]string{"osmo1book1": "0.0012"}}
	r := startedRegistry(t, &fakePoolSource{books: testBooks}, fees)

	for i := 0; i < 3; i++ {
		fee, err := r.MakerFee(context.Background(), "uosmo", "uusdc")
		if err != nil {
			t.Fatalf("MakerFee() error = %v", err)
		}
		if fee != "0.0012" {
			t.Errorf("fee = %q, want 0.0012", fee)
		}
	}

	if fees.calls.Load() != 1 {
		t.Errorf("fee source calls = %d, want 1 (cached)", fees.calls.Load())
	}

	t.Run("unknown pair", func(t *testing.T) {
		if _, err := r.MakerFee(context.Background(), "ubar", "uusdc"); !errors.Is(err, ErrNoOrderbook) {
			t.Errorf("err = %v, want ErrNoOrderbook", err)
		}
	})
}

func TestSelectableDenoms(t *testing.T) {
	r := startedRegistry(t, &fakePoolSource{books: testBooks}, &fakeFeeSource{})

	selectable := r.SelectableDenoms()

	// ufoo has no asset metadata, so only uosmo, uatom, uusdc qualify.
	if len(selectable) != 3 {
		t.Fatalf("len(selectable) = %d, want 3: %+v", len(selectable), selectable)
	}

	// Sorted by symbol: ATOM, OSMO, USDC.
	if selectable[0].Symbol != "ATOM" || selectable[1].Symbol != "OSMO" || selectable[2].Symbol != "USDC" {
		t.Errorf("symbols = %s, %s, %s", selectable[0].Symbol, selectable[1].Symbol, selectable[2].Symbol)
	}

	// USDC is quoted against both listed bases but never against ufoo.
	usdc := selectable[2]
	if len(usdc.CounterpartyDenoms) != 2 {
		t.Fatalf("USDC counterparties = %v", usdc.CounterpartyDenoms)
	}
	if usdc.CounterpartyDenoms[0] != "uatom" || usdc.CounterpartyDenoms[1] != "uosmo" {
		t.Errorf("USDC counterparties = %v", usdc.CounterpartyDenoms)
	}

	osmo := selectable[1]
	if len(osmo.CounterpartyDenoms) != 1 || osmo.CounterpartyDenoms[0] != "uusdc" {
		t.Errorf("OSMO counterparties = %v", osmo.CounterpartyDenoms)
	}
}
