package books

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/deividaspetraitis/orderbook-data/internal/assets"
	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

// PoolSource lists the available order-book pools. Implemented by the
// indexer client.
type PoolSource interface {
	ListOrderbooks(ctx context.Context) ([]model.Orderbook, error)
}

// FeeSource fetches a contract's maker fee. Implemented by the node client.
type FeeSource interface {
	MakerFee(ctx context.Context, contract string) (string, error)
}

// Config holds registry configuration.
type Config struct {
	ReconcileInterval  time.Duration
	InitialLoadTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ReconcileInterval:  5 * time.Minute,
		InitialLoadTimeout: time.Minute,
	}
}

// Registry tracks known order-book contracts and their metadata.
type Registry struct {
	cfg    Config
	pools  PoolSource
	fees   FeeSource
	assets assets.Resolver
	logger *slog.Logger

	state *registryState

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRegistry creates a new order-book registry.
func NewRegistry(cfg Config, pools PoolSource, fees FeeSource, resolver assets.Resolver, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		cfg:    cfg,
		pools:  pools,
		fees:   fees,
		assets: resolver,
		logger: logger,
		state:  newState(),
	}
}

// Start performs the initial sync and begins background reconciliation.
func (r *Registry) Start(ctx context.Context) error {
	r.ctx, r.cancel = context.WithCancel(ctx)

	syncCtx, cancel := context.WithTimeout(r.ctx, r.cfg.InitialLoadTimeout)
	defer cancel()

	if err := r.sync(syncCtx); err != nil {
		r.cancel()
		return fmt.Errorf("initial orderbook sync: %w", err)
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.reconcileLoop()
	}()

	r.logger.Info("orderbook registry started",
		"orderbooks", r.state.count(),
	)

	return nil
}

// Stop gracefully shuts down the registry.
func (r *Registry) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("orderbook registry stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// All returns every known order-book, sorted by pool id.
func (r *Registry) All() []model.Orderbook {
	return r.state.all()
}

// ByDenomPair returns the order-book for a base/quote pair.
func (r *Registry) ByDenomPair(base, quote string) (model.Orderbook, error) {
	if b, ok := r.state.byDenomPair(base, quote); ok {
		return b, nil
	}
	return model.Orderbook{}, &NoOrderbookError{BaseDenom: base, QuoteDenom: quote}
}

// ByAddress returns the order-book for a contract address.
func (r *Registry) ByAddress(contract string) (model.Orderbook, bool) {
	return r.state.byAddress(contract)
}

// MakerFee returns the maker fee for a denom pair's book, fetching and
// caching it on first use. The fee is immutable per contract so the cache
// never expires.
func (r *Registry) MakerFee(ctx context.Context, base, quote string) (string, error) {
	book, err := r.ByDenomPair(base, quote)
	if err != nil {
		return "", err
	}

	if fee, ok := r.state.cachedFee(book.ContractAddress); ok {
		return fee, nil
	}

	fee, err := r.fees.MakerFee(ctx, book.ContractAddress)
	if err != nil {
		return "", fmt.Errorf("fetch maker fee: %w", err)
	}

	r.state.cacheFee(book.ContractAddress, fee)
	return fee, nil
}

// SelectableDenoms returns the denoms tradable on at least one book that
// also have asset-list metadata, sorted by symbol, each with the denoms
// it can be paired against.
func (r *Registry) SelectableDenoms() []model.SelectableDenom {
	counterparties := make(map[string]map[string]struct{})

	addPair := func(denom, other string) {
		if _, ok := counterparties[denom]; !ok {
			counterparties[denom] = make(map[string]struct{})
		}
		counterparties[denom][other] = struct{}{}
	}

	for _, b := range r.state.all() {
		// Both sides must be known assets for the pair to be selectable.
		if _, ok := r.assets.Lookup(b.BaseDenom); !ok {
			continue
		}
		if _, ok := r.assets.Lookup(b.QuoteDenom); !ok {
			continue
		}
		addPair(b.BaseDenom, b.QuoteDenom)
		addPair(b.QuoteDenom, b.BaseDenom)
	}

	selectable := make([]model.SelectableDenom, 0, len(counterparties))
	for denom, others := range counterparties {
		asset, _ := r.assets.Lookup(denom)

		paired := make([]string, 0, len(others))
		for other := range others {
			paired = append(paired, other)
		}
		sort.Strings(paired)

		selectable = append(selectable, model.SelectableDenom{
			Asset:              asset,
			CounterpartyDenoms: paired,
		})
	}

	sort.Slice(selectable, func(i, j int) bool {
		return selectable[i].Symbol < selectable[j].Symbol
	})

	return selectable
}
