package orders

import (
	"context"
	"log/slog"

	"github.com/deividaspetraitis/orderbook-data/internal/flags"
	"github.com/deividaspetraitis/orderbook-data/internal/indexer"
	"github.com/deividaspetraitis/orderbook-data/internal/model"
	"github.com/deividaspetraitis/orderbook-data/internal/node"
	"github.com/deividaspetraitis/orderbook-data/internal/wallet"
)

// IndexerSource is the slice of the indexer client the service uses.
type IndexerSource interface {
	GetAllActiveOrders(ctx context.Context, address string) ([]indexer.APIOrder, error)
	GetAllOrderHistory(ctx context.Context, address string) ([]indexer.APIOrder, error)
	GetClaimableOrders(ctx context.Context, address string) ([]indexer.APIOrder, error)
}

// NodeSource is the slice of the node client the service uses.
type NodeSource interface {
	AllOrdersByOwner(ctx context.Context, contract, owner string, pageSize int) ([]node.ContractOrder, error)
	TicksByID(ctx context.Context, contract string, tickIDs []int64) ([]node.TickState, error)
	UnrealizedCancelsByTick(ctx context.Context, contract string, tickIDs []int64) ([]node.TickUnrealizedCancels, error)
}

// BookSource lists the order-books to fan out over. Implemented by the
// books registry.
type BookSource interface {
	All() []model.Orderbook
}

// FlagSource answers feature-flag lookups.
type FlagSource interface {
	IsEnabled(name string) bool
}

// Service fetches, aggregates, and claims a user's limit orders.
type Service struct {
	flags   FlagSource
	idx     IndexerSource
	node    NodeSource
	books   BookSource
	account wallet.AccountSource
	caster  wallet.Broadcaster
	logger  *slog.Logger

	// Fan-out bound for node-backed fetches.
	concurrency int
	// Page size for contract order pagination.
	pageSize int
}

// Option configures a Service.
type Option func(*Service)

// NewService creates an order service.
func NewService(
	fs FlagSource,
	idx IndexerSource,
	nd NodeSource,
	books BookSource,
	account wallet.AccountSource,
	caster wallet.Broadcaster,
	opts ...Option,
) *Service {
	s := &Service{
		flags:       fs,
		idx:         idx,
		node:        nd,
		books:       books,
		account:     account,
		caster:      caster,
		logger:      slog.Default(),
		concurrency: 8,
		pageSize:    100,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithConcurrency bounds the node fan-out.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		s.concurrency = n
	}
}

// WithPageSize sets the contract pagination page size.
func WithPageSize(n int) Option {
	return func(s *Service) {
		s.pageSize = n
	}
}

// useIndexer reports whether the indexer passthrough is the active order
// backend.
func (s *Service) useIndexer() bool {
	return s.flags.IsEnabled(flags.IndexerOrders)
}

// Backend names the active order backend, for logs and snapshots.
func (s *Service) Backend() string {
	if s.useIndexer() {
		return "indexer"
	}
	return "node"
}
