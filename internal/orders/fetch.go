package orders

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/deividaspetraitis/orderbook-data/internal/indexer"
	"github.com/deividaspetraitis/orderbook-data/internal/model"
	"github.com/deividaspetraitis/orderbook-data/internal/node"
)

// ActiveOrders returns the user's resting orders across all order-books,
// sorted newest first.
func (s *Service) ActiveOrders(ctx context.Context, address string) ([]model.Order, error) {
	var (
		orders []model.Order
		err    error
	)

	if s.useIndexer() {
		orders, err = s.activeFromIndexer(ctx, address)
	} else {
		orders, err = s.activeFromNode(ctx, address)
	}
	if err != nil {
		return nil, err
	}

	sortOrders(orders)
	return orders, nil
}

// OrderHistory returns the user's filled and cancelled orders, sorted
// newest first. History is indexer-only: contracts prune settled orders.
func (s *Service) OrderHistory(ctx context.Context, address string) ([]model.Order, error) {
	raw, err := s.idx.GetAllOrderHistory(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("order history: %w", err)
	}

	orders := fromAPI(raw)
	sortOrders(orders)
	return orders, nil
}

// AllOrders returns active orders and history merged, sorted newest first.
func (s *Service) AllOrders(ctx context.Context, address string) ([]model.Order, error) {
	active, err := s.ActiveOrders(ctx, address)
	if err != nil {
		return nil, err
	}

	history, err := s.OrderHistory(ctx, address)
	if err != nil {
		return nil, err
	}

	merged := append(active, history...)
	sortOrders(merged)
	return merged, nil
}

// ClaimableOrders returns the user's orders with unclaimed filled
// proceeds, sorted newest first.
func (s *Service) ClaimableOrders(ctx context.Context, address string) ([]model.Order, error) {
	if s.useIndexer() {
		raw, err := s.idx.GetClaimableOrders(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("claimable orders: %w", err)
		}

		orders := filterClaimable(fromAPI(raw))
		sortOrders(orders)
		return orders, nil
	}

	active, err := s.activeFromNode(ctx, address)
	if err != nil {
		return nil, err
	}

	orders := filterClaimable(active)
	sortOrders(orders)
	return orders, nil
}

func (s *Service) activeFromIndexer(ctx context.Context, address string) ([]model.Order, error) {
	raw, err := s.idx.GetAllActiveOrders(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("active orders: %w", err)
	}
	return fromAPI(raw), nil
}

// activeFromNode fans out orders_by_owner across every known book and
// enriches the results with tick fill state.
func (s *Service) activeFromNode(ctx context.Context, address string) ([]model.Order, error) {
	books := s.books.All()

	var (
		mu     sync.Mutex
		orders []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, book := range books {
		g.Go(func() error {
			fetched, err := s.ordersFromBook(gctx, book, address)
			if err != nil {
				return err
			}

			mu.Lock()
			orders = append(orders, fetched...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fan out active orders: %w", err)
	}

	return orders, nil
}

// ordersFromBook fetches one contract's orders for the owner and converts
// them using the ticks they rest on.
func (s *Service) ordersFromBook(ctx context.Context, book model.Orderbook, owner string) ([]model.Order, error) {
	raw, err := s.node.AllOrdersByOwner(ctx, book.ContractAddress, owner, s.pageSize)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	tickIDs := distinctTickIDs(raw)

	ticks, err := s.node.TicksByID(ctx, book.ContractAddress, tickIDs)
	if err != nil {
		return nil, err
	}

	cancels, err := s.node.UnrealizedCancelsByTick(ctx, book.ContractAddress, tickIDs)
	if err != nil {
		return nil, err
	}

	tickByID := make(map[int64]node.TickState, len(ticks))
	for _, t := range ticks {
		tickByID[t.TickID] = t
	}
	cancelsByID := make(map[int64]node.UnrealizedCancels, len(cancels))
	for _, c := range cancels {
		cancelsByID[c.TickID] = c.UnrealizedCancels
	}

	orders := make([]model.Order, 0, len(raw))
	for i := range raw {
		o := &raw[i]
		etas := node.EffectiveEtas(
			model.OrderDirection(o.OrderDirection),
			tickByID[o.TickID],
			cancelsByID[o.TickID],
		)
		orders = append(orders, o.ToModel(book, etas))
	}

	return orders, nil
}

func fromAPI(raw []indexer.APIOrder) []model.Order {
	orders := make([]model.Order, 0, len(raw))
	for i := range raw {
		orders = append(orders, raw[i].ToModel())
	}
	return orders
}

func filterClaimable(orders []model.Order) []model.Order {
	claimable := orders[:0]
	for _, o := range orders {
		if o.Claimable() {
			claimable = append(claimable, o)
		}
	}
	return claimable
}

func distinctTickIDs(orders []node.ContractOrder) []int64 {
	seen := make(map[int64]struct{}, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.TickID]; ok {
			continue
		}
		seen[o.TickID] = struct{}{}
		ids = append(ids, o.TickID)
	}
	return ids
}
