package books

import (
	"sort"
	"sync"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

type pairKey struct {
	base, quote string
}

// registryState holds the synced order-book set behind a lock.
type registryState struct {
	mu sync.RWMutex

	byContract map[string]model.Orderbook
	byPair     map[pairKey]model.Orderbook

	// makerFees caches fee rates per contract address.
	makerFees map[string]string
}

func newState() *registryState {
	return &registryState{
		byContract: make(map[string]model.Orderbook),
		byPair:     make(map[pairKey]model.Orderbook),
		makerFees:  make(map[string]string),
	}
}

// replace swaps in a freshly synced order-book set. Fee cache entries for
// contracts that disappeared are dropped.
func (s *registryState) replace(books []model.Orderbook) {
	byContract := make(map[string]model.Orderbook, len(books))
	byPair := make(map[pairKey]model.Orderbook, len(books))
	for _, b := range books {
		byContract[b.ContractAddress] = b
		byPair[pairKey{b.BaseDenom, b.QuoteDenom}] = b
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for contract := range s.makerFees {
		if _, ok := byContract[contract]; !ok {
			delete(s.makerFees, contract)
		}
	}
	s.byContract = byContract
	s.byPair = byPair
}

func (s *registryState) all() []model.Orderbook {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]model.Orderbook, 0, len(s.byContract))
	for _, b := range s.byContract {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].PoolID < books[j].PoolID
	})
	return books
}

func (s *registryState) byDenomPair(base, quote string) (model.Orderbook, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byPair[pairKey{base, quote}]
	return b, ok
}

func (s *registryState) byAddress(contract string) (model.Orderbook, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byContract[contract]
	return b, ok
}

func (s *registryState) cachedFee(contract string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fee, ok := s.makerFees[contract]
	return fee, ok
}

func (s *registryState) cacheFee(contract, fee string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.makerFees[contract] = fee
}

func (s *registryState) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byContract)
}
