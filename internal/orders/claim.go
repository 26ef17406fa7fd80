package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
	"github.com/deividaspetraitis/orderbook-data/internal/wallet"
)

// ErrNoAccount is returned when no wallet account is connected.
var ErrNoAccount = errors.New("no account connected")

// ErrNothingToClaim is returned when the user has no claimable orders.
var ErrNothingToClaim = errors.New("nothing to claim")

// ClaimBatch is one batch_claim execution against a single order-book
// contract.
type ClaimBatch struct {
	ID         uuid.UUID
	Contract   string
	OrderCount int
	Msg        wallet.ExecuteMsg
}

// batchClaimPayload is the contract's batch_claim execute message.
type batchClaimPayload struct {
	BatchClaim batchClaimOrders `json:"batch_claim"`
}

type batchClaimOrders struct {
	// Orders is a list of [tick_id, order_id] pairs.
	Orders [][2]int64 `json:"orders"`
}

// BuildClaimBatches groups claimable orders per contract into batch_claim
// execute messages. Non-claimable orders in the input are skipped.
func BuildClaimBatches(orders []model.Order) ([]ClaimBatch, error) {
	perContract := make(map[string][][2]int64)
	for _, o := range orders {
		if !o.Claimable() {
			continue
		}
		perContract[o.OrderbookAddress] = append(
			perContract[o.OrderbookAddress],
			[2]int64{o.TickID, o.OrderID},
		)
	}

	if len(perContract) == 0 {
		return nil, ErrNothingToClaim
	}

	contracts := make([]string, 0, len(perContract))
	for contract := range perContract {
		contracts = append(contracts, contract)
	}
	sort.Strings(contracts)

	batches := make([]ClaimBatch, 0, len(contracts))
	for _, contract := range contracts {
		pairs := perContract[contract]

		msg, err := wallet.NewExecuteMsg(contract, batchClaimPayload{
			BatchClaim: batchClaimOrders{Orders: pairs},
		})
		if err != nil {
			return nil, fmt.Errorf("build claim for %s: %w", contract, err)
		}

		batches = append(batches, ClaimBatch{
			ID:         uuid.New(),
			Contract:   contract,
			OrderCount: len(pairs),
			Msg:        msg,
		})
	}

	return batches, nil
}

// ClaimAll fetches the connected account's claimable orders, builds the
// claim batches, and submits them as one transaction. It returns the
// transaction hash.
func (s *Service) ClaimAll(ctx context.Context) (string, error) {
	address := s.account.Address()
	if address == "" {
		return "", ErrNoAccount
	}

	claimable, err := s.ClaimableOrders(ctx, address)
	if err != nil {
		return "", err
	}

	batches, err := BuildClaimBatches(claimable)
	if err != nil {
		return "", err
	}

	msgs := make([]wallet.ExecuteMsg, 0, len(batches))
	total := 0
	for _, b := range batches {
		msgs = append(msgs, b.Msg)
		total += b.OrderCount
	}

	txHash, err := s.caster.Broadcast(ctx, address, msgs)
	if err != nil {
		return "", fmt.Errorf("broadcast claim: %w", err)
	}

	s.logger.Info("claimed filled orders",
		"address", address,
		"orders", total,
		"contracts", len(batches),
		"tx_hash", txHash,
	)

	return txHash, nil
}
