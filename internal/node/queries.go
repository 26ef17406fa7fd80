package node

import (
	"context"
	"fmt"
)

// OrdersByOwner fetches the owner's orders resting on one contract.
// startFrom and limit page through the contract's order index; nil
// startFrom begins at the first order.
func (c *Client) OrdersByOwner(ctx context.Context, contract, owner string, startFrom *int64, limit *int) (*OrdersByOwnerResponse, error) {
	req := ordersByOwnerRequest{
		OrdersByOwner: ordersByOwnerParams{
			Owner:     owner,
			StartFrom: startFrom,
			Limit:     limit,
		},
	}

	var resp OrdersByOwnerResponse
	if err := c.SmartQuery(ctx, contract, req, &resp); err != nil {
		return nil, fmt.Errorf("orders by owner %s: %w", contract, err)
	}

	return &resp, nil
}

// AllOrdersByOwner pages through orders_by_owner until exhausted.
func (c *Client) AllOrdersByOwner(ctx context.Context, contract, owner string, pageSize int) ([]ContractOrder, error) {
	var all []ContractOrder
	var startFrom *int64

	for {
		resp, err := c.OrdersByOwner(ctx, contract, owner, startFrom, &pageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Orders...)

		if len(resp.Orders) < pageSize {
			break
		}
		last := resp.Orders[len(resp.Orders)-1].OrderID
		next := last + 1
		startFrom = &next
	}

	return all, nil
}

// OrdersByTick fetches all orders resting on one tick of a contract.
func (c *Client) OrdersByTick(ctx context.Context, contract string, tickID int64) (*OrdersByTickResponse, error) {
	req := ordersByTickRequest{
		OrdersByTick: ordersByTickParams{TickID: tickID},
	}

	var resp OrdersByTickResponse
	if err := c.SmartQuery(ctx, contract, req, &resp); err != nil {
		return nil, fmt.Errorf("orders by tick %d on %s: %w", tickID, contract, err)
	}

	return &resp, nil
}

// TicksByID fetches tick state for the given tick ids.
func (c *Client) TicksByID(ctx context.Context, contract string, tickIDs []int64) ([]TickState, error) {
	if len(tickIDs) == 0 {
		return nil, nil
	}

	req := ticksByIDRequest{
		TicksByID: ticksByIDParams{TickIDs: tickIDs},
	}

	var resp TicksResponse
	if err := c.SmartQuery(ctx, contract, req, &resp); err != nil {
		return nil, fmt.Errorf("ticks by id on %s: %w", contract, err)
	}

	return resp.Ticks, nil
}

// UnrealizedCancelsByTick fetches cancelled-but-unsettled amounts for the
// given tick ids.
func (c *Client) UnrealizedCancelsByTick(ctx context.Context, contract string, tickIDs []int64) ([]TickUnrealizedCancels, error) {
	if len(tickIDs) == 0 {
		return nil, nil
	}

	req := unrealizedCancelsRequest{
		GetUnrealizedCancels: unrealizedCancelsParams{TickIDs: tickIDs},
	}

	var resp UnrealizedCancelsResponse
	if err := c.SmartQuery(ctx, contract, req, &resp); err != nil {
		return nil, fmt.Errorf("unrealized cancels on %s: %w", contract, err)
	}

	return resp.Ticks, nil
}

// MakerFee fetches the book's maker fee rate as a decimal string.
func (c *Client) MakerFee(ctx context.Context, contract string) (string, error) {
	var resp MakerFeeResponse
	if err := c.SmartQuery(ctx, contract, makerFeeRequest{}, &resp); err != nil {
		return "", fmt.Errorf("maker fee on %s: %w", contract, err)
	}

	return resp.MakerFee, nil
}
