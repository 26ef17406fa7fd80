package indexer

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetActiveOrders fetches a page of the user's resting orders.
func (c *Client) GetActiveOrders(ctx context.Context, opts GetOrdersOptions) (*OrdersResponse, error) {
	return c.getOrders(ctx, "/orders/active", opts)
}

// GetOrderHistory fetches a page of the user's filled and cancelled orders.
func (c *Client) GetOrderHistory(ctx context.Context, opts GetOrdersOptions) (*OrdersResponse, error) {
	return c.getOrders(ctx, "/orders/history", opts)
}

// GetAllActiveOrders fetches all of the user's resting orders.
func (c *Client) GetAllActiveOrders(ctx context.Context, address string) ([]APIOrder, error) {
	return c.getAllOrders(ctx, "/orders/active", address)
}

// GetAllOrderHistory fetches the user's full order history.
func (c *Client) GetAllOrderHistory(ctx context.Context, address string) ([]APIOrder, error) {
	return c.getAllOrders(ctx, "/orders/history", address)
}

// GetClaimableOrders fetches the user's filled-but-unclaimed orders.
// The endpoint is not paginated; claimable sets are small.
func (c *Client) GetClaimableOrders(ctx context.Context, address string) ([]APIOrder, error) {
	query := url.Values{}
	query.Set("address", address)

	var resp ClaimableOrdersResponse
	if err := c.get(ctx, "/orders/claimable", query, &resp); err != nil {
		return nil, fmt.Errorf("get claimable orders: %w", err)
	}

	return resp.Orders, nil
}

func (c *Client) getOrders(ctx context.Context, path string, opts GetOrdersOptions) (*OrdersResponse, error) {
	query := url.Values{}
	query.Set("address", opts.Address)

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	var resp OrdersResponse
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, fmt.Errorf("get orders %s: %w", path, err)
	}

	return &resp, nil
}

func (c *Client) getAllOrders(ctx context.Context, path string, address string) ([]APIOrder, error) {
	var all []APIOrder
	opts := GetOrdersOptions{Address: address, Limit: c.pageSize}

	for {
		resp, err := c.getOrders(ctx, path, opts)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Orders...)

		if resp.Cursor == "" {
			break
		}
		opts.Cursor = resp.Cursor
	}

	return all, nil
}
