package indexer

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

// GetOrderbooks fetches a page of order-book pools.
func (c *Client) GetOrderbooks(ctx context.Context, limit int, cursor string) (*OrderbooksResponse, error) {
	query := url.Values{}

	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var resp OrderbooksResponse
	if err := c.get(ctx, "/orderbooks", query, &resp); err != nil {
		return nil, fmt.Errorf("get orderbooks: %w", err)
	}

	return &resp, nil
}

// ListOrderbooks fetches all order-book pools as model records.
func (c *Client) ListOrderbooks(ctx context.Context) ([]model.Orderbook, error) {
	raw, err := c.GetAllOrderbooks(ctx)
	if err != nil {
		return nil, err
	}

	books := make([]model.Orderbook, 0, len(raw))
	for i := range raw {
		books = append(books, raw[i].ToModel())
	}
	return books, nil
}

// GetAllOrderbooks fetches all order-book pools by paginating through results.
func (c *Client) GetAllOrderbooks(ctx context.Context) ([]APIOrderbook, error) {
	var all []APIOrderbook
	cursor := ""

	for {
		resp, err := c.GetOrderbooks(ctx, c.pageSize, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Orderbooks...)

		if resp.Cursor == "" {
			break
		}
		cursor = resp.Cursor
	}

	return all, nil
}
