package indexer

import "github.com/deividaspetraitis/orderbook-data/internal/model"

// OrderbooksResponse from GET /orderbooks
type OrderbooksResponse struct {
	Orderbooks []APIOrderbook `json:"orderbooks"`
	Cursor     string         `json:"cursor"`
}

// APIOrderbook represents an order-book pool from the indexer.
type APIOrderbook struct {
	ContractAddress string `json:"contract_address"`
	PoolID          uint64 `json:"pool_id"`
	BaseDenom       string `json:"base_denom"`
	QuoteDenom      string `json:"quote_denom"`
}

// OrdersResponse from GET /orders/active and GET /orders/history
type OrdersResponse struct {
	Orders []APIOrder `json:"orders"`
	Cursor string     `json:"cursor"`
}

// ClaimableOrdersResponse from GET /orders/claimable
type ClaimableOrdersResponse struct {
	Orders []APIOrder `json:"orders"`
}

// APIOrder represents a limit order from the indexer passthrough.
// Amounts are u128 strings; progress fields are decimal strings in [0, 1].
type APIOrder struct {
	OrderbookAddress string `json:"orderbook_address"`
	TickID           int64  `json:"tick_id"`
	OrderID          int64  `json:"order_id"`
	OrderDirection   string `json:"order_direction"`
	Owner            string `json:"owner"`
	Quantity         string `json:"quantity"`
	PlacedQuantity   string `json:"placed_quantity"`
	Price            string `json:"price"`
	PercentFilled    string `json:"percent_filled"`
	PercentClaimed   string `json:"percent_claimed"`
	Status           string `json:"status"`
	PlacedAt         int64  `json:"placed_at"` // Unix milliseconds
	BaseDenom        string `json:"base_denom"`
	QuoteDenom       string `json:"quote_denom"`
}

// GetOrdersOptions configures a paginated order request.
type GetOrdersOptions struct {
	Address string
	Limit   int
	Cursor  string
}

// ToModel converts an APIOrderbook to model.Orderbook.
func (b *APIOrderbook) ToModel() model.Orderbook {
	return model.Orderbook{
		ContractAddress: b.ContractAddress,
		PoolID:          b.PoolID,
		BaseDenom:       b.BaseDenom,
		QuoteDenom:      b.QuoteDenom,
	}
}

// ToModel converts an APIOrder to model.Order. The indexer reports status
// directly; cancelled orders keep that status, everything else is
// re-derived from progress so stale indexer statuses cannot leak through.
func (o *APIOrder) ToModel() model.Order {
	filled := model.ParseDec(o.PercentFilled)
	claimed := model.ParseDec(o.PercentClaimed)

	status := model.OrderStatus(o.Status)
	if status != model.StatusCancelled {
		status = model.StatusForProgress(filled, claimed)
	}

	return model.Order{
		OrderbookAddress: o.OrderbookAddress,
		TickID:           o.TickID,
		OrderID:          o.OrderID,
		Direction:        model.OrderDirection(o.OrderDirection),
		Owner:            o.Owner,
		Quantity:         model.ParseAmount(o.Quantity),
		PlacedQuantity:   model.ParseAmount(o.PlacedQuantity),
		Price:            o.Price,
		PercentFilled:    filled,
		PercentClaimed:   claimed,
		Status:           status,
		PlacedAt:         model.MillisToMicro(o.PlacedAt),
		BaseDenom:        o.BaseDenom,
		QuoteDenom:       o.QuoteDenom,
	}
}
