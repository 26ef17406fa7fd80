package node

import "github.com/deividaspetraitis/orderbook-data/internal/model"

// ContractOrder is a limit order as stored by the order-book contract.
// u128 amounts come over the wire as JSON strings; timestamps as
// nanosecond strings.
type ContractOrder struct {
	TickID         int64  `json:"tick_id"`
	OrderID        int64  `json:"order_id"`
	OrderDirection string `json:"order_direction"`
	Owner          string `json:"owner"`
	Quantity       string `json:"quantity"`
	PlacedQuantity string `json:"placed_quantity"`
	Etas           string `json:"etas"`
	Claimed        string `json:"claimed"`
	Price          string `json:"price"`
	Status         string `json:"status,omitempty"`
	PlacedAt       string `json:"placed_at"`
}

// ordersByOwnerRequest is the orders_by_owner query payload.
type ordersByOwnerRequest struct {
	OrdersByOwner ordersByOwnerParams `json:"orders_by_owner"`
}

type ordersByOwnerParams struct {
	Owner     string `json:"owner"`
	StartFrom *int64 `json:"start_from,omitempty"`
	Limit     *int   `json:"limit,omitempty"`
}

// OrdersByOwnerResponse carries the contract's orders for an owner.
type OrdersByOwnerResponse struct {
	Orders []ContractOrder `json:"orders"`
	Count  int             `json:"count"`
}

// ordersByTickRequest is the orders_by_tick query payload.
type ordersByTickRequest struct {
	OrdersByTick ordersByTickParams `json:"orders_by_tick"`
}

type ordersByTickParams struct {
	TickID int64 `json:"tick_id"`
}

// OrdersByTickResponse carries the resting orders on one tick.
type OrdersByTickResponse struct {
	BidOrders []ContractOrder `json:"bid_orders"`
	AskOrders []ContractOrder `json:"ask_orders"`
}

// ticksByIDRequest is the ticks_by_id query payload.
type ticksByIDRequest struct {
	TicksByID ticksByIDParams `json:"ticks_by_id"`
}

type ticksByIDParams struct {
	TickIDs []int64 `json:"tick_ids"`
}

// TickValues holds per-direction cumulative swap state for a tick.
type TickValues struct {
	// EffectiveTotalAmountSwapped is the cumulative amount swapped
	// through the tick, as a decimal string.
	EffectiveTotalAmountSwapped string `json:"effective_total_amount_swapped"`
	CumulativeTotalValue        string `json:"cumulative_total_value"`
}

// TickState is the full tick record returned by ticks_by_id.
type TickState struct {
	TickID    int64      `json:"tick_id"`
	AskValues TickValues `json:"ask_values"`
	BidValues TickValues `json:"bid_values"`
}

// TicksResponse carries tick state for the requested tick ids.
type TicksResponse struct {
	Ticks []TickState `json:"ticks"`
}

// unrealizedCancelsRequest is the get_unrealized_cancels query payload.
type unrealizedCancelsRequest struct {
	GetUnrealizedCancels unrealizedCancelsParams `json:"get_unrealized_cancels"`
}

type unrealizedCancelsParams struct {
	TickIDs []int64 `json:"tick_ids"`
}

// UnrealizedCancels holds per-direction cancelled-but-unsettled amounts.
type UnrealizedCancels struct {
	AskUnrealizedCancels string `json:"ask_unrealized_cancels"`
	BidUnrealizedCancels string `json:"bid_unrealized_cancels"`
}

// TickUnrealizedCancels pairs a tick id with its unrealized cancel state.
type TickUnrealizedCancels struct {
	TickID            int64             `json:"tick_id"`
	UnrealizedCancels UnrealizedCancels `json:"unrealized_cancels"`
}

// UnrealizedCancelsResponse carries unrealized cancels for the requested ticks.
type UnrealizedCancelsResponse struct {
	Ticks []TickUnrealizedCancels `json:"ticks"`
}

// makerFeeRequest is the get_maker_fee query payload.
type makerFeeRequest struct {
	GetMakerFee struct{} `json:"get_maker_fee"`
}

// MakerFeeResponse carries the book's maker fee rate.
type MakerFeeResponse struct {
	MakerFee string `json:"maker_fee"`
}

// ToModel converts a ContractOrder to model.Order using tick fill state.
// effectiveEtas is the tick's effective total amount swapped plus
// unrealized cancels for the order's direction.
func (o *ContractOrder) ToModel(book model.Orderbook, effectiveEtas float64) model.Order {
	placed := model.ParseAmount(o.PlacedQuantity)
	claimed := model.ParseAmount(o.Claimed)
	orderEtas := model.ParseDec(o.Etas)

	// Amount swapped through the tick beyond this order's queue position.
	filled := effectiveEtas - orderEtas
	if filled < 0 {
		filled = 0
	}
	if filled > float64(placed) {
		filled = float64(placed)
	}

	var percentFilled, percentClaimed float64
	if placed > 0 {
		percentFilled = filled / float64(placed)
	}
	if filled > 0 {
		percentClaimed = float64(claimed) / filled
		if percentClaimed > 1 {
			percentClaimed = 1
		}
	}

	status := model.OrderStatus(o.Status)
	if status != model.StatusCancelled {
		status = model.StatusForProgress(percentFilled, percentClaimed)
	}

	return model.Order{
		OrderbookAddress: book.ContractAddress,
		TickID:           o.TickID,
		OrderID:          o.OrderID,
		Direction:        model.OrderDirection(o.OrderDirection),
		Owner:            o.Owner,
		Quantity:         placed - int64(filled+0.5),
		PlacedQuantity:   placed,
		Price:            o.Price,
		PercentFilled:    percentFilled,
		PercentClaimed:   percentClaimed,
		Status:           status,
		PlacedAt:         model.NanosToMicro(o.PlacedAt),
		BaseDenom:        book.BaseDenom,
		QuoteDenom:       book.QuoteDenom,
	}
}

// EffectiveEtas returns the tick's effective swapped amount for a
// direction, including unrealized cancels.
func EffectiveEtas(direction model.OrderDirection, tick TickState, cancels UnrealizedCancels) float64 {
	switch direction {
	case model.DirectionAsk:
		return model.ParseDec(tick.AskValues.EffectiveTotalAmountSwapped) +
			model.ParseDec(cancels.AskUnrealizedCancels)
	default:
		return model.ParseDec(tick.BidValues.EffectiveTotalAmountSwapped) +
			model.ParseDec(cancels.BidUnrealizedCancels)
	}
}
