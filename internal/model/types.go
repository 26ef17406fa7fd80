package model

// OrderDirection is the side of the book an order rests on.
type OrderDirection string

const (
	DirectionBid OrderDirection = "bid"
	DirectionAsk OrderDirection = "ask"
)

// OrderStatus is the display status of a limit order.
type OrderStatus string

const (
	StatusOpen            OrderStatus = "open"
	StatusPartiallyFilled OrderStatus = "partiallyFilled"
	StatusFilled          OrderStatus = "filled"
	StatusFullyClaimed    OrderStatus = "fullyClaimed"
	StatusCancelled       OrderStatus = "cancelled"
)

// Orderbook represents an on-chain order-book contract for a denom pair.
type Orderbook struct {
	ContractAddress string // Primary key (bech32 contract address)
	PoolID          uint64 // Pool id the contract is registered under
	BaseDenom       string // Base asset denom (e.g., "uosmo")
	QuoteDenom      string // Quote asset denom (e.g., "uusdc")
}

// Order represents a user's limit order on an order-book contract.
type Order struct {
	OrderbookAddress string         // Owning order-book contract
	TickID           int64          // Price tick the order rests on
	OrderID          int64          // Order id within the tick
	Direction        OrderDirection // bid or ask
	Owner            string         // Owner address (bech32)

	// Amounts (micro units of the input denom)
	Quantity       int64 // Remaining unfilled quantity
	PlacedQuantity int64 // Original quantity at placement

	Price string // Limit price as a decimal string

	// Fill/claim progress, 0.0-1.0
	PercentFilled  float64
	PercentClaimed float64

	Status   OrderStatus
	PlacedAt int64 // Placement time (µs since epoch)

	// Denoms of the owning book, for display
	BaseDenom  string
	QuoteDenom string
}

// FilledQuantity returns the filled amount in micro units.
func (o Order) FilledQuantity() int64 {
	return o.PlacedQuantity - o.Quantity
}

// Claimable reports whether the order has filled proceeds not yet withdrawn.
func (o Order) Claimable() bool {
	if o.Status == StatusCancelled || o.Status == StatusFullyClaimed {
		return false
	}
	return o.FilledQuantity() > 0 && o.PercentClaimed < 1
}

// Asset describes a denom from the asset-list configuration.
type Asset struct {
	Denom    string // Chain denom (primary key)
	Symbol   string // Display symbol (e.g., "OSMO")
	Decimals int    // Display decimal places
	PriceUSD string // Current USD price as a decimal string, "" if unknown
}

// SelectableDenom is a denom tradable on at least one order-book,
// enriched with its asset metadata.
type SelectableDenom struct {
	Asset

	// Denoms this one can be paired against.
	CounterpartyDenoms []string
}

// OrderSnapshot is one poll observation of a user's order set, persisted
// by the snapshot writer.
type OrderSnapshot struct {
	Owner      string  // User address
	ObservedAt int64   // Poll time (µs since epoch)
	Source     string  // "indexer" or "node"
	Orders     []Order // Orders observed for the owner
}
