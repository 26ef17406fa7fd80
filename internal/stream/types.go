package stream

import (
	"errors"
	"time"

	"github.com/deividaspetraitis/orderbook-data/internal/indexer"
)

// Errors
var (
	ErrNotConnected    = errors.New("not connected")
	ErrStaleConnection = errors.New("connection stale (no ping)")
	ErrAlreadyClosed   = errors.New("already closed")
)

// Event is an order update pushed by the indexer feed.
type Event struct {
	// Type is "order_placed", "order_filled", "order_claimed", or
	// "order_cancelled".
	Type string `json:"type"`

	// Order is the affected order in indexer passthrough shape.
	Order indexer.APIOrder `json:"order"`

	// ReceivedAt is the local receive timestamp, set by the client.
	ReceivedAt time.Time `json:"-"`
}

// subscribeCommand asks the feed for events affecting the addresses.
type subscribeCommand struct {
	Subscribe subscribeParams `json:"subscribe"`
}

type subscribeParams struct {
	Addresses []string `json:"addresses"`
}

// Config configures the stream client.
type Config struct {
	URL          string        // Websocket URL of the indexer feed
	PingTimeout  time.Duration // Max time without ping before the connection is stale
	WriteTimeout time.Duration // Write deadline for sends
	BufferSize   int           // Event channel buffer size
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PingTimeout:  60 * time.Second,
		WriteTimeout: 5 * time.Second,
		BufferSize:   10000,
	}
}
