package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

// OrderSource fetches a user's orders. Implemented by the orders service.
type OrderSource interface {
	ActiveOrders(ctx context.Context, address string) ([]model.Order, error)
	Backend() string
}

// AddressSource provides the addresses to poll.
type AddressSource interface {
	Addresses() []string
}

// AddressList is a fixed AddressSource.
type AddressList []string

// Addresses returns the fixed list.
func (a AddressList) Addresses() []string { return a }

// SnapshotHandler receives fetched snapshots.
type SnapshotHandler interface {
	HandleSnapshot(snapshot model.OrderSnapshot) error
}

// SnapshotHandlerFunc is a function adapter for SnapshotHandler.
type SnapshotHandlerFunc func(model.OrderSnapshot) error

func (f SnapshotHandlerFunc) HandleSnapshot(s model.OrderSnapshot) error {
	return f(s)
}

// Config holds poller configuration.
type Config struct {
	Interval    time.Duration // Poll interval
	Concurrency int           // Max concurrent fetches
	Timeout     time.Duration // Per-address timeout
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:    30 * time.Second,
		Concurrency: 10,
		Timeout:     10 * time.Second,
	}
}

// Poller periodically refetches orders for tracked addresses.
type Poller struct {
	cfg       Config
	orders    OrderSource
	addresses AddressSource
	handler   SnapshotHandler
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Poller.
func New(cfg Config, orders OrderSource, addresses AddressSource, handler SnapshotHandler, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:       cfg,
		orders:    orders,
		addresses: addresses,
		handler:   handler,
		logger:    logger,
	}
}

// Start begins the polling loop.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Info("order poller started",
		"interval", p.cfg.Interval,
		"concurrency", p.cfg.Concurrency,
	)

	return nil
}

// Stop gracefully shuts down the poller.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("order poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	p.pollAll()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.pollAll()
		}
	}
}

// pollAll fetches orders for all tracked addresses concurrently.
func (p *Poller) pollAll() {
	start := time.Now()

	addresses := p.addresses.Addresses()
	if len(addresses) == 0 {
		p.logger.Debug("no addresses to poll")
		return
	}

	// Semaphore for bounded concurrency.
	sem := make(chan struct{}, p.cfg.Concurrency)
	var wg sync.WaitGroup
	var fetched, failures atomic.Int64

	for _, address := range addresses {
		wg.Add(1)
		go func(address string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-p.ctx.Done():
				return
			}

			if err := p.pollAddress(address); err != nil {
				p.logger.Warn("failed to poll address",
					"address", address,
					"err", err,
				)
				failures.Add(1)
				return
			}

			fetched.Add(1)
		}(address)
	}

	wg.Wait()

	p.logger.Info("poll cycle complete",
		"addresses", len(addresses),
		"fetched", fetched.Load(),
		"failures", failures.Load(),
		"duration", time.Since(start),
	)
}

// PollNow refetches a single address outside the regular cycle, used when
// a stream event signals the address's orders changed.
func (p *Poller) PollNow(address string) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if err := p.pollAddress(address); err != nil {
			p.logger.Warn("failed to poll address",
				"address", address,
				"err", err,
			)
		}
	}()
}

// pollAddress fetches and handles a single address's orders.
func (p *Poller) pollAddress(address string) error {
	ctx, cancel := context.WithTimeout(p.ctx, p.cfg.Timeout)
	defer cancel()

	orders, err := p.orders.ActiveOrders(ctx, address)
	if err != nil {
		return err
	}

	snapshot := model.OrderSnapshot{
		Owner:      address,
		ObservedAt: model.NowMicro(),
		Source:     p.orders.Backend(),
		Orders:     orders,
	}

	if p.handler != nil {
		if err := p.handler.HandleSnapshot(snapshot); err != nil {
			return err
		}
	}

	return nil
}
