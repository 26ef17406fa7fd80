package books

import (
	"context"
	"time"
)

// sync fetches the order-book pool list and replaces the registry state.
func (r *Registry) sync(ctx context.Context) error {
	start := time.Now()

	books, err := r.pools.ListOrderbooks(ctx)
	if err != nil {
		return err
	}

	r.state.replace(books)

	r.logger.Debug("orderbook sync complete",
		"orderbooks", len(books),
		"duration", time.Since(start),
	)

	return nil
}

// reconcileLoop periodically re-syncs the pool list so newly deployed
// books show up without a restart.
func (r *Registry) reconcileLoop() {
	ticker := time.NewTicker(r.cfg.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(r.ctx, r.cfg.InitialLoadTimeout)
			if err := r.sync(ctx); err != nil {
				r.logger.Warn("orderbook reconcile failed", "err", err)
			}
			cancel()
		}
	}
}
