package writer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deividaspetraitis/orderbook-data/internal/config"
	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

// SnapshotWriter consumes order snapshots and writes one row per observed
// order to the order_observations table.
type SnapshotWriter struct {
	cfg    config.WriterConfig
	logger *slog.Logger

	// Input from the poller
	input chan model.OrderSnapshot

	// Database
	db *pgxpool.Pool

	// Batching
	batch       []observationRow
	batchMu     sync.Mutex
	flushTicker *time.Ticker

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Metrics
	metrics SnapshotWriterMetrics
}

// SnapshotWriterMetrics counts writer activity.
type SnapshotWriterMetrics struct {
	Snapshots int64
	Inserts   int64
	Conflicts int64
	Errors    int64
	Dropped   int64
	Flushes   int64
}

// observationRow is one order observation ready for insert.
type observationRow struct {
	ObservedAt       int64
	Owner            string
	Source           string
	OrderbookAddress string
	TickID           int64
	OrderID          int64
	Direction        string
	Quantity         int64
	PlacedQuantity   int64
	Price            string
	PercentFilled    float64
	PercentClaimed   float64
	Status           string
	PlacedAt         int64
}

// NewSnapshotWriter creates a new SnapshotWriter.
func NewSnapshotWriter(cfg config.WriterConfig, db *pgxpool.Pool, logger *slog.Logger) *SnapshotWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotWriter{
		cfg:    cfg,
		db:     db,
		logger: logger,
		input:  make(chan model.OrderSnapshot, cfg.BufferSize),
		batch:  make([]observationRow, 0, cfg.BatchSize),
	}
}

// HandleSnapshot queues a snapshot for persistence. It never blocks the
// poller: when the buffer is full the snapshot is dropped and counted.
func (w *SnapshotWriter) HandleSnapshot(snapshot model.OrderSnapshot) error {
	select {
	case w.input <- snapshot:
	default:
		w.batchMu.Lock()
		w.metrics.Dropped++
		w.batchMu.Unlock()
		w.logger.Warn("snapshot buffer full, dropping snapshot",
			"owner", snapshot.Owner,
			"orders", len(snapshot.Orders),
		)
	}
	return nil
}

// Start begins consuming snapshots and writing to the database.
func (w *SnapshotWriter) Start(ctx context.Context) error {
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.flushTicker = time.NewTicker(w.cfg.FlushInterval)

	w.wg.Add(1)
	go w.consumeLoop()

	w.wg.Add(1)
	go w.flushLoop()

	w.logger.Info("snapshot writer started",
		"batch_size", w.cfg.BatchSize,
		"flush_interval", w.cfg.FlushInterval,
	)
	return nil
}

// Stop gracefully shuts down the writer.
func (w *SnapshotWriter) Stop(ctx context.Context) error {
	w.logger.Info("stopping snapshot writer")

	if w.cancel != nil {
		w.cancel()
	}

	if w.flushTicker != nil {
		w.flushTicker.Stop()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("snapshot writer stopped")
	case <-ctx.Done():
		w.logger.Warn("snapshot writer stop timed out")
	}

	// Final flush
	w.flush()

	return nil
}

// Stats returns current metrics.
func (w *SnapshotWriter) Stats() SnapshotWriterMetrics {
	w.batchMu.Lock()
	defer w.batchMu.Unlock()
	return w.metrics
}

// consumeLoop reads snapshots and accumulates the batch.
func (w *SnapshotWriter) consumeLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case snapshot := <-w.input:
			w.handleSnapshot(snapshot)
		}
	}
}

// flushLoop periodically flushes the batch.
func (w *SnapshotWriter) flushLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.flushTicker.C:
			w.flush()
		}
	}
}

func (w *SnapshotWriter) handleSnapshot(snapshot model.OrderSnapshot) {
	w.batchMu.Lock()
	w.metrics.Snapshots++
	for _, order := range snapshot.Orders {
		w.batch = append(w.batch, transform(snapshot, order))
	}
	shouldFlush := len(w.batch) >= w.cfg.BatchSize
	w.batchMu.Unlock()

	if shouldFlush {
		w.flush()
	}
}

// transform converts an observed order to an observationRow.
func transform(snapshot model.OrderSnapshot, order model.Order) observationRow {
	return observationRow{
		ObservedAt:       snapshot.ObservedAt,
		Owner:            snapshot.Owner,
		Source:           snapshot.Source,
		OrderbookAddress: order.OrderbookAddress,
		TickID:           order.TickID,
		OrderID:          order.OrderID,
		Direction:        string(order.Direction),
		Quantity:         order.Quantity,
		PlacedQuantity:   order.PlacedQuantity,
		Price:            order.Price,
		PercentFilled:    order.PercentFilled,
		PercentClaimed:   order.PercentClaimed,
		Status:           string(order.Status),
		PlacedAt:         order.PlacedAt,
	}
}

// flush writes the accumulated batch to the database.
func (w *SnapshotWriter) flush() {
	w.batchMu.Lock()
	batch := w.batch
	w.batch = make([]observationRow, 0, w.cfg.BatchSize)
	w.batchMu.Unlock()

	if len(batch) == 0 {
		return
	}

	start := time.Now()

	conflicts, err := w.batchInsert(batch)

	w.batchMu.Lock()
	if err != nil {
		w.metrics.Errors++
	} else {
		w.metrics.Inserts += int64(len(batch) - conflicts)
		w.metrics.Conflicts += int64(conflicts)
	}
	w.metrics.Flushes++
	w.batchMu.Unlock()

	if err != nil {
		w.logger.Error("observation batch insert failed", "error", err, "count", len(batch))
		return
	}

	w.logger.Debug("flushed observations",
		"rows", len(batch),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
}

// batchInsert inserts observation rows with ON CONFLICT DO NOTHING.
func (w *SnapshotWriter) batchInsert(rows []observationRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(`
			INSERT INTO order_observations (observed_at, owner, source, orderbook_address, tick_id, order_id, direction, quantity, placed_quantity, price, percent_filled, percent_claimed, status, placed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (orderbook_address, order_id, observed_at) DO NOTHING
		`, r.ObservedAt, r.Owner, r.Source, r.OrderbookAddress, r.TickID, r.OrderID, r.Direction, r.Quantity, r.PlacedQuantity, r.Price, r.PercentFilled, r.PercentClaimed, r.Status, r.PlacedAt)
	}

	results := w.db.SendBatch(w.ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}
