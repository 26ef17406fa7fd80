package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deividaspetraitis/orderbook-data/internal/assets"
	"github.com/deividaspetraitis/orderbook-data/internal/books"
	"github.com/deividaspetraitis/orderbook-data/internal/config"
	"github.com/deividaspetraitis/orderbook-data/internal/database"
	"github.com/deividaspetraitis/orderbook-data/internal/flags"
	"github.com/deividaspetraitis/orderbook-data/internal/indexer"
	"github.com/deividaspetraitis/orderbook-data/internal/model"
	"github.com/deividaspetraitis/orderbook-data/internal/node"
	"github.com/deividaspetraitis/orderbook-data/internal/orders"
	"github.com/deividaspetraitis/orderbook-data/internal/poller"
	"github.com/deividaspetraitis/orderbook-data/internal/stream"
	"github.com/deividaspetraitis/orderbook-data/internal/version"
	"github.com/deividaspetraitis/orderbook-data/internal/wallet"
	"github.com/deividaspetraitis/orderbook-data/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/querier.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting querier",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"indexer_url", cfg.Indexer.BaseURL,
		"node_url", cfg.Node.BaseURL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create backend clients
	idx := indexer.NewClient(
		cfg.Indexer.BaseURL,
		indexer.WithLogger(logger),
		indexer.WithTimeout(cfg.Indexer.Timeout),
		indexer.WithRetries(cfg.Indexer.MaxRetries, time.Second),
		indexer.WithPageSize(cfg.Indexer.PageSize),
	)
	nd := node.NewClient(
		cfg.Node.BaseURL,
		node.WithLogger(logger),
		node.WithTimeout(cfg.Node.Timeout),
	)

	// Load the asset list
	assetList, err := assets.LoadRegistry(cfg.Assets.Path)
	if err != nil {
		logger.Error("failed to load asset list", "error", err, "path", cfg.Assets.Path)
		os.Exit(1)
	}

	// Create order-book registry
	registryCfg := books.DefaultConfig()
	registryCfg.ReconcileInterval = cfg.Books.ReconcileInterval
	registry := books.NewRegistry(registryCfg, idx, nd, assetList, logger)

	// Feature flags
	flagProvider := flags.NewProvider(cfg.Flags)

	// Order service. The querier only reads, so no wallet is wired.
	orderService := orders.NewService(
		flagProvider, idx, nd, registry,
		wallet.StaticAccount(""), nil,
		orders.WithLogger(logger),
		orders.WithConcurrency(cfg.Poller.Concurrency),
		orders.WithPageSize(cfg.Indexer.PageSize),
	)

	logger.Info("order backend selected", "backend", orderService.Backend())

	// Start health server early so we can monitor sync progress
	healthPort := 8080
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", healthPort),
		Handler: createHealthHandler(registry, orderService, logger),
	}

	go func() {
		logger.Info("starting health server", "port", healthPort)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	// Start order-book registry (initial sync)
	logger.Info("starting order-book registry (initial sync)...")
	if err := registry.Start(ctx); err != nil {
		logger.Error("failed to start order-book registry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		registry.Stop(shutdownCtx)
	}()

	logger.Info("order-book registry started",
		"books", len(registry.All()),
		"selectable_denoms", len(registry.SelectableDenoms()),
	)

	// Optional snapshot store
	var handler poller.SnapshotHandler
	if cfg.Database.Enabled {
		logger.Info("connecting to snapshot store",
			"host", cfg.Database.Postgres.Host,
			"port", cfg.Database.Postgres.Port,
			"database", cfg.Database.Postgres.Name,
		)

		pool, err := database.Connect(ctx, cfg.Database.Postgres)
		if err != nil {
			logger.Error("failed to connect to snapshot store", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		snapshotWriter := writer.NewSnapshotWriter(cfg.Database.Writer, pool, logger)
		if err := snapshotWriter.Start(ctx); err != nil {
			logger.Error("failed to start snapshot writer", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			snapshotWriter.Stop(shutdownCtx)
		}()

		handler = snapshotWriter
	} else {
		handler = logHandler(logger)
	}

	// Start the order poller
	pollerCfg := poller.Config{
		Interval:    cfg.Poller.Interval,
		Concurrency: cfg.Poller.Concurrency,
		Timeout:     cfg.Poller.Timeout,
	}
	addresses := poller.AddressList(cfg.Poller.Addresses)
	orderPoller := poller.New(pollerCfg, orderService, addresses, handler, logger)
	if err := orderPoller.Start(ctx); err != nil {
		logger.Error("failed to start poller", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		orderPoller.Stop(shutdownCtx)
	}()

	// Optional order-event stream
	if cfg.Stream.Enabled {
		streamClient := stream.NewClient(stream.Config{
			URL:          cfg.Stream.URL,
			PingTimeout:  cfg.Stream.PingTimeout,
			WriteTimeout: cfg.Stream.WriteTimeout,
			BufferSize:   cfg.Stream.BufferSize,
		}, logger)

		if err := streamClient.Connect(ctx); err != nil {
			logger.Error("failed to connect order-event stream", "error", err)
			os.Exit(1)
		}
		defer streamClient.Close()

		if err := streamClient.Subscribe(cfg.Poller.Addresses); err != nil {
			logger.Error("failed to subscribe order-event stream", "error", err)
			os.Exit(1)
		}

		// A pushed event means the owner's orders changed; refetch now
		// instead of waiting out the poll interval.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case ev := <-streamClient.Events():
					logger.Debug("order event",
						"type", ev.Type,
						"owner", ev.Order.Owner,
						"book", ev.Order.OrderbookAddress,
					)
					orderPoller.PollNow(ev.Order.Owner)
				case err := <-streamClient.Errors():
					logger.Warn("order-event stream error", "error", err)
				}
			}
		}()
	}

	logger.Info("querier running",
		"backend", orderService.Backend(),
		"addresses", len(cfg.Poller.Addresses),
		"health_url", fmt.Sprintf("http://localhost:%d/health", healthPort),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	// Graceful shutdown of health server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	healthServer.Shutdown(shutdownCtx)

	logger.Info("querier stopped")
}

// logHandler logs snapshots when no snapshot store is configured.
func logHandler(logger *slog.Logger) poller.SnapshotHandler {
	return poller.SnapshotHandlerFunc(func(s model.OrderSnapshot) error {
		logger.Debug("order snapshot",
			"owner", s.Owner,
			"source", s.Source,
			"orders", len(s.Orders),
		)
		return nil
	})
}

// createHealthHandler creates the HTTP handler for health checks.
func createHealthHandler(registry *books.Registry, svc *orders.Service, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		allBooks := registry.All()
		health.Components["book_registry"] = map[string]interface{}{
			"books": len(allBooks),
		}
		if len(allBooks) == 0 {
			health.Status = "degraded"
		}

		health.Components["order_backend"] = svc.Backend()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})

	mux.HandleFunc("/debug/books", func(w http.ResponseWriter, r *http.Request) {
		allBooks := registry.All()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count": len(allBooks),
			"books": allBooks,
		})
	})

	mux.HandleFunc("/debug/denoms", func(w http.ResponseWriter, r *http.Request) {
		denoms := registry.SelectableDenoms()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count":  len(denoms),
			"denoms": denoms,
		})
	})

	return mux
}
