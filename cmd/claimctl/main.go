// Command claimctl lists an address's claimable limit orders and builds
// the batch_claim executions for them. Without -submit it prints the
// unsigned messages; with -submit they go through the configured remote
// signer as one transaction.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deividaspetraitis/orderbook-data/internal/assets"
	"github.com/deividaspetraitis/orderbook-data/internal/books"
	"github.com/deividaspetraitis/orderbook-data/internal/config"
	"github.com/deividaspetraitis/orderbook-data/internal/flags"
	"github.com/deividaspetraitis/orderbook-data/internal/indexer"
	"github.com/deividaspetraitis/orderbook-data/internal/node"
	"github.com/deividaspetraitis/orderbook-data/internal/orders"
	"github.com/deividaspetraitis/orderbook-data/internal/wallet"
)

func main() {
	configPath := flag.String("config", "configs/querier.local.yaml", "path to config file")
	address := flag.String("address", "", "owner address to claim for")
	submit := flag.Bool("submit", false, "submit the claim through the remote signer")
	flag.Parse()

	// Logs go to stderr so stdout stays machine-readable.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if err := run(*configPath, *address, *submit, logger); err != nil {
		fmt.Fprintln(os.Stderr, "claimctl:", err)
		os.Exit(1)
	}
}

func run(configPath, address string, submit bool, logger *slog.Logger) error {
	if address == "" {
		return errors.New("-address is required")
	}

	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

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

	assetList, err := assets.LoadRegistry(cfg.Assets.Path)
	if err != nil {
		return fmt.Errorf("load asset list: %w", err)
	}

	registry := books.NewRegistry(books.DefaultConfig(), idx, nd, assetList, logger)
	if err := registry.Start(ctx); err != nil {
		return fmt.Errorf("load order-books: %w", err)
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		registry.Stop(stopCtx)
	}()

	var caster wallet.Broadcaster
	if submit {
		if cfg.Wallet.SignerURL == "" {
			return errors.New("wallet.signer_url must be configured to submit")
		}
		caster = wallet.NewRemoteSigner(cfg.Wallet.SignerURL, cfg.Wallet.Timeout)
	}

	svc := orders.NewService(
		flags.NewProvider(cfg.Flags), idx, nd, registry,
		wallet.StaticAccount(address), caster,
		orders.WithLogger(logger),
	)

	claimable, err := svc.ClaimableOrders(ctx, address)
	if err != nil {
		return fmt.Errorf("fetch claimable orders: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%d claimable orders for %s (backend %s)\n",
		len(claimable), address, svc.Backend())
	for _, o := range claimable {
		fmt.Fprintf(os.Stderr, "  %s/%s %s tick=%d order=%d filled=%d price=%s\n",
			o.BaseDenom, o.QuoteDenom, o.Direction,
			o.TickID, o.OrderID, o.FilledQuantity(), o.Price)
	}

	if submit {
		txHash, err := svc.ClaimAll(ctx)
		if err != nil {
			return fmt.Errorf("claim: %w", err)
		}
		fmt.Println(txHash)
		return nil
	}

	batches, err := orders.BuildClaimBatches(claimable)
	if err != nil {
		if errors.Is(err, orders.ErrNothingToClaim) {
			fmt.Fprintln(os.Stderr, "nothing to claim")
			return nil
		}
		return fmt.Errorf("build claim batches: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(batches)
}
