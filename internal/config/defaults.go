package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBech32Prefix      = "osmo"
	DefaultIndexerTimeout    = 30 * time.Second
	DefaultIndexerRetries    = 3
	DefaultIndexerPageSize   = 100
	DefaultNodeTimeout       = 15 * time.Second
	DefaultAssetsPath        = "configs/assetlist.json"
	DefaultReconcileInterval = 5 * time.Minute
	DefaultPollInterval      = 30 * time.Second
	DefaultPollConcurrency   = 10
	DefaultPollTimeout       = 10 * time.Second
	DefaultPingTimeout       = 60 * time.Second
	DefaultWriteTimeout      = 5 * time.Second
	DefaultStreamBufferSize  = 10000
	DefaultSignerTimeout     = 30 * time.Second
	DefaultDBPort            = 5432
	DefaultDBSSLMode         = "prefer"
	DefaultMaxConns          = 10
	DefaultMinConns          = 2
	DefaultBatchSize         = 500
	DefaultFlushInterval     = 1 * time.Second
	DefaultWriterBufferSize  = 10000
)

func (c *Config) applyDefaults() {
	if c.Chain.Bech32Prefix == "" {
		c.Chain.Bech32Prefix = DefaultBech32Prefix
	}

	// Indexer defaults
	if c.Indexer.Timeout == 0 {
		c.Indexer.Timeout = DefaultIndexerTimeout
	}
	if c.Indexer.MaxRetries == 0 {
		c.Indexer.MaxRetries = DefaultIndexerRetries
	}
	if c.Indexer.PageSize == 0 {
		c.Indexer.PageSize = DefaultIndexerPageSize
	}

	// Node defaults
	if c.Node.Timeout == 0 {
		c.Node.Timeout = DefaultNodeTimeout
	}

	if c.Assets.Path == "" {
		c.Assets.Path = DefaultAssetsPath
	}

	if c.Books.ReconcileInterval == 0 {
		c.Books.ReconcileInterval = DefaultReconcileInterval
	}

	// Poller defaults
	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollInterval
	}
	if c.Poller.Concurrency == 0 {
		c.Poller.Concurrency = DefaultPollConcurrency
	}
	if c.Poller.Timeout == 0 {
		c.Poller.Timeout = DefaultPollTimeout
	}

	// Stream defaults
	if c.Stream.PingTimeout == 0 {
		c.Stream.PingTimeout = DefaultPingTimeout
	}
	if c.Stream.WriteTimeout == 0 {
		c.Stream.WriteTimeout = DefaultWriteTimeout
	}
	if c.Stream.BufferSize == 0 {
		c.Stream.BufferSize = DefaultStreamBufferSize
	}

	// Wallet defaults
	if c.Wallet.Timeout == 0 {
		c.Wallet.Timeout = DefaultSignerTimeout
	}

	// Database defaults
	if c.Database.Postgres.Port == 0 {
		c.Database.Postgres.Port = DefaultDBPort
	}
	if c.Database.Postgres.SSLMode == "" {
		c.Database.Postgres.SSLMode = DefaultDBSSLMode
	}
	if c.Database.Postgres.MaxConns == 0 {
		c.Database.Postgres.MaxConns = DefaultMaxConns
	}
	if c.Database.Postgres.MinConns == 0 {
		c.Database.Postgres.MinConns = DefaultMinConns
	}
	if c.Database.Writer.BatchSize == 0 {
		c.Database.Writer.BatchSize = DefaultBatchSize
	}
	if c.Database.Writer.FlushInterval == 0 {
		c.Database.Writer.FlushInterval = DefaultFlushInterval
	}
	if c.Database.Writer.BufferSize == 0 {
		c.Database.Writer.BufferSize = DefaultWriterBufferSize
	}
}
