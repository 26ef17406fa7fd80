package config

import "time"

// Config is the root configuration for the querier service.
type Config struct {
	Chain    ChainConfig     `yaml:"chain"`
	Indexer  IndexerConfig   `yaml:"indexer"`
	Node     NodeConfig      `yaml:"node"`
	Assets   AssetsConfig    `yaml:"assets"`
	Flags    map[string]bool `yaml:"flags"`
	Books    BooksConfig     `yaml:"books"`
	Poller   PollerConfig    `yaml:"poller"`
	Stream   StreamConfig    `yaml:"stream"`
	Wallet   WalletConfig    `yaml:"wallet"`
	Database DatabaseConfig  `yaml:"database"`
}

// ChainConfig identifies the chain the order-books live on.
type ChainConfig struct {
	// Bech32Prefix is the account address prefix (e.g., "osmo").
	Bech32Prefix string `yaml:"bech32_prefix"`
}

// IndexerConfig configures the sidecar indexer client.
type IndexerConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	PageSize   int           `yaml:"page_size"`
}

// NodeConfig configures the direct chain REST client.
type NodeConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// AssetsConfig locates the asset-list file.
type AssetsConfig struct {
	// Path to the asset-list JSON file.
	Path string `yaml:"path"`
}

// BooksConfig configures the orderbook registry.
type BooksConfig struct {
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`
}

// PollerConfig configures the order refetch poller.
type PollerConfig struct {
	Interval    time.Duration `yaml:"interval"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`

	// Addresses to refetch orders for.
	Addresses []string `yaml:"addresses"`
}

// StreamConfig configures the indexer websocket feed.
type StreamConfig struct {
	// Enabled turns the order-event stream on.
	Enabled bool `yaml:"enabled"`

	URL          string        `yaml:"url"`
	PingTimeout  time.Duration `yaml:"ping_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	BufferSize   int           `yaml:"buffer_size"`
}

// WalletConfig locates the external signer claim submissions go through.
// Key management stays outside this service.
type WalletConfig struct {
	// SignerURL is the base URL of the remote signer sidecar. Empty means
	// claims can only be built, not submitted.
	SignerURL string        `yaml:"signer_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DatabaseConfig configures the optional snapshot store.
type DatabaseConfig struct {
	// Enabled turns snapshot persistence on.
	Enabled bool `yaml:"enabled"`

	Postgres DBConfig     `yaml:"postgres"`
	Writer   WriterConfig `yaml:"writer"`
}

// DBConfig holds connection parameters for a Postgres database.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// WriterConfig holds batching parameters for the snapshot writer.
type WriterConfig struct {
	BatchSize     int           `yaml:"batch_size"`
	FlushInterval time.Duration `yaml:"flush_interval"`
	BufferSize    int           `yaml:"buffer_size"`
}
