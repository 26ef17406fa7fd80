package node

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client issues smart queries against order-book contracts via a full
// node's REST endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new chain REST client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// QueryError represents an error response from the node.
type QueryError struct {
	StatusCode int
	Contract   string
	Body       []byte
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("node query error %d (contract %s): %s", e.StatusCode, e.Contract, string(e.Body))
}

// smartQueryResponse wraps the contract response per the wasm REST API.
type smartQueryResponse struct {
	Data json.RawMessage `json:"data"`
}

// SmartQuery executes a contract smart query and decodes the response
// payload into result.
func (c *Client) SmartQuery(ctx context.Context, contract string, query any, result any) error {
	raw, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	fullURL := c.baseURL + "/cosmwasm/wasm/v1/contract/" + contract + "/smart/" + encoded

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &QueryError{
			StatusCode: resp.StatusCode,
			Contract:   contract,
			Body:       body,
		}
	}

	var wrapper smartQueryResponse
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if err := json.Unmarshal(wrapper.Data, result); err != nil {
		return fmt.Errorf("unmarshal contract data: %w", err)
	}

	return nil
}
