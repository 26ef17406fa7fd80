package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteSigner is a Broadcaster backed by a signer sidecar. The sidecar
// holds the keys, signs the execute messages, and submits the transaction
// to the chain.
type RemoteSigner struct {
	baseURL string
	client  *http.Client
}

// NewRemoteSigner creates a Broadcaster talking to the signer at baseURL.
func NewRemoteSigner(baseURL string, timeout time.Duration) *RemoteSigner {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &RemoteSigner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type broadcastRequest struct {
	Sender string       `json:"sender"`
	Msgs   []ExecuteMsg `json:"msgs"`
}

type broadcastResponse struct {
	TxHash string `json:"tx_hash"`
	Error  string `json:"error,omitempty"`
}

// Broadcast submits the messages through the signer and returns the
// transaction hash.
func (s *RemoteSigner) Broadcast(ctx context.Context, sender string, msgs []ExecuteMsg) (string, error) {
	body, err := json.Marshal(broadcastRequest{Sender: sender, Msgs: msgs})
	if err != nil {
		return "", fmt.Errorf("marshal broadcast request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/broadcast", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create broadcast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("broadcast request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read broadcast response: %w", err)
	}

	var out broadcastResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode broadcast response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("signer rejected broadcast: %s", out.Error)
		}
		return "", fmt.Errorf("signer returned status %d", resp.StatusCode)
	}

	if out.TxHash == "" {
		return "", fmt.Errorf("signer returned no tx hash")
	}

	return out.TxHash, nil
}
