// Package wallet defines the interfaces the order service uses to reach
// the user's wallet. Key management and transaction signing live outside
// this module; implementations wrap whatever signer the host application
// provides.
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
)

// AccountSource exposes the active account's chain address.
type AccountSource interface {
	// Address returns the active bech32 account address, or "" when no
	// account is connected.
	Address() string
}

// ExecuteMsg is one contract execution within a broadcast.
type ExecuteMsg struct {
	// Contract is the bech32 address of the contract to execute.
	Contract string `json:"contract"`

	// Msg is the JSON execute payload handed to the contract.
	Msg json.RawMessage `json:"msg"`

	// Funds attached to the execution, e.g. "1000uosmo". Empty for claims.
	Funds string `json:"funds,omitempty"`
}

// Broadcaster signs and submits a batch of contract executions as a
// single transaction.
type Broadcaster interface {
	// Broadcast submits the messages and returns the transaction hash.
	Broadcast(ctx context.Context, sender string, msgs []ExecuteMsg) (string, error)
}

// StaticAccount is an AccountSource with a fixed address, used by the CLI
// and tests.
type StaticAccount string

// Address returns the fixed address.
func (a StaticAccount) Address() string { return string(a) }

// NewExecuteMsg marshals payload into an ExecuteMsg for contract.
func NewExecuteMsg(contract string, payload any) (ExecuteMsg, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return ExecuteMsg{}, fmt.Errorf("marshal execute payload: %w", err)
	}
	return ExecuteMsg{Contract: contract, Msg: raw}, nil
}
