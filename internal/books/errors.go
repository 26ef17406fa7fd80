package books

import (
	"errors"
	"fmt"
)

// CodeNoOrderbook is the stable code display layers key error messages on.
const CodeNoOrderbook = "no-orderbook"

// ErrNoOrderbook matches any NoOrderbookError via errors.Is.
var ErrNoOrderbook = errors.New("no matching orderbook")

// NoOrderbookError reports that no order-book exists for a denom pair.
type NoOrderbookError struct {
	BaseDenom  string
	QuoteDenom string
}

func (e *NoOrderbookError) Error() string {
	return fmt.Sprintf("no orderbook for pair %s/%s", e.BaseDenom, e.QuoteDenom)
}

// Code returns the stable display error code.
func (e *NoOrderbookError) Code() string {
	return CodeNoOrderbook
}

// Is makes errors.Is(err, ErrNoOrderbook) match.
func (e *NoOrderbookError) Is(target error) bool {
	return target == ErrNoOrderbook
}
