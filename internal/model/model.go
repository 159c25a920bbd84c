package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount rejects transfers and deposits with a non-positive amount.
	ErrInvalidAmount = errors.New("amount of money for transferring must be positive")
	// ErrInvalidTransaction rejects transfers where sender and receiver are the same account.
	ErrInvalidTransaction = errors.New("sender and receiver account ids are equal")
)

// Account is a point-in-time snapshot of a ledger account. The store owns the
// authoritative balance; an Account value is never a cache.
type Account struct {
	ID     int64
	Amount decimal.Decimal
}

// MarshalJSON renders the balance as an exact decimal number with a fixed
// 5-digit scale, matching the NUMERIC(20,5) column.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     int64       `json:"id"`
		Amount json.Number `json:"amount"`
	}{
		ID:     a.ID,
		Amount: json.Number(a.Amount.StringFixed(5)),
	})
}

// TransferRequest is the validated intent to move money between two accounts.
// It is created per request and discarded once the transfer completes.
type TransferRequest struct {
	From   int64
	To     int64
	Amount decimal.Decimal
}

// NewTransferRequest validates the transfer invariants before any store
// access: the amount must be positive and the parties distinct.
func NewTransferRequest(from, to int64, amount decimal.Decimal) (TransferRequest, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return TransferRequest{}, ErrInvalidAmount
	}
	if from == to {
		return TransferRequest{}, fmt.Errorf("%w: from: %d and to: %d", ErrInvalidTransaction, from, to)
	}
	return TransferRequest{From: from, To: to, Amount: amount}, nil
}

// TransferOutcome is a closed union: TransferSucceeded or TransferFailed.
// Domain failures are outcome values, never Go errors.
type TransferOutcome interface {
	transferOutcome()
}

type TransferSucceeded struct{}

type TransferFailed struct {
	Description string `json:"description"`
}

func (TransferSucceeded) transferOutcome() {}
func (TransferFailed) transferOutcome()    {}

// RechargeOutcome is a closed union: RechargeSucceeded or RechargeFailed.
type RechargeOutcome interface {
	rechargeOutcome()
}

type RechargeSucceeded struct{}

type RechargeFailed struct {
	Description string `json:"description"`
}

func (RechargeSucceeded) rechargeOutcome() {}
func (RechargeFailed) rechargeOutcome()    {}
