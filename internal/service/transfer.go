package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/narenmd/ledgerlite/internal/model"
	"github.com/narenmd/ledgerlite/internal/store"
)

// transferFailure is a domain-level abort carried through the transaction
// helper. It rolls the transaction back like any error but surfaces as a
// TransferFailed outcome instead of "Unexpected error".
type transferFailure struct {
	description string
}

func (f *transferFailure) Error() string { return f.description }

// TransferService moves money between two accounts atomically. All
// concurrency control is delegated to the store: one repeatable-read
// transaction per call, no in-process locks, no automatic retries. A caller
// observing a Failed outcome may retry; under Postgres, conflicting
// concurrent updates on a shared account abort with a serialization failure
// rather than corrupting the balance.
type TransferService struct {
	store *store.Store
	log   *log.Logger
}

func NewTransferService(s *store.Store, logger *log.Logger) *TransferService {
	return &TransferService{store: s, log: logger}
}

// Transfer debits req.From and credits req.To by req.Amount in one
// transaction. Either both balance changes commit or neither does.
func (s *TransferService) Transfer(ctx context.Context, req model.TransferRequest) model.TransferOutcome {
	err := s.store.InTx(ctx, func(tx pgx.Tx) error {
		// Sender must exist with sufficient balance. A miss does not
		// distinguish the two causes.
		var senderID int64
		err := tx.QueryRow(ctx,
			"SELECT id FROM accounts WHERE id = $1 AND amount >= $2",
			req.From, req.Amount,
		).Scan(&senderID)
		if errors.Is(err, pgx.ErrNoRows) {
			return &transferFailure{description: fmt.Sprintf(
				"Charged account with id: %d not found or its balance lower than transferred amount: %s",
				req.From, req.Amount)}
		}
		if err != nil {
			return fmt.Errorf("sender check failed: %w", err)
		}

		var receiverID int64
		err = tx.QueryRow(ctx, "SELECT id FROM accounts WHERE id = $1", req.To).Scan(&receiverID)
		if errors.Is(err, pgx.ErrNoRows) {
			return &transferFailure{description: fmt.Sprintf(
				"Receiver account with id: %d not found", req.To)}
		}
		if err != nil {
			return fmt.Errorf("receiver check failed: %w", err)
		}

		// Relative updates, not overwrite-with-snapshot, so the isolation
		// level alone rules out lost updates.
		_, err = tx.Exec(ctx, "UPDATE accounts SET amount = amount - $1 WHERE id = $2", req.Amount, req.From)
		if err != nil {
			return fmt.Errorf("debit failed: %w", err)
		}
		_, err = tx.Exec(ctx, "UPDATE accounts SET amount = amount + $1 WHERE id = $2", req.Amount, req.To)
		if err != nil {
			return fmt.Errorf("credit failed: %w", err)
		}
		return nil
	})

	if err == nil {
		s.log.Printf("transferred amount: %s from account: %d to account: %d", req.Amount, req.From, req.To)
		return model.TransferSucceeded{}
	}

	var failure *transferFailure
	if errors.As(err, &failure) {
		s.log.Printf("%s", failure.description)
		return model.TransferFailed{Description: failure.description}
	}

	s.log.Printf("unexpected error transferring from %d to %d: %v", req.From, req.To, err)
	return model.TransferFailed{Description: "Unexpected error"}
}
