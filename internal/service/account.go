package service

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/narenmd/ledgerlite/internal/model"
	"github.com/narenmd/ledgerlite/internal/store"
	"github.com/shopspring/decimal"
)

// AccountService covers single-account operations: create, point read and
// unconditional recharge.
type AccountService struct {
	store *store.Store
	log   *log.Logger
}

func NewAccountService(s *store.Store, logger *log.Logger) *AccountService {
	return &AccountService{store: s, log: logger}
}

// Create inserts a new account with a zero balance and returns its id.
func (s *AccountService) Create(ctx context.Context) (int64, error) {
	id, err := s.store.CreateAccount(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Printf("new account with id=%d was inserted", id)
	return id, nil
}

// GetByID returns the current snapshot of an account, or found=false when
// no row matches. It never mutates state.
func (s *AccountService) GetByID(ctx context.Context, id int64) (model.Account, bool, error) {
	return s.store.GetAccount(ctx, id)
}

// Recharge increments the account balance by amount inside one transaction.
// The caller validates that amount is positive; no sign check happens here.
//
// There is deliberately no existence check: recharging an id with no row
// updates nothing and still reports RechargeSucceeded. Callers that need the
// account to exist must check via GetByID first.
func (s *AccountService) Recharge(ctx context.Context, id int64, amount decimal.Decimal) model.RechargeOutcome {
	err := s.store.InTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, "UPDATE accounts SET amount = amount + $1 WHERE id = $2", amount, id)
		return err
	})
	if err != nil {
		s.log.Printf("unexpected error recharging account %d: %v", id, err)
		return model.RechargeFailed{Description: "Unexpected error"}
	}
	s.log.Printf("account with id: %d was recharged with amount: %s", id, amount)
	return model.RechargeSucceeded{}
}
