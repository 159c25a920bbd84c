package service

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/narenmd/ledgerlite/internal/model"
	"github.com/narenmd/ledgerlite/internal/store"
	"github.com/shopspring/decimal"
)

// Service tests run against a live Postgres named by LEDGER_TEST_DB and skip
// when it is unset.
func testStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("LEDGER_TEST_DB"))
	if dsn == "" {
		t.Skip("LEDGER_TEST_DB not set; skipping database tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(st.Close)

	if err := st.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newFundedAccount(t *testing.T, accounts *AccountService, initial string) int64 {
	t.Helper()
	ctx := context.Background()

	id, err := accounts.Create(ctx)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	amount := decimal.RequireFromString(initial)
	if amount.IsPositive() {
		if _, failed := accounts.Recharge(ctx, id, amount).(model.RechargeFailed); failed {
			t.Fatalf("funding account %d failed", id)
		}
	}
	return id
}

func balanceOf(t *testing.T, accounts *AccountService, id int64) decimal.Decimal {
	t.Helper()
	account, found, err := accounts.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get account %d: %v", id, err)
	}
	if !found {
		t.Fatalf("account %d not found", id)
	}
	return account.Amount
}
