package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/narenmd/ledgerlite/internal/api"
	"github.com/narenmd/ledgerlite/internal/config"
	"github.com/narenmd/ledgerlite/internal/service"
	"github.com/narenmd/ledgerlite/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	ledgerStore, err := store.New(startCtx, cfg.DBSource)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer ledgerStore.Close()

	if err := ledgerStore.Migrate(startCtx); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	// Each service gets its own logger instance instead of the process-wide
	// default, so output is attributable and capturable in tests.
	accountLog := log.New(os.Stdout, "account-service ", log.LstdFlags)
	transferLog := log.New(os.Stdout, "transfer-service ", log.LstdFlags)
	accessLog := log.New(os.Stdout, "http ", log.LstdFlags)

	accounts := service.NewAccountService(ledgerStore, accountLog)
	transfers := service.NewTransferService(ledgerStore, transferLog)
	handler := api.NewHandler(accounts, transfers)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(handler, accessLog),

		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Server starting on :%s (env=%s)", cfg.Port, cfg.Env)
	log.Fatal(srv.ListenAndServe())
}
