package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the HTTP surface: ledger routes plus health and metrics.
func NewRouter(h *Handler, logger *log.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(Instrument(logger))

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/accounts", h.CreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}", h.GetAccount).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{id}/deposit/{amount}", h.Deposit).Methods(http.MethodPut)
	r.HandleFunc("/transfer", h.Transfer).Methods(http.MethodPost)

	return r
}
