package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/narenmd/ledgerlite/internal/model"
	"github.com/shopspring/decimal"
)

// AccountOps is the account-service contract the boundary consumes.
type AccountOps interface {
	Create(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Account, bool, error)
	Recharge(ctx context.Context, id int64, amount decimal.Decimal) model.RechargeOutcome
}

// TransferOps is the transfer-service contract the boundary consumes.
type TransferOps interface {
	Transfer(ctx context.Context, req model.TransferRequest) model.TransferOutcome
}

type Handler struct {
	accounts  AccountOps
	transfers TransferOps
}

func NewHandler(accounts AccountOps, transfers TransferOps) *Handler {
	return &Handler{accounts: accounts, transfers: transfers}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateAccount handles POST /accounts. The body is ignored; the response is
// the store-assigned id.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := h.accounts.Create(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "System error creating account")
		return
	}
	respondJSON(w, http.StatusCreated, id)
}

// GetAccount handles GET /accounts/{id}. A found account answers with 202 and
// the snapshot; 404 means no row matched.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Account id must be an integer")
		return
	}

	account, found, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Unexpected error")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}
	respondJSON(w, http.StatusAccepted, account)
}

// Deposit handles PUT /accounts/{id}/deposit/{amount}. Malformed path
// parameters are a client error; a non-positive amount is rejected before the
// service is invoked.
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Account id must be an integer")
		return
	}
	amount, err := decimal.NewFromString(vars["amount"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Deposit amount must be a decimal number")
		return
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		respondError(w, http.StatusNotAcceptable, "Deposit amount must be positive")
		return
	}

	switch outcome := h.accounts.Recharge(r.Context(), id, amount).(type) {
	case model.RechargeSucceeded:
		w.WriteHeader(http.StatusNoContent)
	case model.RechargeFailed:
		respondJSON(w, http.StatusNotAcceptable, outcome)
	default:
		respondError(w, http.StatusInternalServerError, "Unexpected error")
	}
}

type transferPayload struct {
	From   int64           `json:"from"`
	To     int64           `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// Transfer handles POST /transfer. Validation failures never reach the
// transfer algorithm; domain failures come back as a 406 with a description.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var payload transferPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	req, err := model.NewTransferRequest(payload.From, payload.To, payload.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch outcome := h.transfers.Transfer(r.Context(), req).(type) {
	case model.TransferSucceeded:
		w.WriteHeader(http.StatusOK)
	case model.TransferFailed:
		respondJSON(w, http.StatusNotAcceptable, outcome)
	default:
		respondError(w, http.StatusInternalServerError, "Unexpected error")
	}
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}
