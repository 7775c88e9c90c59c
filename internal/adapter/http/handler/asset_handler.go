package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/adapter/http/dto"
	"github.com/iho/cashledger/internal/domain"
)

// AssetService defines the behavior needed by AssetHandler.
type AssetService interface {
	Withdraw(ctx context.Context, reg domain.RegWithdrawal) (*domain.Withdrawal, error)
	CancelWithdrawal(ctx context.Context, id string) (*domain.Withdrawal, error)
	FindPendingWithdrawals(ctx context.Context, accountID string) ([]*domain.Withdrawal, error)
	Available(ctx context.Context, accountID, currency string, valueDay time.Time) (decimal.Decimal, error)
}

// AssetHandler handles withdrawal requests and balance queries.
type AssetHandler struct {
	assetUC AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetUC AssetService) *AssetHandler {
	return &AssetHandler{assetUC: assetUC}
}

// Withdraw accepts a withdrawal request. For the user role the account is
// the acting user's, whatever the body names.
func (h *AssetHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	reg := req.ToDomain()
	// customers always withdraw from their own account
	if actor := domain.ActorFrom(r.Context()); actor.Role == domain.RoleUser {
		reg.AccountID = actor.ID
	}

	withdrawal, err := h.assetUC.Withdraw(r.Context(), reg)
	if err != nil {
		writeDomainError(w, "failed to withdraw", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.WithdrawalFromDomain(withdrawal))
}

// Cancel cancels a pending withdrawal request.
func (h *AssetHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing withdrawal ID", "")
		return
	}

	withdrawal, err := h.assetUC.CancelWithdrawal(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to cancel withdrawal", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawalFromDomain(withdrawal))
}

// PendingWithdrawals lists the account's unfinished withdrawal requests.
func (h *AssetHandler) PendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	items, err := h.assetUC.FindPendingWithdrawals(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to list withdrawals", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawalsFromDomain(items))
}

// Available returns the amount the account may withdraw for a value day.
func (h *AssetHandler) Available(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		writeError(w, http.StatusBadRequest, "missing currency", "")
		return
	}

	day, err := parseDayQuery(r, "value_day")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid value day", err.Error())
		return
	}
	if day == nil {
		writeError(w, http.StatusBadRequest, "missing value day", "")
		return
	}

	amount, err := h.assetUC.Available(r.Context(), accountID, currency, *day)
	if err != nil {
		writeDomainError(w, "failed to compute available amount", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AvailableResponse{
		AccountID: accountID,
		Currency:  currency,
		ValueDay:  domain.FormatDay(*day),
		Amount:    amount,
	})
}
