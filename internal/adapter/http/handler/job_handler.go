package handler

import (
	"context"
	"net/http"
)

// SettlementService defines the behavior needed by JobHandler.
type SettlementService interface {
	CloseWithdrawals(ctx context.Context) error
	RealizeCashflows(ctx context.Context) error
	AdvanceBusinessDay(ctx context.Context) error
}

// JobGuard grants an exclusive lease on a job across instances.
type JobGuard interface {
	Acquire(ctx context.Context, job string) (release func(), ok bool, err error)
}

// JobHandler triggers settlement jobs.
type JobHandler struct {
	settlement SettlementService
	guard      JobGuard
}

// NewJobHandler creates a new JobHandler. guard may be nil.
func NewJobHandler(settlement SettlementService, guard JobGuard) *JobHandler {
	return &JobHandler{settlement: settlement, guard: guard}
}

// CloseWithdrawals processes the withdrawal requests due today.
func (h *JobHandler) CloseWithdrawals(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "close-withdrawals", h.settlement.CloseWithdrawals)
}

// RealizeCashflows realizes the cashflows valued today.
func (h *JobHandler) RealizeCashflows(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "realize-cashflows", h.settlement.RealizeCashflows)
}

// AdvanceBusinessDay moves the business day forward.
func (h *JobHandler) AdvanceBusinessDay(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "advance-business-day", h.settlement.AdvanceBusinessDay)
}

func (h *JobHandler) run(w http.ResponseWriter, r *http.Request, job string, fn func(ctx context.Context) error) {
	if h.guard != nil {
		release, ok, err := h.guard.Acquire(r.Context(), job)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "job lease unavailable", err.Error())
			return
		}
		if !ok {
			writeError(w, http.StatusConflict, "job already running", job)
			return
		}
		defer release()
	}

	// The job keeps running when the client goes away.
	if err := fn(context.WithoutCancel(r.Context())); err != nil {
		writeDomainError(w, job+" failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
