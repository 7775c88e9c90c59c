package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/cashledger/internal/adapter/http/dto"
	"github.com/iho/cashledger/internal/domain"
)

// SystemService defines the behavior needed by SystemHandler.
type SystemService interface {
	BusinessDay(ctx context.Context) (time.Time, error)
	FindAuditRecords(ctx context.Context, filter domain.AuditFilter, page domain.Pagination) (*domain.PagingList[*domain.AuditRecord], error)
	FindSetting(ctx context.Context, id string) (*domain.AppSetting, error)
	ChangeSetting(ctx context.Context, id, value string) error
	RegisterHolidays(ctx context.Context, reg domain.RegHolidays) error
	RegisterFiAccount(ctx context.Context, account *domain.FiAccount) error
	RegisterSelfFiAccount(ctx context.Context, account *domain.SelfFiAccount) error
}

// SystemHandler serves calendar, audit and master data operations.
type SystemHandler struct {
	systemUC SystemService
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(systemUC SystemService) *SystemHandler {
	return &SystemHandler{systemUC: systemUC}
}

// BusinessDay returns the current business day.
func (h *SystemHandler) BusinessDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.systemUC.BusinessDay(r.Context())
	if err != nil {
		writeDomainError(w, "failed to get business day", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BusinessDayResponse{Day: domain.FormatDay(day)})
}

// AuditRecords lists audit records matching the query filters.
func (h *SystemHandler) AuditRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := parseDayQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from day", err.Error())
		return
	}
	to, err := parseDayQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to day", err.Error())
		return
	}

	filter := domain.AuditFilter{
		Kind:     domain.AuditKind(q.Get("kind")),
		Category: q.Get("category"),
		Status:   domain.ActionStatus(q.Get("status")),
		Keyword:  q.Get("keyword"),
		FromDay:  from,
		ToDay:    to,
	}
	page := domain.Pagination{
		Page: parseIntQuery(r, "page", 1),
		Size: parseIntQuery(r, "size", 20),
	}

	list, err := h.systemUC.FindAuditRecords(r.Context(), filter, page)
	if err != nil {
		writeDomainError(w, "failed to list audit records", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditRecordsFromDomain(list))
}

// Setting returns one application setting.
func (h *SystemHandler) Setting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.systemUC.FindSetting(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to get setting", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SettingFromDomain(setting))
}

// ChangeSetting stores a setting value, creating the setting if needed.
func (h *SystemHandler) ChangeSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangeSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.systemUC.ChangeSetting(r.Context(), chi.URLParam(r, "id"), req.Value); err != nil {
		writeDomainError(w, "failed to change setting", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterHolidays replaces one year's holidays of a category.
func (h *SystemHandler) RegisterHolidays(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterHolidaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	reg, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid holiday", err.Error())
		return
	}

	if err := h.systemUC.RegisterHolidays(r.Context(), reg); err != nil {
		writeDomainError(w, "failed to register holidays", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterFiAccount stores a customer's bank account.
func (h *SystemHandler) RegisterFiAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.FiAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account := req.ToDomain()
	if err := h.systemUC.RegisterFiAccount(r.Context(), account); err != nil {
		writeDomainError(w, "failed to register fi account", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreatedResponse{ID: account.ID})
}

// RegisterSelfFiAccount stores one of our own bank accounts.
func (h *SystemHandler) RegisterSelfFiAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.SelfFiAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account := req.ToDomain()
	if err := h.systemUC.RegisterSelfFiAccount(r.Context(), account); err != nil {
		writeDomainError(w, "failed to register self fi account", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreatedResponse{ID: account.ID})
}
