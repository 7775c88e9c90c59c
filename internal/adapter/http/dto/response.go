package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Field   string   `json:"field,omitempty"`
	Args    []string `json:"args,omitempty"`
}

// WithdrawalResponse represents a withdrawal request in API responses.
type WithdrawalResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Currency        string          `json:"currency"`
	Amount          decimal.Decimal `json:"amount"`
	RequestDay      string          `json:"request_day"`
	EventDay        string          `json:"event_day"`
	ValueDay        string          `json:"value_day"`
	TargetFiCode    string          `json:"target_fi_code"`
	TargetFiAccount string          `json:"target_fi_account"`
	SelfFiCode      string          `json:"self_fi_code"`
	SelfFiAccount   string          `json:"self_fi_account"`
	Status          string          `json:"status"`
	CashflowID      *string         `json:"cashflow_id,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// WithdrawalFromDomain converts a domain withdrawal to response.
func WithdrawalFromDomain(w *domain.Withdrawal) *WithdrawalResponse {
	return &WithdrawalResponse{
		ID:              w.ID,
		AccountID:       w.AccountID,
		Currency:        w.Currency,
		Amount:          w.AbsAmount,
		RequestDay:      domain.FormatDay(w.RequestDay),
		EventDay:        domain.FormatDay(w.EventDay),
		ValueDay:        domain.FormatDay(w.ValueDay),
		TargetFiCode:    w.TargetFiCode,
		TargetFiAccount: w.TargetFiAccount,
		SelfFiCode:      w.SelfFiCode,
		SelfFiAccount:   w.SelfFiAccount,
		Status:          string(w.Status),
		CashflowID:      w.CashflowID,
		UpdatedAt:       w.UpdatedAt,
	}
}

// WithdrawalsFromDomain converts domain withdrawals to responses.
func WithdrawalsFromDomain(items []*domain.Withdrawal) []*WithdrawalResponse {
	result := make([]*WithdrawalResponse, len(items))
	for i, w := range items {
		result[i] = WithdrawalFromDomain(w)
	}
	return result
}

// AuditRecordResponse represents an audit record in API responses.
type AuditRecordResponse struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	ActorID     string     `json:"actor_id"`
	Role        string     `json:"role"`
	Source      string     `json:"source,omitempty"`
	Category    string     `json:"category"`
	Message     string     `json:"message"`
	Status      string     `json:"status"`
	ErrorReason string     `json:"error_reason,omitempty"`
	ElapsedMs   int64      `json:"elapsed_ms"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// AuditRecordFromDomain converts a domain audit record to response.
func AuditRecordFromDomain(a *domain.AuditRecord) *AuditRecordResponse {
	return &AuditRecordResponse{
		ID:          a.ID,
		Kind:        string(a.Kind),
		ActorID:     a.ActorID,
		Role:        string(a.Role),
		Source:      a.Source,
		Category:    a.Category,
		Message:     a.Message,
		Status:      string(a.Status),
		ErrorReason: a.ErrorReason,
		ElapsedMs:   a.ElapsedMs,
		StartedAt:   a.StartedAt,
		EndedAt:     a.EndedAt,
	}
}

// PageResponse wraps a page of items.
type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// AuditRecordsFromDomain converts a page of audit records to response.
func AuditRecordsFromDomain(list *domain.PagingList[*domain.AuditRecord]) *PageResponse[*AuditRecordResponse] {
	items := make([]*AuditRecordResponse, len(list.Items))
	for i, a := range list.Items {
		items[i] = AuditRecordFromDomain(a)
	}
	return &PageResponse[*AuditRecordResponse]{
		Items: items,
		Page:  list.Page.Page,
		Size:  list.Page.Size,
		Total: list.Page.Total,
	}
}

// BusinessDayResponse represents the current business day.
type BusinessDayResponse struct {
	Day string `json:"day"`
}

// AvailableResponse represents the withdrawable amount of an account.
type AvailableResponse struct {
	AccountID string          `json:"account_id"`
	Currency  string          `json:"currency"`
	ValueDay  string          `json:"value_day"`
	Amount    decimal.Decimal `json:"amount"`
}

// WithdrawalsPageFromDomain converts a page of withdrawals to response.
func WithdrawalsPageFromDomain(list *domain.PagingList[*domain.Withdrawal]) *PageResponse[*WithdrawalResponse] {
	return &PageResponse[*WithdrawalResponse]{
		Items: WithdrawalsFromDomain(list.Items),
		Page:  list.Page.Page,
		Size:  list.Page.Size,
		Total: list.Page.Total,
	}
}

// SettingResponse represents an application setting.
type SettingResponse struct {
	ID       string `json:"id"`
	Category string `json:"category,omitempty"`
	Outline  string `json:"outline,omitempty"`
	Value    string `json:"value"`
}

// SettingFromDomain converts a domain setting to response.
func SettingFromDomain(s *domain.AppSetting) *SettingResponse {
	return &SettingResponse{ID: s.ID, Category: s.Category, Outline: s.Outline, Value: s.Value}
}

// CreatedResponse carries the id of a newly registered entity.
type CreatedResponse struct {
	ID string `json:"id"`
}
