package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func point(day time.Time) TimePoint {
	return TimePoint{Day: day, Time: day.Add(9 * time.Hour)}
}

func TestRegCashflow_Validate(t *testing.T) {
	today := NewDay(2026, 3, 2)

	tests := []struct {
		name     string
		valueDay time.Time
		currency string
		wantErr  error
	}{
		{"value day today", today, "USD", nil},
		{"value day in future", today.AddDate(0, 0, 3), "USD", nil},
		{"value day in past", today.AddDate(0, 0, -1), "USD", ErrCashflowPastValue},
		{"unknown currency", today, "???", ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := RegCashflow{AccountID: "acc", Currency: tt.currency, Amount: decimal.NewFromInt(10), ValueDay: tt.valueDay}
			err := reg.Validate(point(today))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegCashflow_ValidatePastValueDayIsFieldBound(t *testing.T) {
	today := NewDay(2026, 3, 2)
	reg := RegCashflow{Currency: "USD", ValueDay: today.AddDate(0, 0, -1)}

	var rej *Rejection
	if !errors.As(reg.Validate(point(today)), &rej) {
		t.Fatal("expected rejection")
	}
	if rej.Field != "valueDay" {
		t.Errorf("expected field valueDay, got %q", rej.Field)
	}
}

func TestCashflow_Realize(t *testing.T) {
	today := NewDay(2026, 3, 2)

	tests := []struct {
		name     string
		valueDay time.Time
		status   ActionStatus
		wantErr  error
	}{
		{"due and unprocessed", today, StatusUnprocessed, nil},
		{"overdue and in error", today.AddDate(0, 0, -2), StatusError, nil},
		{"not yet due", today.AddDate(0, 0, 1), StatusUnprocessed, ErrCashflowNotDue},
		{"already processed", today, StatusProcessed, ErrAlreadyProcessed},
		{"processing", today, StatusProcessing, ErrAlreadyProcessed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf := &Cashflow{ValueDay: tt.valueDay, Status: tt.status}
			err := cf.Realize(point(today), "system")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if cf.Status != StatusProcessed {
					t.Errorf("expected processed, got %s", cf.Status)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if cf.Status != tt.status {
				t.Errorf("status changed on rejection: %s", cf.Status)
			}
		})
	}
}

func TestCashflow_MarkError(t *testing.T) {
	today := NewDay(2026, 3, 2)

	cf := &Cashflow{Status: StatusProcessing}
	if err := cf.MarkError(point(today), "system"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cf.Status != StatusError {
		t.Errorf("expected error status, got %s", cf.Status)
	}

	done := &Cashflow{Status: StatusCancelled}
	if err := done.MarkError(point(today), "system"); !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
	}
}

func TestNewCashflow_DefaultsEventDayToToday(t *testing.T) {
	today := NewDay(2026, 3, 2)
	cf := NewCashflow("cf1", RegCashflow{AccountID: "acc", Currency: "USD", ValueDay: today}, point(today), "user1")

	if !cf.EventDay.Equal(today) {
		t.Errorf("expected event day %s, got %s", today, cf.EventDay)
	}
	if cf.Status != StatusUnprocessed {
		t.Errorf("expected unprocessed, got %s", cf.Status)
	}
	if cf.CreatedBy != "user1" {
		t.Errorf("expected creator user1, got %s", cf.CreatedBy)
	}
}
