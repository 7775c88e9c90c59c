package domain

import (
	"testing"
	"time"
)

func TestParseFormatDay(t *testing.T) {
	day, err := ParseDay("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.Equal(NewDay(2024, time.February, 29)) {
		t.Errorf("unexpected day %v", day)
	}
	if got := FormatDay(day); got != "2024-02-29" {
		t.Errorf("expected round trip, got %q", got)
	}

	if _, err := ParseDay("2024-13-01"); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestTruncateDay(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 23, 59, 1, 5, time.UTC)
	if got := TruncateDay(ts); !got.Equal(NewDay(2024, time.March, 4)) {
		t.Errorf("unexpected truncation %v", got)
	}
	if got := DayTo(ts); !got.Equal(NewDay(2024, time.March, 5).Add(-time.Nanosecond)) {
		t.Errorf("unexpected day end %v", got)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		day  time.Time
		want bool
	}{
		{NewDay(2024, time.March, 1), false}, // Friday
		{NewDay(2024, time.March, 2), true},
		{NewDay(2024, time.March, 3), true},
		{NewDay(2024, time.March, 4), false},
	}
	for _, tt := range tests {
		if got := IsWeekend(tt.day); got != tt.want {
			t.Errorf("IsWeekend(%s): expected %v, got %v", FormatDay(tt.day), tt.want, got)
		}
	}
}

func TestTimePoint_Comparisons(t *testing.T) {
	p := TimePoint{Day: NewDay(2024, time.March, 4), Time: time.Now()}
	same := time.Date(2024, time.March, 4, 15, 0, 0, 0, time.UTC)
	next := NewDay(2024, time.March, 5)

	if !p.EqualsDay(same) {
		t.Error("expected equal day ignoring clock")
	}
	if p.BeforeDay(same) || !p.BeforeDay(next) {
		t.Error("BeforeDay mismatch")
	}
	if !p.BeforeEqualsDay(same) || !p.BeforeEqualsDay(next) {
		t.Error("BeforeEqualsDay mismatch")
	}
	if !p.AfterEqualsDay(same) || p.AfterEqualsDay(next) {
		t.Error("AfterEqualsDay mismatch")
	}
}
