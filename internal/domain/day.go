package domain

import "time"

// DayLayout is the ISO date format used to persist business days.
const DayLayout = "2006-01-02"

// TruncateDay drops the clock part of t, keeping its calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDay builds a UTC calendar day.
func NewDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO date (2006-01-02).
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}

// FormatDay renders day as an ISO date.
func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}

// IsWeekend reports whether day is a Saturday or Sunday.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayTo returns the last instant of day, for inclusive date-range filters.
func DayTo(day time.Time) time.Time {
	return TruncateDay(day).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// TimePoint pairs a business day with a wall-clock timestamp. The two differ
// when the business day does not roll over at midnight.
type TimePoint struct {
	Day  time.Time
	Time time.Time
}

// BeforeDay reports day < target.
func (p TimePoint) BeforeDay(target time.Time) bool {
	return p.Day.Before(TruncateDay(target))
}

// BeforeEqualsDay reports day <= target.
func (p TimePoint) BeforeEqualsDay(target time.Time) bool {
	return !p.Day.After(TruncateDay(target))
}

// AfterEqualsDay reports day >= target.
func (p TimePoint) AfterEqualsDay(target time.Time) bool {
	return !p.Day.Before(TruncateDay(target))
}

// EqualsDay reports day == target.
func (p TimePoint) EqualsDay(target time.Time) bool {
	return p.Day.Equal(TruncateDay(target))
}
