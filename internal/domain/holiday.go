package domain

import "time"

// DefaultHolidayCategory is used when no category is given.
const DefaultHolidayCategory = "default"

// Holiday is a non-business day for a calendar category.
type Holiday struct {
	ID       string
	Category string
	Day      time.Time
	Name     string
}

// RegHoliday is one entry of a yearly holiday registration.
type RegHoliday struct {
	Day  time.Time
	Name string
}

// RegHolidays replaces all holidays of Year in Category.
type RegHolidays struct {
	Category string
	Year     int
	Items    []RegHoliday
}

// CategoryOrDefault returns Category, falling back to the default category.
func (r RegHolidays) CategoryOrDefault() string {
	if r.Category == "" {
		return DefaultHolidayCategory
	}
	return r.Category
}

// Validate checks that every item falls within Year.
func (r RegHolidays) Validate() error {
	for _, item := range r.Items {
		if item.Day.Year() != r.Year {
			return RejectField("year", "error.Holiday.year", FormatDay(item.Day))
		}
	}
	return nil
}
