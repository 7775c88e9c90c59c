package domain

// KeyBusinessDay holds the overridden business day in ISO date form.
const KeyBusinessDay = "system.businessDay.day"

// AppSetting is a persisted key/value pair.
type AppSetting struct {
	ID       string
	Category string
	Outline  string
	Value    string
}
