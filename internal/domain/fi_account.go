package domain

// FI account categories.
const (
	FiAccountCategoryCashOut = "cashOut"
)

// FiAccount is a customer's account at an external financial institution.
type FiAccount struct {
	ID          string
	AccountID   string
	Category    string
	Currency    string
	FiCode      string
	FiAccountID string
}

// SelfFiAccount is one of our own accounts at a financial institution.
type SelfFiAccount struct {
	ID          string
	Category    string
	Currency    string
	FiCode      string
	FiAccountID string
}
