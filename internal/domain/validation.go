package domain

import (
	"strings"
)

// MaxAccountIDLength bounds account identifiers.
const MaxAccountIDLength = 32

// ValidateAccountID checks an account identifier.
func ValidateAccountID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > MaxAccountIDLength {
		return RejectField("accountId", "error.domain.AccountId")
	}
	return nil
}
