package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/cashledger/internal/domain"
)

func TestRegisterHolidaysRequestToDomain(t *testing.T) {
	req := RegisterHolidaysRequest{
		Year:  2026,
		Items: []HolidayItem{{Day: "2026-01-01", Name: "New Year"}, {Day: "2026-05-05"}},
	}

	reg, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHolidayCategory, reg.CategoryOrDefault())
	require.Len(t, reg.Items, 2)
	assert.Equal(t, domain.NewDay(2026, 1, 1), reg.Items[0].Day)
	assert.Equal(t, "New Year", reg.Items[0].Name)

	req.Items = append(req.Items, HolidayItem{Day: "05/06/2026"})
	_, err = req.ToDomain()
	assert.Error(t, err)
}

func TestFiAccountRequestsDefaultCategory(t *testing.T) {
	fi := (&FiAccountRequest{AccountID: "A", Currency: "JPY"}).ToDomain()
	assert.Equal(t, domain.FiAccountCategoryCashOut, fi.Category)

	self := (&SelfFiAccountRequest{Category: "cashIn", Currency: "JPY"}).ToDomain()
	assert.Equal(t, "cashIn", self.Category)
}
