package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/iho/cashledger/internal/adapter/http/dto"
	"github.com/iho/cashledger/internal/domain"
)

// AssetAdminService defines the behavior needed by AssetAdminHandler.
type AssetAdminService interface {
	FindWithdrawals(ctx context.Context, filter domain.WithdrawalFilter, page domain.Pagination) (*domain.PagingList[*domain.Withdrawal], error)
}

// AssetAdminHandler serves operator queries over withdrawal requests.
type AssetAdminHandler struct {
	adminUC AssetAdminService
}

// NewAssetAdminHandler creates a new AssetAdminHandler.
func NewAssetAdminHandler(adminUC AssetAdminService) *AssetAdminHandler {
	return &AssetAdminHandler{adminUC: adminUC}
}

// Withdrawals lists withdrawal requests by currency, status and update day
// range. status takes a comma separated list.
func (h *AssetAdminHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.WithdrawalFilter{Currency: q.Get("currency")}
	if raw := q.Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := domain.ActionStatus(strings.TrimSpace(s))
			if !status.IsValid() {
				writeError(w, http.StatusBadRequest, "invalid status", string(status))
				return
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	from, err := parseDayQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from day", err.Error())
		return
	}
	if from != nil {
		filter.UpdatedFrom = *from
	}
	to, err := parseDayQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to day", err.Error())
		return
	}
	if to != nil {
		filter.UpdatedTo = *to
	}

	page := domain.Pagination{
		Page: parseIntQuery(r, "page", 1),
		Size: parseIntQuery(r, "size", 20),
	}

	list, err := h.adminUC.FindWithdrawals(r.Context(), filter, page)
	if err != nil {
		writeDomainError(w, "failed to list withdrawals", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawalsPageFromDomain(list))
}
