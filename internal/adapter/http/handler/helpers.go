package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/iho/cashledger/internal/adapter/http/dto"
	"github.com/iho/cashledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError writes err with the status mapDomainError assigns to it.
// Rejections carry their message key, field and arguments; other failures
// are reported without internals.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	status := mapDomainError(err)

	var rej *domain.Rejection
	if errors.As(err, &rej) {
		writeJSON(w, status, dto.ErrorResponse{
			Error:   message,
			Message: rej.Key,
			Field:   rej.Field,
			Args:    rej.Args,
		})
		return
	}

	writeError(w, status, message, domain.KeyException)
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var rej *domain.Rejection
	switch {
	case errors.As(err, &rej) && rej.Key == domain.KeyEntityNotFound:
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return http.StatusConflict
	case rej != nil:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDayQuery parses an optional yyyy-MM-dd query parameter.
func parseDayQuery(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	day, err := domain.ParseDay(val)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
