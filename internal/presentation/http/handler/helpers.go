package handler

import (
	"time"

	"github.com/pharmaplus/pos-api/pkg/apperror"
	"github.com/pharmaplus/pos-api/pkg/pagination"
)

// parseDate parses a yyyy-mm-dd query value in the server's local time.
// Register days follow the store clock, not UTC.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, apperror.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return t, nil
}

// paginationFrom builds pagination params from bound filter values.
func paginationFrom(page, perPage int) *pagination.PaginationParams {
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}
