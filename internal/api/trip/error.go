package trip

import (
	"Tripp/pkg/response"
	"net/http"
)

var (
	// ErrTripNotFound also covers trips owned by another user: their
	// existence is never disclosed.
	ErrTripNotFound     = response.NewError(http.StatusNotFound, "trip not found")
	ErrInvalidDateRange = response.NewError(http.StatusBadRequest, "end date must not be before start date")
	ErrInvalidDate      = response.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrNoFieldsToUpdate = response.NewError(http.StatusBadRequest, "no fields to update")
	ErrInvalidSortField = response.NewError(http.StatusBadRequest, "invalid sort field")
	ErrInvalidSortOrder = response.NewError(http.StatusBadRequest, "invalid sort order")
)
