package budget

import (
	"Tripp/pkg/response"
	"net/http"
)

var (
	ErrTripNotFound = response.NewError(http.StatusNotFound, "trip not found")
	ErrNegativeCost = response.NewError(http.StatusBadRequest, "costs must not be negative")
	ErrCreateBudget = response.NewError(http.StatusInternalServerError, "failed to create budget")
)
