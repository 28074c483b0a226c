package expense

import (
	"Tripp/pkg/response"
	"net/http"
)

var (
	ErrTripNotFound   = response.NewError(http.StatusNotFound, "trip not found")
	ErrNegativeAmount = response.NewError(http.StatusBadRequest, "amount must not be negative")
)
