package weather

import (
	"Tripp/pkg/response"
	"net/http"
)

var (
	ErrInvalidCoordinates = response.NewError(http.StatusBadRequest, "lat and lon must be valid numbers")
	ErrInvalidDate        = response.NewError(http.StatusBadRequest, "startDate and endDate must use the YYYY-MM-DD format")
	ErrInvalidDateRange   = response.NewError(http.StatusBadRequest, "endDate must not be before startDate")
	// ErrForecastFailed deliberately discards the upstream error detail.
	ErrForecastFailed = response.NewError(http.StatusBadGateway, "failed to fetch weather data")
)
