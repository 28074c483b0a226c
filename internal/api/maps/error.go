package maps

import (
	"Tripp/pkg/response"
	"net/http"
)

var (
	ErrDestinationRequired = response.NewError(http.StatusBadRequest, "destination is required")
	ErrTripNotFound        = response.NewError(http.StatusNotFound, "trip not found")
	ErrNoCoordinates       = response.NewError(http.StatusNotFound, "no coordinates found for destination")
	// ErrGeocodeFailed deliberately discards the upstream error detail.
	ErrGeocodeFailed = response.NewError(http.StatusBadGateway, "failed to fetch location data")
)
