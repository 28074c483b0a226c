package maps

import "Tripp/pkg/geocode"

type CoordinatesResponse struct {
	Coordinates *geocode.LatLng `json:"coordinates"`
}

type SaveLocationRequest struct {
	TripID      int64  `json:"tripId" validate:"required"`
	Destination string `json:"destination" validate:"required,max=100"`
	Notes       string `json:"notes"`
}

type SaveLocationResponse struct {
	LocationID  int64          `json:"locationId"`
	Coordinates geocode.LatLng `json:"coordinates"`
}

type LocationResponse struct {
	ID        int64   `json:"id"`
	TripID    int64   `json:"tripId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}
