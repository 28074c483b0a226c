package entity

import "time"

type Location struct {
	ID        int64
	TripID    int64
	Latitude  float64
	Longitude float64
	Notes     string
	CreatedAt time.Time
}
