package entity

import "time"

const (
	TripPurposeVacation = "vacation"
	TripPurposeBusiness = "business"
	TripPurposeOther    = "other"
)

type Trip struct {
	ID          int64
	UserID      int64
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Purpose     string
	Companions  []string
	Notes       string
	CreatedAt   time.Time
}

// TripUpdate carries the subset of trip fields supplied in an update request.
// Destination, StartDate, EndDate and Purpose count as supplied when non-zero;
// Companions and Notes distinguish "absent" (nil) from "set to empty".
type TripUpdate struct {
	Destination string
	StartDate   *time.Time
	EndDate     *time.Time
	Purpose     string
	Companions  *[]string
	Notes       *string
}

func (u TripUpdate) Empty() bool {
	return u.Destination == "" &&
		u.StartDate == nil &&
		u.EndDate == nil &&
		u.Purpose == "" &&
		u.Companions == nil &&
		u.Notes == nil
}
