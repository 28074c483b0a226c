package trip

import jsoniter "github.com/json-iterator/go"

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

// OptionalStringList records whether its key appeared in the payload at all.
// An explicit null counts as supplied with an empty value, so it clears the
// column rather than being read as absent.
type OptionalStringList struct {
	Set   bool
	Value []string
}

func (o *OptionalStringList) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil

	if string(data) == "null" {
		return nil
	}
	return jsoniter.Unmarshal(data, &o.Value)
}

// OptionalString is the scalar counterpart of OptionalStringList; null reads
// as a supplied empty string.
type OptionalString struct {
	Set   bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = ""

	if string(data) == "null" {
		return nil
	}
	return jsoniter.Unmarshal(data, &o.Value)
}

type CreateTripRequest struct {
	Destination string   `json:"destination" validate:"required,max=100"`
	StartDate   string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	Purpose     string   `json:"purpose" validate:"required,oneof=vacation business other"`
	Companions  []string `json:"companions"`
	Notes       string   `json:"notes"`
}

// UpdateTripRequest accepts any subset of trip fields. Destination, StartDate,
// EndDate and Purpose count as supplied when non-empty; Companions and Notes
// count as supplied whenever their key appears in the payload, null included.
type UpdateTripRequest struct {
	Destination string             `json:"destination" validate:"omitempty,max=100"`
	StartDate   string             `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string             `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Purpose     string             `json:"purpose" validate:"omitempty,oneof=vacation business other"`
	Companions  OptionalStringList `json:"companions"`
	Notes       OptionalString     `json:"notes"`
}

type CreateTripResponse struct {
	TripID  int64  `json:"tripId"`
	Message string `json:"message"`
}

type TripResponse struct {
	ID          int64    `json:"id"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Purpose     string   `json:"purpose"`
	Companions  []string `json:"companions"`
	Notes       string   `json:"notes,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

type TripListItem struct {
	ID          int64  `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Purpose     string `json:"purpose"`
	CreatedAt   string `json:"createdAt"`
}

type ListTripsQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

type Pagination struct {
	Total        int64 `json:"total"`
	TotalPages   int64 `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type ListTripsResponse struct {
	Data       []TripListItem `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
