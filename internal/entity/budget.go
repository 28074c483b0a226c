package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID          int64
	TripID      int64
	TravelCost  decimal.Decimal
	HotelCost   decimal.Decimal
	FoodCost    decimal.Decimal
	ExtraCost   decimal.Decimal
	TotalBudget decimal.Decimal
	Notes       string
	CreatedAt   time.Time
}

// Total is the derived budget total: the exact sum of the four cost
// categories. It is computed once at creation time and never edited.
func (b Budget) Total() decimal.Decimal {
	return b.TravelCost.Add(b.HotelCost).Add(b.FoodCost).Add(b.ExtraCost)
}
