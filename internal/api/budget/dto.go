package budget

import "github.com/shopspring/decimal"

// Costs default to zero when absent; only the trip reference is mandatory.
type CreateBudgetRequest struct {
	TripID     int64           `json:"tripId" validate:"required"`
	TravelCost decimal.Decimal `json:"travelCost"`
	HotelCost  decimal.Decimal `json:"hotelCost"`
	FoodCost   decimal.Decimal `json:"foodCost"`
	ExtraCost  decimal.Decimal `json:"extraCost"`
	Notes      string          `json:"notes"`
}

type CreateBudgetResponse struct {
	BudgetID    int64           `json:"budgetId"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
}
