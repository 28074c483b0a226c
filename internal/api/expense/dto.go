package expense

import "github.com/shopspring/decimal"

type AddExpenseRequest struct {
	TripID      int64           `json:"tripId" validate:"required"`
	Category    string          `json:"category" validate:"required,max=50"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type ComparisonResponse struct {
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}

type AddExpenseResponse struct {
	ExpenseID  int64              `json:"expenseId"`
	Comparison ComparisonResponse `json:"comparison"`
}
