package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          int64
	TripID      int64
	Category    string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// ExpenseComparison is the advisory budget-vs-spent figure returned alongside
// a newly recorded expense. It is recomputed fresh on every call and is not
// transactional with the insert.
type ExpenseComparison struct {
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}
