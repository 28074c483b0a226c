package expenseService

import (
	"Tripp/internal/api/expense"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

// AddExpense records the expense, then re-reads budget total and spent sum for
// the advisory comparison. The re-read is intentionally outside any
// transaction: the figure is advisory and recomputed fresh on every call.
func (s *expenseService) AddExpense(c context.Context, user entity.UserLoginData, req expense.AddExpenseRequest) (expense.AddExpenseResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if req.Amount.IsNegative() {
		return expense.AddExpenseResponse{}, expense.ErrNegativeAmount
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return expense.AddExpenseResponse{}, err
	}

	ownerID, err := repo.Expenses.GetTripOwner(c, req.TripID)
	if err != nil {
		return expense.AddExpenseResponse{}, err
	}
	if ownerID != user.ID {
		return expense.AddExpenseResponse{}, expense.ErrTripNotFound
	}

	expenseID, err := repo.Expenses.CreateExpense(c, entity.Expense{
		TripID:      req.TripID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return expense.AddExpenseResponse{}, err
	}

	budgetTotal, err := repo.Expenses.GetBudgetTotalByTripID(c, req.TripID)
	if err != nil {
		return expense.AddExpenseResponse{}, err
	}

	spent, err := repo.Expenses.SumExpensesByTripID(c, req.TripID)
	if err != nil {
		return expense.AddExpenseResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expense_id": expenseID,
		"trip_id":    req.TripID,
	}).Info("Expense recorded")

	return expense.AddExpenseResponse{
		ExpenseID: expenseID,
		Comparison: expense.ComparisonResponse{
			Budget:    budgetTotal,
			Spent:     spent,
			Remaining: budgetTotal.Sub(spent),
		},
	}, nil
}
