package budgetService

import (
	"Tripp/internal/api/budget"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *budgetService) CreateBudget(c context.Context, user entity.UserLoginData, req budget.CreateBudgetRequest) (budget.CreateBudgetResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if req.TravelCost.IsNegative() || req.HotelCost.IsNegative() || req.FoodCost.IsNegative() || req.ExtraCost.IsNegative() {
		return budget.CreateBudgetResponse{}, budget.ErrNegativeCost
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return budget.CreateBudgetResponse{}, err
	}

	ownerID, err := repo.Budgets.GetTripOwner(c, req.TripID)
	if err != nil {
		return budget.CreateBudgetResponse{}, err
	}
	// A foreign trip is reported exactly like an absent one.
	if ownerID != user.ID {
		return budget.CreateBudgetResponse{}, budget.ErrTripNotFound
	}

	b := entity.Budget{
		TripID:     req.TripID,
		TravelCost: req.TravelCost,
		HotelCost:  req.HotelCost,
		FoodCost:   req.FoodCost,
		ExtraCost:  req.ExtraCost,
		Notes:      req.Notes,
	}
	// The total is fixed at creation time and never recomputed afterwards.
	b.TotalBudget = b.Total()

	budgetID, err := repo.Budgets.CreateBudget(c, b)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create budget")
		return budget.CreateBudgetResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"budget_id":  budgetID,
		"trip_id":    req.TripID,
	}).Info("Budget created")

	return budget.CreateBudgetResponse{
		BudgetID:    budgetID,
		TotalBudget: b.TotalBudget,
	}, nil
}
