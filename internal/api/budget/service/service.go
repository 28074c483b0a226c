package budgetService

import (
	"Tripp/internal/api/budget"
	budgetRepository "Tripp/internal/api/budget/repository"
	"Tripp/internal/entity"
	"context"
	"github.com/sirupsen/logrus"
)

type BudgetService interface {
	CreateBudget(c context.Context, user entity.UserLoginData, req budget.CreateBudgetRequest) (budget.CreateBudgetResponse, error)
}

type budgetService struct {
	log  *logrus.Logger
	repo budgetRepository.Repository
}

func New(log *logrus.Logger, repo budgetRepository.Repository) BudgetService {
	return &budgetService{
		log:  log,
		repo: repo,
	}
}
