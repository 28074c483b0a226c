package expenseService

import (
	"Tripp/internal/api/expense"
	expenseRepository "Tripp/internal/api/expense/repository"
	"Tripp/internal/entity"
	"context"
	"github.com/sirupsen/logrus"
)

type ExpenseService interface {
	AddExpense(c context.Context, user entity.UserLoginData, req expense.AddExpenseRequest) (expense.AddExpenseResponse, error)
}

type expenseService struct {
	log  *logrus.Logger
	repo expenseRepository.Repository
}

func New(log *logrus.Logger, repo expenseRepository.Repository) ExpenseService {
	return &expenseService{
		log:  log,
		repo: repo,
	}
}
