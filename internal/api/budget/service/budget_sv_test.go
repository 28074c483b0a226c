package budgetService

import (
	"Tripp/internal/api/budget"
	budgetRepository "Tripp/internal/api/budget/repository"
	"Tripp/internal/entity"
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBudgets struct {
	createBudget func(c context.Context, b entity.Budget) (int64, error)
	getTripOwner func(c context.Context, tripID int64) (int64, error)
}

func (m *mockBudgets) CreateBudget(c context.Context, b entity.Budget) (int64, error) {
	return m.createBudget(c, b)
}

func (m *mockBudgets) GetTripOwner(c context.Context, tripID int64) (int64, error) {
	return m.getTripOwner(c, tripID)
}

type mockRepository struct {
	budgets *mockBudgets
}

func (m *mockRepository) NewClient(tx bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{
		Budgets:  m.budgets,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var testUser = entity.UserLoginData{ID: 1}

func TestCreateBudget(t *testing.T) {
	t.Run("stores the exact sum of the four costs", func(t *testing.T) {
		var stored entity.Budget
		budgets := &mockBudgets{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return testUser.ID, nil },
			createBudget: func(_ context.Context, b entity.Budget) (int64, error) {
				stored = b
				return 5, nil
			},
		}
		svc := New(testLogger(), &mockRepository{budgets: budgets})

		res, err := svc.CreateBudget(context.Background(), testUser, budget.CreateBudgetRequest{
			TripID:     11,
			TravelCost: decimal.RequireFromString("199.99"),
			HotelCost:  decimal.RequireFromString("450.50"),
			FoodCost:   decimal.RequireFromString("120.01"),
			ExtraCost:  decimal.RequireFromString("0.10"),
		})
		require.NoError(t, err)

		want := decimal.RequireFromString("770.60")
		assert.Equal(t, int64(5), res.BudgetID)
		assert.True(t, res.TotalBudget.Equal(want), "got %s", res.TotalBudget)
		assert.True(t, stored.TotalBudget.Equal(want), "got %s", stored.TotalBudget)
	})

	t.Run("omitted costs default to zero", func(t *testing.T) {
		budgets := &mockBudgets{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return testUser.ID, nil },
			createBudget: func(_ context.Context, _ entity.Budget) (int64, error) { return 6, nil },
		}
		svc := New(testLogger(), &mockRepository{budgets: budgets})

		res, err := svc.CreateBudget(context.Background(), testUser, budget.CreateBudgetRequest{
			TripID:     11,
			TravelCost: decimal.RequireFromString("100"),
		})
		require.NoError(t, err)

		assert.True(t, res.TotalBudget.Equal(decimal.RequireFromString("100")))
	})

	t.Run("rejects negative costs", func(t *testing.T) {
		svc := New(testLogger(), &mockRepository{budgets: &mockBudgets{}})

		_, err := svc.CreateBudget(context.Background(), testUser, budget.CreateBudgetRequest{
			TripID:    11,
			FoodCost:  decimal.RequireFromString("-1"),
			HotelCost: decimal.RequireFromString("50"),
		})
		assert.ErrorIs(t, err, budget.ErrNegativeCost)
	})

	t.Run("a trip owned by someone else reads as not found", func(t *testing.T) {
		budgets := &mockBudgets{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return 999, nil },
		}
		svc := New(testLogger(), &mockRepository{budgets: budgets})

		_, err := svc.CreateBudget(context.Background(), testUser, budget.CreateBudgetRequest{
			TripID: 11,
		})
		assert.ErrorIs(t, err, budget.ErrTripNotFound)
	})

	t.Run("a missing trip reads as not found", func(t *testing.T) {
		budgets := &mockBudgets{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) {
				return 0, budget.ErrTripNotFound
			},
		}
		svc := New(testLogger(), &mockRepository{budgets: budgets})

		_, err := svc.CreateBudget(context.Background(), testUser, budget.CreateBudgetRequest{
			TripID: 404,
		})
		assert.ErrorIs(t, err, budget.ErrTripNotFound)
	})
}
