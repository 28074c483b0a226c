package expenseRepository

import (
	"Tripp/internal/api/expense"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func (r *expenseRepository) CreateExpense(c context.Context, e entity.Expense) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	var description interface{}
	if e.Description != "" {
		description = e.Description
	}

	argsKV := map[string]interface{}{
		"trip_id":     e.TripID,
		"category":    e.Category,
		"amount":      e.Amount,
		"description": description,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateExpense")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")
		return 0, err
	}

	return id, nil
}

// GetBudgetTotalByTripID returns the trip's planned total, or zero when no
// budget row exists.
func (r *expenseRepository) GetBudgetTotalByTripID(c context.Context, tripID int64) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetBudgetTotalByTripID, map[string]interface{}{"trip_id": tripID})
	if err != nil {
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	var total decimal.Decimal
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetTotalByTripID execution err")
		return decimal.Zero, err
	}

	return total, nil
}

func (r *expenseRepository) SumExpensesByTripID(c context.Context, tripID int64) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(querySumExpensesByTripID, map[string]interface{}{"trip_id": tripID})
	if err != nil {
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	var total decimal.Decimal
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumExpensesByTripID execution err")
		return decimal.Zero, err
	}

	return total, nil
}

func (r *expenseRepository) GetTripOwner(c context.Context, tripID int64) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetTripOwner, map[string]interface{}{"id": tripID})
	if err != nil {
		return 0, err
	}

	query = r.q.Rebind(query)

	var ownerID int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, expense.ErrTripNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTripOwner execution err")
		return 0, err
	}

	return ownerID, nil
}
