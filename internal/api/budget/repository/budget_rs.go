package budgetRepository

import (
	"Tripp/internal/api/budget"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *budgetRepository) CreateBudget(c context.Context, b entity.Budget) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	var notes interface{}
	if b.Notes != "" {
		notes = b.Notes
	}

	argsKV := map[string]interface{}{
		"trip_id":      b.TripID,
		"travel_cost":  b.TravelCost,
		"hotel_cost":   b.HotelCost,
		"food_cost":    b.FoodCost,
		"extra_cost":   b.ExtraCost,
		"total_budget": b.TotalBudget,
		"notes":        notes,
		"created_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBudget")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")
		return 0, err
	}

	return id, nil
}

func (r *budgetRepository) GetTripOwner(c context.Context, tripID int64) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetTripOwner, map[string]interface{}{"id": tripID})
	if err != nil {
		return 0, err
	}

	query = r.q.Rebind(query)

	var ownerID int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, budget.ErrTripNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTripOwner execution err")
		return 0, err
	}

	return ownerID, nil
}
