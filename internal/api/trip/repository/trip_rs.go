package tripRepository

import (
	"Tripp/internal/api/trip"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type TripDB struct {
	ID          int64          `db:"id"`
	UserID      int64          `db:"user_id"`
	Destination string         `db:"destination"`
	StartDate   time.Time      `db:"start_date"`
	EndDate     time.Time      `db:"end_date"`
	Purpose     string         `db:"purpose"`
	Companions  []byte         `db:"companions"`
	Notes       sql.NullString `db:"notes"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *tripRepository) CreateTrip(c context.Context, t entity.Trip) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	companions, err := marshalCompanions(t.Companions)
	if err != nil {
		return 0, err
	}

	var notes interface{}
	if t.Notes != "" {
		notes = t.Notes
	}

	argsKV := map[string]interface{}{
		"user_id":     t.UserID,
		"destination": t.Destination,
		"start_date":  t.StartDate,
		"end_date":    t.EndDate,
		"purpose":     t.Purpose,
		"companions":  companions,
		"notes":       notes,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTrip, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTrip")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating trip")
		return 0, err
	}

	return id, nil
}

func (r *tripRepository) GetByIDAndUser(c context.Context, id int64, userID int64) (entity.Trip, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TripDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTripByIDAndUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByIDAndUser named query preparation err")
		return entity.Trip{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Trip{}, trip.ErrTripNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByIDAndUser execution err")
		return entity.Trip{}, err
	}

	return r.makeTrip(row)
}

// UpdateTrip builds an UPDATE touching only the supplied fields. Column names
// come from this builder, never from request input.
func (r *tripRepository) UpdateTrip(c context.Context, id int64, update entity.TripUpdate) error {
	requestID := contextPkg.GetRequestID(c)

	builder := sq.Update("trips").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id})

	if update.Destination != "" {
		builder = builder.Set("destination", update.Destination)
	}
	if update.StartDate != nil {
		builder = builder.Set("start_date", *update.StartDate)
	}
	if update.EndDate != nil {
		builder = builder.Set("end_date", *update.EndDate)
	}
	if update.Purpose != "" {
		builder = builder.Set("purpose", update.Purpose)
	}
	if update.Companions != nil {
		raw, err := marshalCompanions(*update.Companions)
		if err != nil {
			return err
		}
		// An explicit null clears the column.
		builder = builder.Set("companions", raw)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTrip query build err")
		return err
	}

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTrip execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func (r *tripRepository) CountByUser(c context.Context, userID int64) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryCountTripsByUser, argsKV)
	if err != nil {
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByUser execution err")
		return 0, err
	}

	return total, nil
}

// ListByUser expects sortBy and sortOrder to be pre-validated against the
// service allow-list; they are interpolated into the ORDER BY clause.
func (r *tripRepository) ListByUser(c context.Context, userID int64, sortBy, sortOrder string, limit, offset uint64) ([]entity.Trip, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sq.Select("id", "user_id", "destination", "start_date", "end_date", "purpose", "companions", "notes", "created_at").
		From("trips").
		Where(sq.Eq{"user_id": userID}).
		OrderBy(sortBy + " " + sortOrder).
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser query build err")
		return nil, err
	}

	var rows []TripDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser execution err")
		return nil, err
	}

	result := make([]entity.Trip, 0, len(rows))
	for _, row := range rows {
		t, err := r.makeTrip(row)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}

	return result, nil
}

func (r *tripRepository) DeleteBudgetsByTripID(c context.Context, tripID int64) error {
	return r.execDeleteByTrip(c, queryDeleteBudgetsByTripID, "trip_id", tripID)
}

func (r *tripRepository) DeleteLocationsByTripID(c context.Context, tripID int64) error {
	return r.execDeleteByTrip(c, queryDeleteLocationsByTripID, "trip_id", tripID)
}

func (r *tripRepository) DeleteExpensesByTripID(c context.Context, tripID int64) error {
	return r.execDeleteByTrip(c, queryDeleteExpensesByTripID, "trip_id", tripID)
}

func (r *tripRepository) DeleteTrip(c context.Context, id int64) error {
	return r.execDeleteByTrip(c, queryDeleteTrip, "id", id)
}

func (r *tripRepository) execDeleteByTrip(c context.Context, namedQuery string, key string, id int64) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{key: id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete execution err")
		return err
	}

	return nil
}

// marshalCompanions prepares the companions slice for the jsonb column. A nil
// slice maps to SQL NULL; an empty one is stored as an empty JSON array.
func marshalCompanions(companions []string) (interface{}, error) {
	if companions == nil {
		return nil, nil
	}

	raw, err := jsoniter.Marshal(companions)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *tripRepository) makeTrip(row TripDB) (entity.Trip, error) {
	companions := make([]string, 0)
	if len(row.Companions) > 0 {
		if err := jsoniter.Unmarshal(row.Companions, &companions); err != nil {
			return entity.Trip{}, err
		}
	}

	return entity.Trip{
		ID:          row.ID,
		UserID:      row.UserID,
		Destination: row.Destination,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		Purpose:     row.Purpose,
		Companions:  companions,
		Notes:       row.Notes.String,
		CreatedAt:   row.CreatedAt,
	}, nil
}
