package mapsRepository

import (
	"Tripp/internal/api/maps"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *locationRepository) CreateLocation(c context.Context, location entity.Location) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	var notes interface{}
	if location.Notes != "" {
		notes = location.Notes
	}

	argsKV := map[string]interface{}{
		"trip_id":    location.TripID,
		"latitude":   location.Latitude,
		"longitude":  location.Longitude,
		"notes":      notes,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateLocation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateLocation")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating location")
		return 0, err
	}

	return id, nil
}

func (r *locationRepository) ListByTripID(c context.Context, tripID int64) ([]entity.Location, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryListLocationsByTrip, map[string]interface{}{"trip_id": tripID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []locationDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByTripID execution err")
		return nil, err
	}

	locations := make([]entity.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, row.toEntity())
	}

	return locations, nil
}

func (r *locationRepository) GetTripOwner(c context.Context, tripID int64) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetTripOwner, map[string]interface{}{"trip_id": tripID})
	if err != nil {
		return 0, err
	}

	query = r.q.Rebind(query)

	var ownerID int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, maps.ErrTripNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTripOwner execution err")
		return 0, err
	}

	return ownerID, nil
}

type locationDB struct {
	ID        int64          `db:"id"`
	TripID    int64          `db:"trip_id"`
	Latitude  float64        `db:"latitude"`
	Longitude float64        `db:"longitude"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
}

func (l locationDB) toEntity() entity.Location {
	return entity.Location{
		ID:        l.ID,
		TripID:    l.TripID,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Notes:     l.Notes.String,
		CreatedAt: l.CreatedAt,
	}
}
