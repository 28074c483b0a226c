package tripService

import (
	"Tripp/internal/api/trip"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Sort fields here are the only strings that ever reach the ORDER BY clause.
var allowedSortFields = map[string]struct{}{
	"start_date":  {},
	"end_date":    {},
	"destination": {},
	"created_at":  {},
}

func (s *tripService) CreateTrip(c context.Context, user entity.UserLoginData, req trip.CreateTripRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	startDate, err := time.Parse(trip.DateLayout, req.StartDate)
	if err != nil {
		return 0, trip.ErrInvalidDate
	}
	endDate, err := time.Parse(trip.DateLayout, req.EndDate)
	if err != nil {
		return 0, trip.ErrInvalidDate
	}

	// Equal start and end dates are allowed.
	if endDate.Before(startDate) {
		return 0, trip.ErrInvalidDateRange
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, err
	}

	tripID, err := repo.Trips.CreateTrip(c, entity.Trip{
		UserID:      user.ID,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Purpose:     req.Purpose,
		Companions:  req.Companions,
		Notes:       req.Notes,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create trip")
		return 0, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"trip_id":    tripID,
		"user_id":    user.ID,
	}).Info("Trip created")

	return tripID, nil
}

func (s *tripService) GetTrip(c context.Context, user entity.UserLoginData, tripID int64) (trip.TripResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return trip.TripResponse{}, err
	}

	t, err := repo.Trips.GetByIDAndUser(c, tripID, user.ID)
	if err != nil {
		return trip.TripResponse{}, err
	}

	return makeTripResponse(t), nil
}

func (s *tripService) UpdateTrip(c context.Context, user entity.UserLoginData, tripID int64, req trip.UpdateTripRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Trips.GetByIDAndUser(c, tripID, user.ID); err != nil {
		return err
	}

	update := entity.TripUpdate{
		Destination: req.Destination,
		Purpose:     req.Purpose,
	}

	if req.Companions.Set {
		companions := req.Companions.Value
		update.Companions = &companions
	}
	if req.Notes.Set {
		notes := req.Notes.Value
		update.Notes = &notes
	}

	if req.StartDate != "" {
		startDate, err := time.Parse(trip.DateLayout, req.StartDate)
		if err != nil {
			return trip.ErrInvalidDate
		}
		update.StartDate = &startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse(trip.DateLayout, req.EndDate)
		if err != nil {
			return trip.ErrInvalidDate
		}
		update.EndDate = &endDate
	}

	if update.Empty() {
		return trip.ErrNoFieldsToUpdate
	}

	if err := repo.Trips.UpdateTrip(c, tripID, update); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"trip_id":    tripID,
			"error":      err.Error(),
		}).Error("Failed to update trip")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"trip_id":    tripID,
		"user_id":    user.ID,
	}).Info("Trip updated")

	return nil
}

// DeleteTrip removes the trip and all dependent rows in a single transaction.
// Any failing step rolls the whole delete back.
func (s *tripService) DeleteTrip(c context.Context, user entity.UserLoginData, tripID int64) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Trips.GetByIDAndUser(c, tripID, user.ID); err != nil {
		return err
	}

	txRepo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to begin delete transaction")
		return err
	}

	steps := []func(context.Context, int64) error{
		txRepo.Trips.DeleteBudgetsByTripID,
		txRepo.Trips.DeleteLocationsByTripID,
		txRepo.Trips.DeleteExpensesByTripID,
		txRepo.Trips.DeleteTrip,
	}

	for _, step := range steps {
		if err := step(c, tripID); err != nil {
			if rbErr := txRepo.Rollback(); rbErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      rbErr.Error(),
				}).Error("Failed to roll back delete transaction")
			}
			return err
		}
	}

	if err := txRepo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit delete transaction")
		txRepo.Rollback()
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"trip_id":    tripID,
		"user_id":    user.ID,
	}).Info("Trip deleted")

	return nil
}

func (s *tripService) ListTrips(c context.Context, user entity.UserLoginData, query trip.ListTripsQuery) (trip.ListTripsResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	page := query.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "start_date"
	}
	if _, ok := allowedSortFields[sortBy]; !ok {
		return trip.ListTripsResponse{}, trip.ErrInvalidSortField
	}

	sortOrder := strings.ToUpper(query.SortOrder)
	if sortOrder == "" {
		sortOrder = "ASC"
	}
	if sortOrder != "ASC" && sortOrder != "DESC" {
		return trip.ListTripsResponse{}, trip.ErrInvalidSortOrder
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return trip.ListTripsResponse{}, err
	}

	total, err := repo.Trips.CountByUser(c, user.ID)
	if err != nil {
		return trip.ListTripsResponse{}, err
	}

	offset := uint64(page-1) * uint64(limit)

	trips, err := repo.Trips.ListByUser(c, user.ID, sortBy, sortOrder, uint64(limit), offset)
	if err != nil {
		return trip.ListTripsResponse{}, err
	}

	items := make([]trip.TripListItem, 0, len(trips))
	for _, t := range trips {
		items = append(items, trip.TripListItem{
			ID:          t.ID,
			Destination: t.Destination,
			StartDate:   t.StartDate.Format(trip.DateLayout),
			EndDate:     t.EndDate.Format(trip.DateLayout),
			Purpose:     t.Purpose,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}

	return trip.ListTripsResponse{
		Data: items,
		Pagination: trip.Pagination{
			Total:        total,
			TotalPages:   totalPages(total, int64(limit)),
			CurrentPage:  page,
			ItemsPerPage: limit,
		},
	}, nil
}

func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func makeTripResponse(t entity.Trip) trip.TripResponse {
	companions := t.Companions
	if companions == nil {
		companions = []string{}
	}

	return trip.TripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(trip.DateLayout),
		EndDate:     t.EndDate.Format(trip.DateLayout),
		Purpose:     t.Purpose,
		Companions:  companions,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
