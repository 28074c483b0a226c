package tripService

import (
	"Tripp/internal/api/trip"
	tripRepository "Tripp/internal/api/trip/repository"
	"Tripp/internal/entity"
	"context"
	"github.com/sirupsen/logrus"
)

type TripService interface {
	CreateTrip(c context.Context, user entity.UserLoginData, req trip.CreateTripRequest) (int64, error)
	GetTrip(c context.Context, user entity.UserLoginData, tripID int64) (trip.TripResponse, error)
	UpdateTrip(c context.Context, user entity.UserLoginData, tripID int64, req trip.UpdateTripRequest) error
	DeleteTrip(c context.Context, user entity.UserLoginData, tripID int64) error
	ListTrips(c context.Context, user entity.UserLoginData, query trip.ListTripsQuery) (trip.ListTripsResponse, error)
}

type tripService struct {
	log  *logrus.Logger
	repo tripRepository.Repository
}

func New(log *logrus.Logger, repo tripRepository.Repository) TripService {
	return &tripService{
		log:  log,
		repo: repo,
	}
}
