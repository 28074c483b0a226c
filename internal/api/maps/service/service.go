package mapsService

import (
	"Tripp/internal/api/maps"
	mapsRepository "Tripp/internal/api/maps/repository"
	"Tripp/internal/entity"
	"Tripp/pkg/geocode"
	"context"
	"github.com/sirupsen/logrus"
)

type MapsService interface {
	GetCoordinates(c context.Context, destination string) (maps.CoordinatesResponse, error)
	SaveLocation(c context.Context, user entity.UserLoginData, req maps.SaveLocationRequest) (maps.SaveLocationResponse, error)
	ListLocations(c context.Context, user entity.UserLoginData, tripID int64) ([]maps.LocationResponse, error)
}

type mapsService struct {
	log     *logrus.Logger
	repo    mapsRepository.Repository
	geocode geocode.IGeocode
}

func New(log *logrus.Logger, repo mapsRepository.Repository, geocodeClient geocode.IGeocode) MapsService {
	return &mapsService{
		log:     log,
		repo:    repo,
		geocode: geocodeClient,
	}
}
