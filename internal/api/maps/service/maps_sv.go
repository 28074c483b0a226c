package mapsService

import (
	"Tripp/internal/api/maps"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *mapsService) GetCoordinates(c context.Context, destination string) (maps.CoordinatesResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if destination == "" {
		return maps.CoordinatesResponse{}, maps.ErrDestinationRequired
	}

	coords, err := s.geocode.Lookup(c, destination)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"destination": destination,
			"error":       err.Error(),
		}).Error("Geocode lookup failed")
		return maps.CoordinatesResponse{}, maps.ErrGeocodeFailed
	}

	// coords stays nil when the provider has no match. The caller receives
	// an explicit null rather than an error.
	return maps.CoordinatesResponse{Coordinates: coords}, nil
}

func (s *mapsService) SaveLocation(c context.Context, user entity.UserLoginData, req maps.SaveLocationRequest) (maps.SaveLocationResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return maps.SaveLocationResponse{}, err
	}

	ownerID, err := repo.Locations.GetTripOwner(c, req.TripID)
	if err != nil {
		return maps.SaveLocationResponse{}, err
	}
	if ownerID != user.ID {
		return maps.SaveLocationResponse{}, maps.ErrTripNotFound
	}

	coords, err := s.geocode.Lookup(c, req.Destination)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"destination": req.Destination,
			"error":       err.Error(),
		}).Error("Geocode lookup failed")
		return maps.SaveLocationResponse{}, maps.ErrGeocodeFailed
	}
	if coords == nil {
		return maps.SaveLocationResponse{}, maps.ErrNoCoordinates
	}

	locationID, err := repo.Locations.CreateLocation(c, entity.Location{
		TripID:    req.TripID,
		Latitude:  coords.Lat,
		Longitude: coords.Lng,
		Notes:     req.Notes,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save location")
		return maps.SaveLocationResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"location_id": locationID,
		"trip_id":     req.TripID,
	}).Info("Location saved")

	return maps.SaveLocationResponse{
		LocationID:  locationID,
		Coordinates: *coords,
	}, nil
}

func (s *mapsService) ListLocations(c context.Context, user entity.UserLoginData, tripID int64) ([]maps.LocationResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	ownerID, err := repo.Locations.GetTripOwner(c, tripID)
	if err != nil {
		return nil, err
	}
	if ownerID != user.ID {
		return nil, maps.ErrTripNotFound
	}

	locations, err := repo.Locations.ListByTripID(c, tripID)
	if err != nil {
		return nil, err
	}

	resp := make([]maps.LocationResponse, 0, len(locations))
	for _, location := range locations {
		resp = append(resp, maps.LocationResponse{
			ID:        location.ID,
			TripID:    location.TripID,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
			Notes:     location.Notes,
			CreatedAt: location.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}
