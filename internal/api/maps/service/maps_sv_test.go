package mapsService

import (
	"Tripp/internal/api/maps"
	mapsRepository "Tripp/internal/api/maps/repository"
	"Tripp/internal/entity"
	"Tripp/pkg/geocode"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLocations struct {
	createLocation func(c context.Context, location entity.Location) (int64, error)
	listByTripID   func(c context.Context, tripID int64) ([]entity.Location, error)
	getTripOwner   func(c context.Context, tripID int64) (int64, error)
}

func (m *mockLocations) CreateLocation(c context.Context, location entity.Location) (int64, error) {
	return m.createLocation(c, location)
}

func (m *mockLocations) ListByTripID(c context.Context, tripID int64) ([]entity.Location, error) {
	return m.listByTripID(c, tripID)
}

func (m *mockLocations) GetTripOwner(c context.Context, tripID int64) (int64, error) {
	return m.getTripOwner(c, tripID)
}

type mockRepository struct {
	locations *mockLocations
}

func (m *mockRepository) NewClient(tx bool) (mapsRepository.Client, error) {
	return mapsRepository.Client{
		Locations: m.locations,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

type mockGeocode struct {
	lookup func(ctx context.Context, destination string) (*geocode.LatLng, error)
}

func (m *mockGeocode) Lookup(ctx context.Context, destination string) (*geocode.LatLng, error) {
	return m.lookup(ctx, destination)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var testUser = entity.UserLoginData{ID: 1}

func TestGetCoordinates(t *testing.T) {
	t.Run("returns the resolved coordinates", func(t *testing.T) {
		geo := &mockGeocode{
			lookup: func(_ context.Context, destination string) (*geocode.LatLng, error) {
				assert.Equal(t, "Lisbon", destination)
				return &geocode.LatLng{Lat: 38.7223, Lng: -9.1393}, nil
			},
		}
		svc := New(testLogger(), &mockRepository{}, geo)

		res, err := svc.GetCoordinates(context.Background(), "Lisbon")
		require.NoError(t, err)

		require.NotNil(t, res.Coordinates)
		assert.InDelta(t, 38.7223, res.Coordinates.Lat, 1e-9)
	})

	t.Run("an unmatched destination yields null coordinates, not an error", func(t *testing.T) {
		geo := &mockGeocode{
			lookup: func(_ context.Context, _ string) (*geocode.LatLng, error) { return nil, nil },
		}
		svc := New(testLogger(), &mockRepository{}, geo)

		res, err := svc.GetCoordinates(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.Nil(t, res.Coordinates)
	})

	t.Run("rejects an empty destination", func(t *testing.T) {
		svc := New(testLogger(), &mockRepository{}, &mockGeocode{})

		_, err := svc.GetCoordinates(context.Background(), "")
		assert.ErrorIs(t, err, maps.ErrDestinationRequired)
	})

	t.Run("provider failures surface as a bad gateway", func(t *testing.T) {
		geo := &mockGeocode{
			lookup: func(_ context.Context, _ string) (*geocode.LatLng, error) {
				return nil, errors.New("upstream down")
			},
		}
		svc := New(testLogger(), &mockRepository{}, geo)

		_, err := svc.GetCoordinates(context.Background(), "Lisbon")
		assert.ErrorIs(t, err, maps.ErrGeocodeFailed)
	})
}

func TestSaveLocation(t *testing.T) {
	t.Run("geocodes the destination and stores the location", func(t *testing.T) {
		var stored entity.Location
		locations := &mockLocations{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return testUser.ID, nil },
			createLocation: func(_ context.Context, location entity.Location) (int64, error) {
				stored = location
				return 8, nil
			},
		}
		geo := &mockGeocode{
			lookup: func(_ context.Context, _ string) (*geocode.LatLng, error) {
				return &geocode.LatLng{Lat: 38.7223, Lng: -9.1393}, nil
			},
		}
		svc := New(testLogger(), &mockRepository{locations: locations}, geo)

		res, err := svc.SaveLocation(context.Background(), testUser, maps.SaveLocationRequest{
			TripID:      11,
			Destination: "Lisbon",
			Notes:       "city break",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(8), res.LocationID)
		assert.Equal(t, int64(11), stored.TripID)
		assert.InDelta(t, -9.1393, stored.Longitude, 1e-9)
		assert.Equal(t, "city break", stored.Notes)
	})

	t.Run("an unmatched destination is not stored", func(t *testing.T) {
		locations := &mockLocations{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return testUser.ID, nil },
		}
		geo := &mockGeocode{
			lookup: func(_ context.Context, _ string) (*geocode.LatLng, error) { return nil, nil },
		}
		svc := New(testLogger(), &mockRepository{locations: locations}, geo)

		_, err := svc.SaveLocation(context.Background(), testUser, maps.SaveLocationRequest{
			TripID:      11,
			Destination: "Atlantis",
		})
		assert.ErrorIs(t, err, maps.ErrNoCoordinates)
	})

	t.Run("a trip owned by someone else reads as not found", func(t *testing.T) {
		locations := &mockLocations{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return 999, nil },
		}
		svc := New(testLogger(), &mockRepository{locations: locations}, &mockGeocode{})

		_, err := svc.SaveLocation(context.Background(), testUser, maps.SaveLocationRequest{
			TripID:      11,
			Destination: "Lisbon",
		})
		assert.ErrorIs(t, err, maps.ErrTripNotFound)
	})
}

func TestListLocations(t *testing.T) {
	t.Run("returns the trip's saved locations", func(t *testing.T) {
		created := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		locations := &mockLocations{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return testUser.ID, nil },
			listByTripID: func(_ context.Context, tripID int64) ([]entity.Location, error) {
				return []entity.Location{
					{ID: 1, TripID: tripID, Latitude: 38.7223, Longitude: -9.1393, CreatedAt: created},
				}, nil
			},
		}
		svc := New(testLogger(), &mockRepository{locations: locations}, &mockGeocode{})

		res, err := svc.ListLocations(context.Background(), testUser, 11)
		require.NoError(t, err)

		require.Len(t, res, 1)
		assert.Equal(t, int64(11), res[0].TripID)
		assert.Equal(t, "2026-06-01T12:00:00Z", res[0].CreatedAt)
	})

	t.Run("a trip owned by someone else reads as not found", func(t *testing.T) {
		locations := &mockLocations{
			getTripOwner: func(_ context.Context, _ int64) (int64, error) { return 999, nil },
		}
		svc := New(testLogger(), &mockRepository{locations: locations}, &mockGeocode{})

		_, err := svc.ListLocations(context.Background(), testUser, 11)
		assert.ErrorIs(t, err, maps.ErrTripNotFound)
	})
}
