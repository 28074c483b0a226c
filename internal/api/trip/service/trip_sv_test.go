package tripService

import (
	"Tripp/internal/api/trip"
	tripRepository "Tripp/internal/api/trip/repository"
	"Tripp/internal/entity"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTrips struct {
	createTrip              func(c context.Context, t entity.Trip) (int64, error)
	getByIDAndUser          func(c context.Context, id, userID int64) (entity.Trip, error)
	updateTrip              func(c context.Context, id int64, update entity.TripUpdate) error
	countByUser             func(c context.Context, userID int64) (int64, error)
	listByUser              func(c context.Context, userID int64, sortBy, sortOrder string, limit, offset uint64) ([]entity.Trip, error)
	deleteBudgetsByTripID   func(c context.Context, tripID int64) error
	deleteLocationsByTripID func(c context.Context, tripID int64) error
	deleteExpensesByTripID  func(c context.Context, tripID int64) error
	deleteTrip              func(c context.Context, id int64) error
}

func (m *mockTrips) CreateTrip(c context.Context, t entity.Trip) (int64, error) {
	return m.createTrip(c, t)
}

func (m *mockTrips) GetByIDAndUser(c context.Context, id, userID int64) (entity.Trip, error) {
	return m.getByIDAndUser(c, id, userID)
}

func (m *mockTrips) UpdateTrip(c context.Context, id int64, update entity.TripUpdate) error {
	return m.updateTrip(c, id, update)
}

func (m *mockTrips) CountByUser(c context.Context, userID int64) (int64, error) {
	return m.countByUser(c, userID)
}

func (m *mockTrips) ListByUser(c context.Context, userID int64, sortBy, sortOrder string, limit, offset uint64) ([]entity.Trip, error) {
	return m.listByUser(c, userID, sortBy, sortOrder, limit, offset)
}

func (m *mockTrips) DeleteBudgetsByTripID(c context.Context, tripID int64) error {
	return m.deleteBudgetsByTripID(c, tripID)
}

func (m *mockTrips) DeleteLocationsByTripID(c context.Context, tripID int64) error {
	return m.deleteLocationsByTripID(c, tripID)
}

func (m *mockTrips) DeleteExpensesByTripID(c context.Context, tripID int64) error {
	return m.deleteExpensesByTripID(c, tripID)
}

func (m *mockTrips) DeleteTrip(c context.Context, id int64) error {
	return m.deleteTrip(c, id)
}

type mockRepository struct {
	trips    *mockTrips
	commit   func() error
	rollback func() error
}

func (m *mockRepository) NewClient(tx bool) (tripRepository.Client, error) {
	commit := m.commit
	if commit == nil {
		commit = func() error { return nil }
	}
	rollback := m.rollback
	if rollback == nil {
		rollback = func() error { return nil }
	}

	return tripRepository.Client{
		Trips:    m.trips,
		Commit:   commit,
		Rollback: rollback,
	}, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var testUser = entity.UserLoginData{ID: 1}

func ownedTrip(id int64) entity.Trip {
	return entity.Trip{
		ID:          id,
		UserID:      testUser.ID,
		Destination: "Lisbon",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
		Purpose:     entity.TripPurposeVacation,
	}
}

func TestCreateTrip(t *testing.T) {
	t.Run("parses dates and stores the trip", func(t *testing.T) {
		var created entity.Trip
		trips := &mockTrips{
			createTrip: func(_ context.Context, tr entity.Trip) (int64, error) {
				created = tr
				return 11, nil
			},
		}
		svc := New(testLogger(), &mockRepository{trips: trips})

		id, err := svc.CreateTrip(context.Background(), testUser, trip.CreateTripRequest{
			Destination: "Lisbon",
			StartDate:   "2026-06-01",
			EndDate:     "2026-06-08",
			Purpose:     "vacation",
			Companions:  []string{"bob"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(11), id)
		assert.Equal(t, testUser.ID, created.UserID)
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), created.StartDate)
		assert.Equal(t, []string{"bob"}, created.Companions)
	})

	t.Run("allows equal start and end dates", func(t *testing.T) {
		trips := &mockTrips{
			createTrip: func(_ context.Context, _ entity.Trip) (int64, error) { return 12, nil },
		}
		svc := New(testLogger(), &mockRepository{trips: trips})

		_, err := svc.CreateTrip(context.Background(), testUser, trip.CreateTripRequest{
			Destination: "Lisbon",
			StartDate:   "2026-06-01",
			EndDate:     "2026-06-01",
			Purpose:     "business",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects an end date before the start date", func(t *testing.T) {
		svc := New(testLogger(), &mockRepository{trips: &mockTrips{}})

		_, err := svc.CreateTrip(context.Background(), testUser, trip.CreateTripRequest{
			Destination: "Lisbon",
			StartDate:   "2026-06-08",
			EndDate:     "2026-06-01",
			Purpose:     "vacation",
		})
		assert.ErrorIs(t, err, trip.ErrInvalidDateRange)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		svc := New(testLogger(), &mockRepository{trips: &mockTrips{}})

		_, err := svc.CreateTrip(context.Background(), testUser, trip.CreateTripRequest{
			Destination: "Lisbon",
			StartDate:   "01/06/2026",
			EndDate:     "2026-06-08",
			Purpose:     "vacation",
		})
		assert.ErrorIs(t, err, trip.ErrInvalidDate)
	})
}

func TestUpdateTrip(t *testing.T) {
	existing := func(trips *mockTrips) *mockTrips {
		trips.getByIDAndUser = func(_ context.Context, id, userID int64) (entity.Trip, error) {
			return ownedTrip(id), nil
		}
		return trips
	}

	t.Run("updates only the supplied fields", func(t *testing.T) {
		var got entity.TripUpdate
		trips := existing(&mockTrips{
			updateTrip: func(_ context.Context, _ int64, update entity.TripUpdate) error {
				got = update
				return nil
			},
		})
		svc := New(testLogger(), &mockRepository{trips: trips})

		err := svc.UpdateTrip(context.Background(), testUser, 11, trip.UpdateTripRequest{
			Destination: "Porto",
		})
		require.NoError(t, err)

		assert.Equal(t, "Porto", got.Destination)
		assert.Nil(t, got.StartDate)
		assert.Nil(t, got.Companions)
		assert.Nil(t, got.Notes)
	})

	t.Run("an explicit empty companions list clears it while an absent key does not", func(t *testing.T) {
		var got entity.TripUpdate
		trips := existing(&mockTrips{
			updateTrip: func(_ context.Context, _ int64, update entity.TripUpdate) error {
				got = update
				return nil
			},
		})
		svc := New(testLogger(), &mockRepository{trips: trips})

		var req trip.UpdateTripRequest
		require.NoError(t, json.Unmarshal([]byte(`{"companions":[]}`), &req))

		err := svc.UpdateTrip(context.Background(), testUser, 11, req)
		require.NoError(t, err)

		require.NotNil(t, got.Companions)
		assert.Empty(t, *got.Companions)
	})

	t.Run("a null companions key counts as a supplied clear", func(t *testing.T) {
		updated := false
		var got entity.TripUpdate
		trips := existing(&mockTrips{
			updateTrip: func(_ context.Context, _ int64, update entity.TripUpdate) error {
				updated = true
				got = update
				return nil
			},
		})
		svc := New(testLogger(), &mockRepository{trips: trips})

		var req trip.UpdateTripRequest
		require.NoError(t, json.Unmarshal([]byte(`{"companions":null}`), &req))

		err := svc.UpdateTrip(context.Background(), testUser, 11, req)
		require.NoError(t, err)

		assert.True(t, updated)
		require.NotNil(t, got.Companions)
		assert.Nil(t, *got.Companions)
	})

	t.Run("a null notes key counts as a supplied clear", func(t *testing.T) {
		var got entity.TripUpdate
		trips := existing(&mockTrips{
			updateTrip: func(_ context.Context, _ int64, update entity.TripUpdate) error {
				got = update
				return nil
			},
		})
		svc := New(testLogger(), &mockRepository{trips: trips})

		var req trip.UpdateTripRequest
		require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &req))

		err := svc.UpdateTrip(context.Background(), testUser, 11, req)
		require.NoError(t, err)

		require.NotNil(t, got.Notes)
		assert.Empty(t, *got.Notes)
	})

	t.Run("a null companions key alongside other fields still clears them", func(t *testing.T) {
		var got entity.TripUpdate
		trips := existing(&mockTrips{
			updateTrip: func(_ context.Context, _ int64, update entity.TripUpdate) error {
				got = update
				return nil
			},
		})
		svc := New(testLogger(), &mockRepository{trips: trips})

		var req trip.UpdateTripRequest
		require.NoError(t, json.Unmarshal([]byte(`{"destination":"Porto","companions":null}`), &req))

		err := svc.UpdateTrip(context.Background(), testUser, 11, req)
		require.NoError(t, err)

		assert.Equal(t, "Porto", got.Destination)
		require.NotNil(t, got.Companions)
		assert.Nil(t, *got.Companions)
	})

	t.Run("rejects an update with no fields", func(t *testing.T) {
		svc := New(testLogger(), &mockRepository{trips: existing(&mockTrips{})})

		err := svc.UpdateTrip(context.Background(), testUser, 11, trip.UpdateTripRequest{})
		assert.ErrorIs(t, err, trip.ErrNoFieldsToUpdate)
	})

	t.Run("checks existence before inspecting the fields", func(t *testing.T) {
		trips := &mockTrips{
			getByIDAndUser: func(_ context.Context, _, _ int64) (entity.Trip, error) {
				return entity.Trip{}, trip.ErrTripNotFound
			},
		}
		svc := New(testLogger(), &mockRepository{trips: trips})

		err := svc.UpdateTrip(context.Background(), testUser, 99, trip.UpdateTripRequest{})
		assert.ErrorIs(t, err, trip.ErrTripNotFound)
	})
}

func TestDeleteTrip(t *testing.T) {
	t.Run("deletes dependents before the trip and commits", func(t *testing.T) {
		var order []string
		committed := false

		trips := &mockTrips{
			getByIDAndUser: func(_ context.Context, id, _ int64) (entity.Trip, error) {
				return ownedTrip(id), nil
			},
			deleteBudgetsByTripID: func(_ context.Context, _ int64) error {
				order = append(order, "budgets")
				return nil
			},
			deleteLocationsByTripID: func(_ context.Context, _ int64) error {
				order = append(order, "locations")
				return nil
			},
			deleteExpensesByTripID: func(_ context.Context, _ int64) error {
				order = append(order, "expenses")
				return nil
			},
			deleteTrip: func(_ context.Context, _ int64) error {
				order = append(order, "trip")
				return nil
			},
		}
		repo := &mockRepository{
			trips:  trips,
			commit: func() error { committed = true; return nil },
		}

		err := New(testLogger(), repo).DeleteTrip(context.Background(), testUser, 11)
		require.NoError(t, err)

		assert.Equal(t, []string{"budgets", "locations", "expenses", "trip"}, order)
		assert.True(t, committed)
	})

	t.Run("a failing step rolls the transaction back", func(t *testing.T) {
		rolledBack := false
		committed := false
		stepErr := errors.New("expenses delete failed")

		trips := &mockTrips{
			getByIDAndUser: func(_ context.Context, id, _ int64) (entity.Trip, error) {
				return ownedTrip(id), nil
			},
			deleteBudgetsByTripID:   func(_ context.Context, _ int64) error { return nil },
			deleteLocationsByTripID: func(_ context.Context, _ int64) error { return nil },
			deleteExpensesByTripID:  func(_ context.Context, _ int64) error { return stepErr },
		}
		repo := &mockRepository{
			trips:    trips,
			commit:   func() error { committed = true; return nil },
			rollback: func() error { rolledBack = true; return nil },
		}

		err := New(testLogger(), repo).DeleteTrip(context.Background(), testUser, 11)
		assert.ErrorIs(t, err, stepErr)
		assert.True(t, rolledBack)
		assert.False(t, committed)
	})

	t.Run("missing trip short-circuits before any delete", func(t *testing.T) {
		trips := &mockTrips{
			getByIDAndUser: func(_ context.Context, _, _ int64) (entity.Trip, error) {
				return entity.Trip{}, trip.ErrTripNotFound
			},
		}

		err := New(testLogger(), &mockRepository{trips: trips}).DeleteTrip(context.Background(), testUser, 99)
		assert.ErrorIs(t, err, trip.ErrTripNotFound)
	})
}

func TestListTrips(t *testing.T) {
	t.Run("applies defaults and computes pagination", func(t *testing.T) {
		var gotSortBy, gotSortOrder string
		var gotLimit, gotOffset uint64

		trips := &mockTrips{
			countByUser: func(_ context.Context, _ int64) (int64, error) { return 25, nil },
			listByUser: func(_ context.Context, _ int64, sortBy, sortOrder string, limit, offset uint64) ([]entity.Trip, error) {
				gotSortBy, gotSortOrder = sortBy, sortOrder
				gotLimit, gotOffset = limit, offset
				return []entity.Trip{ownedTrip(1), ownedTrip(2)}, nil
			},
		}
		svc := New(testLogger(), &mockRepository{trips: trips})

		res, err := svc.ListTrips(context.Background(), testUser, trip.ListTripsQuery{})
		require.NoError(t, err)

		assert.Equal(t, "start_date", gotSortBy)
		assert.Equal(t, "ASC", gotSortOrder)
		assert.Equal(t, uint64(10), gotLimit)
		assert.Equal(t, uint64(0), gotOffset)

		assert.Len(t, res.Data, 2)
		assert.Equal(t, int64(25), res.Pagination.Total)
		assert.Equal(t, int64(3), res.Pagination.TotalPages)
		assert.Equal(t, 1, res.Pagination.CurrentPage)
		assert.Equal(t, 10, res.Pagination.ItemsPerPage)
	})

	t.Run("offsets by page and upper-cases the sort order", func(t *testing.T) {
		var gotSortOrder string
		var gotOffset uint64

		trips := &mockTrips{
			countByUser: func(_ context.Context, _ int64) (int64, error) { return 25, nil },
			listByUser: func(_ context.Context, _ int64, _, sortOrder string, _, offset uint64) ([]entity.Trip, error) {
				gotSortOrder = sortOrder
				gotOffset = offset
				return nil, nil
			},
		}
		svc := New(testLogger(), &mockRepository{trips: trips})

		_, err := svc.ListTrips(context.Background(), testUser, trip.ListTripsQuery{
			Page:      3,
			Limit:     5,
			SortBy:    "destination",
			SortOrder: "desc",
		})
		require.NoError(t, err)

		assert.Equal(t, "DESC", gotSortOrder)
		assert.Equal(t, uint64(10), gotOffset)
	})

	t.Run("rejects sort fields outside the allow list", func(t *testing.T) {
		svc := New(testLogger(), &mockRepository{trips: &mockTrips{}})

		_, err := svc.ListTrips(context.Background(), testUser, trip.ListTripsQuery{
			SortBy: "password; DROP TABLE trips",
		})
		assert.ErrorIs(t, err, trip.ErrInvalidSortField)
	})

	t.Run("rejects unknown sort orders", func(t *testing.T) {
		svc := New(testLogger(), &mockRepository{trips: &mockTrips{}})

		_, err := svc.ListTrips(context.Background(), testUser, trip.ListTripsQuery{
			SortOrder: "sideways",
		})
		assert.ErrorIs(t, err, trip.ErrInvalidSortOrder)
	})
}

func TestGetTrip(t *testing.T) {
	t.Run("nil companions serialize as an empty list", func(t *testing.T) {
		trips := &mockTrips{
			getByIDAndUser: func(_ context.Context, id, _ int64) (entity.Trip, error) {
				return ownedTrip(id), nil
			},
		}
		svc := New(testLogger(), &mockRepository{trips: trips})

		res, err := svc.GetTrip(context.Background(), testUser, 11)
		require.NoError(t, err)

		assert.NotNil(t, res.Companions)
		assert.Empty(t, res.Companions)
		assert.Equal(t, "2026-06-01", res.StartDate)
	})
}
