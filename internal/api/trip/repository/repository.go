package tripRepository

import (
	"Tripp/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

// NewClient returns a client bound either to the pool or, with tx=true, to a
// fresh transaction whose lifetime is controlled by Commit/Rollback. The
// multi-table trip delete is the only caller that needs tx=true.
func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Trips:    &tripRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Trips interface {
		CreateTrip(c context.Context, trip entity.Trip) (int64, error)
		GetByIDAndUser(c context.Context, id int64, userID int64) (entity.Trip, error)
		UpdateTrip(c context.Context, id int64, update entity.TripUpdate) error
		CountByUser(c context.Context, userID int64) (int64, error)
		ListByUser(c context.Context, userID int64, sortBy, sortOrder string, limit, offset uint64) ([]entity.Trip, error)
		DeleteBudgetsByTripID(c context.Context, tripID int64) error
		DeleteLocationsByTripID(c context.Context, tripID int64) error
		DeleteExpensesByTripID(c context.Context, tripID int64) error
		DeleteTrip(c context.Context, id int64) error
	}

	Commit   func() error
	Rollback func() error
}

type tripRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
