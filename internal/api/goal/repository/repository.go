package goalRepository

import (
	"mordomia/database/postgres"
	"mordomia/internal/entity"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

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

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor postgres.Executor
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
		Goal:     &goalRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Goal interface {
		CreateGoal(c context.Context, goal entity.Goal) error
		GetGoalByID(c context.Context, id string) (entity.Goal, error)
		GetGoalsByUser(c context.Context, userID string) ([]entity.Goal, error)
		UpdateGoal(c context.Context, goal entity.Goal) error
		UpdateGoalProgress(c context.Context, id string, currentAmount float64, updatedAt time.Time) error
		DeleteGoal(c context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type goalRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}
