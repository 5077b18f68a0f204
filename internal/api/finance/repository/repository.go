package financeRepository

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

// Filter narrows a user's records. Zero values mean "no constraint"; From
// is inclusive and To exclusive. Type matches the table's kind column:
// transaction type, expense status or tithing type.
type Filter struct {
	UserID   string
	From     time.Time
	To       time.Time
	Type     string
	Category string
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
		Transaction: &transactionRepository{q: sqlExecutor, log: r.log},
		Expense:     &expenseRepository{q: sqlExecutor, log: r.log},
		Tithing:     &tithingRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	Transaction interface {
		CreateTransaction(c context.Context, transaction entity.Transaction) error
		GetTransactionByID(c context.Context, id string) (entity.Transaction, error)
		GetTransactions(c context.Context, filter Filter) ([]entity.Transaction, error)
		UpdateTransaction(c context.Context, transaction entity.Transaction) error
		DeleteTransaction(c context.Context, id string) error
	}

	Expense interface {
		CreateExpense(c context.Context, expense entity.Expense) error
		GetExpenseByID(c context.Context, id string) (entity.Expense, error)
		GetExpenses(c context.Context, filter Filter) ([]entity.Expense, error)
		UpdateExpense(c context.Context, expense entity.Expense) error
		UpdateExpenseStatus(c context.Context, id string, status entity.ExpenseStatus, updatedAt time.Time) error
		DeleteExpense(c context.Context, id string) error
	}

	Tithing interface {
		CreateTithing(c context.Context, tithing entity.Tithing) error
		GetTithingByID(c context.Context, id string) (entity.Tithing, error)
		GetTithings(c context.Context, filter Filter) ([]entity.Tithing, error)
		UpdateTithing(c context.Context, tithing entity.Tithing) error
		DeleteTithing(c context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type transactionRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}

type expenseRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}

type tithingRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}
