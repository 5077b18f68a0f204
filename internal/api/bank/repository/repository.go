package bankRepository

import (
	"mordomia/database/postgres"
	"mordomia/internal/entity"

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
		Bank:       &bankRepository{q: sqlExecutor, log: r.log},
		Balance:    &balanceRepository{q: sqlExecutor, log: r.log},
		Investment: &investmentRepository{q: sqlExecutor, log: r.log},
		Card:       &cardRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Bank interface {
		CreateBank(c context.Context, bank entity.Bank) error
		GetBankByID(c context.Context, id string) (entity.Bank, error)
		GetBanksByUserID(c context.Context, userID string) ([]entity.Bank, error)
		UpdateBank(c context.Context, bank entity.Bank) error
		DeleteBank(c context.Context, id string) error
	}

	Balance interface {
		CreateBalance(c context.Context, balance entity.AccountBalance) error
		GetBalancesByBankID(c context.Context, bankID string) ([]entity.AccountBalance, error)
		GetBalancesByUserID(c context.Context, userID string) ([]entity.AccountBalance, error)
	}

	Investment interface {
		CreateInvestment(c context.Context, investment entity.Investment) error
		GetInvestmentByID(c context.Context, id string) (entity.Investment, error)
		GetInvestmentsByBankID(c context.Context, bankID string) ([]entity.Investment, error)
		UpdateInvestment(c context.Context, investment entity.Investment) error
		DeleteInvestment(c context.Context, id string) error
	}

	Card interface {
		CreateCard(c context.Context, card entity.Card) error
		GetCardByID(c context.Context, id string) (entity.Card, error)
		GetCardsByBankID(c context.Context, bankID string) ([]entity.Card, error)
		UpdateCard(c context.Context, card entity.Card) error
		DeleteCard(c context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type bankRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}

type balanceRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}

type investmentRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}

type cardRepository struct {
	q   postgres.Executor
	log *logrus.Logger
}
