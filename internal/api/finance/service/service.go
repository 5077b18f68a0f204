package financeService

import (
	bankRepository "mordomia/internal/api/bank/repository"
	"mordomia/internal/api/finance"
	financeRepository "mordomia/internal/api/finance/repository"
	"mordomia/internal/entity"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"mordomia/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IFinanceService interface {
	CreateTransaction(ctx context.Context, req finance.TransactionRequest) (entity.Transaction, error)
	GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
	GetTransactions(ctx context.Context, filter finance.TransactionFilter) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req finance.TransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string, userID string) error

	CreateExpense(ctx context.Context, req finance.ExpenseRequest) (entity.Expense, error)
	GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error)
	GetExpenses(ctx context.Context, filter finance.MonthFilter) ([]entity.Expense, error)
	UpdateExpense(ctx context.Context, req finance.ExpenseRequest) (entity.Expense, error)
	UpdateExpenseStatus(ctx context.Context, req finance.ExpenseStatusRequest) (entity.Expense, error)
	DeleteExpense(ctx context.Context, id string, userID string) error

	CreateTithing(ctx context.Context, req finance.TithingRequest) (entity.Tithing, error)
	GetTithingByID(ctx context.Context, id string, userID string) (entity.Tithing, error)
	GetTithings(ctx context.Context, filter finance.MonthFilter) ([]entity.Tithing, error)
	UpdateTithing(ctx context.Context, req finance.TithingRequest) (entity.Tithing, error)
	DeleteTithing(ctx context.Context, id string, userID string) error
}

type financeService struct {
	log               *logrus.Logger
	financeRepository financeRepository.Repository
	bankRepository    bankRepository.Repository
	utils             utils.IUtils
	publisher         realtime.Publisher
}

func NewFinanceService(
	log *logrus.Logger,
	fr financeRepository.Repository,
	br bankRepository.Repository,
	utils utils.IUtils,
	publisher realtime.Publisher,
) IFinanceService {
	return &financeService{
		log:               log,
		financeRepository: fr,
		bankRepository:    br,
		utils:             utils,
		publisher:         publisher,
	}
}

func (s *financeService) publish(userID string, entityName string, action realtime.Action, id string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(userID, realtime.NewEvent(entityName, action, id))
}

// monthFilter converts an optional YYYY-MM key into a repository filter.
func monthFilter(userID string, month string) (financeRepository.Filter, error) {
	filter := financeRepository.Filter{UserID: userID}
	if month == "" {
		return filter, nil
	}

	from, to, ok := metrics.MonthRange(month)
	if !ok {
		return financeRepository.Filter{}, finance.ErrInvalidMonth
	}

	filter.From = from
	filter.To = to
	return filter, nil
}
