package bankService

import (
	"mordomia/internal/api/bank"
	bankRepository "mordomia/internal/api/bank/repository"
	"mordomia/internal/entity"
	"mordomia/pkg/realtime"
	"mordomia/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBankService interface {
	CreateBank(ctx context.Context, req bank.CreateBankRequest) (entity.Bank, error)
	GetBanks(ctx context.Context, userID string) ([]entity.Bank, []entity.AccountBalance, error)
	GetBank(ctx context.Context, id string, userID string) (entity.Bank, error)
	UpdateBank(ctx context.Context, req bank.UpdateBankRequest) (entity.Bank, error)
	DeleteBank(ctx context.Context, id string, userID string) error

	RecordBalance(ctx context.Context, req bank.CreateBalanceRequest) (entity.AccountBalance, error)
	GetBalanceHistory(ctx context.Context, bankID string, userID string) ([]entity.AccountBalance, error)
	GetLatestBalance(ctx context.Context, bankID string, userID string) (entity.AccountBalance, error)

	CreateInvestment(ctx context.Context, req bank.InvestmentRequest) (entity.Investment, error)
	GetInvestments(ctx context.Context, bankID string, userID string) ([]entity.Investment, error)
	UpdateInvestment(ctx context.Context, req bank.InvestmentRequest) (entity.Investment, error)
	DeleteInvestment(ctx context.Context, bankID string, id string, userID string) error

	CreateCard(ctx context.Context, req bank.CardRequest) (entity.Card, error)
	GetCards(ctx context.Context, bankID string, userID string) ([]entity.Card, error)
	UpdateCard(ctx context.Context, req bank.CardRequest) (entity.Card, error)
	DeleteCard(ctx context.Context, bankID string, id string, userID string) error
}

type bankService struct {
	log            *logrus.Logger
	bankRepository bankRepository.Repository
	utils          utils.IUtils
	publisher      realtime.Publisher
}

func NewBankService(log *logrus.Logger, br bankRepository.Repository, utils utils.IUtils, publisher realtime.Publisher) IBankService {
	return &bankService{
		log:            log,
		bankRepository: br,
		utils:          utils,
		publisher:      publisher,
	}
}

func (s *bankService) publish(userID string, entityName string, action realtime.Action, id string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(userID, realtime.NewEvent(entityName, action, id))
}

// ownedBank loads a bank and checks it belongs to userID. Every nested
// balance, investment and card operation goes through it.
func (s *bankService) ownedBank(ctx context.Context, repo bankRepository.Client, bankID string, userID string) (entity.Bank, error) {
	b, err := repo.Bank.GetBankByID(ctx, bankID)
	if err != nil {
		return entity.Bank{}, err
	}

	if b.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"bank_id": bankID,
			"user_id": userID,
		}).Warn("Bank does not belong to user")
		return entity.Bank{}, bank.ErrBankNotOwned
	}

	return b, nil
}
