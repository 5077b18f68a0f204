package bankService

import (
	"mordomia/internal/api/bank"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const entityBalance = "account_balance"

// RecordBalance appends a manual snapshot to the bank's balance log.
func (s *bankService) RecordBalance(ctx context.Context, req bank.CreateBalanceRequest) (entity.AccountBalance, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return entity.AccountBalance{}, bank.ErrInvalidDate
	}

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.AccountBalance{}, err
	}

	if _, err := s.ownedBank(ctx, repo, req.BankID, req.UserID); err != nil {
		return entity.AccountBalance{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.AccountBalance{}, err
	}

	balance := entity.AccountBalance{
		ID:        ULID,
		BankID:    req.BankID,
		Balance:   req.Balance,
		Date:      date,
		Notes:     req.Notes,
		CreatedAt: s.utils.Now(),
	}

	if err := repo.Balance.CreateBalance(ctx, balance); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"bank_id":    req.BankID,
			"error":      err.Error(),
		}).Error("Failed to record balance")
		return entity.AccountBalance{}, bank.ErrCreateBalance
	}

	s.publish(req.UserID, entityBalance, realtime.ActionCreated, balance.ID)
	return balance, nil
}

func (s *bankService) GetBalanceHistory(ctx context.Context, bankID string, userID string) ([]entity.AccountBalance, error) {
	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedBank(ctx, repo, bankID, userID); err != nil {
		return nil, err
	}

	return repo.Balance.GetBalancesByBankID(ctx, bankID)
}

func (s *bankService) GetLatestBalance(ctx context.Context, bankID string, userID string) (entity.AccountBalance, error) {
	balances, err := s.GetBalanceHistory(ctx, bankID, userID)
	if err != nil {
		return entity.AccountBalance{}, err
	}

	latest, ok := metrics.LatestBalance(balances, bankID)
	if !ok {
		return entity.AccountBalance{}, bank.ErrBalanceNotFound
	}

	return latest, nil
}
