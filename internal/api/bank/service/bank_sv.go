package bankService

import (
	"mordomia/internal/api/bank"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/realtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const entityBank = "bank"

func (s *bankService) CreateBank(ctx context.Context, req bank.CreateBankRequest) (entity.Bank, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Bank{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Bank{}, err
	}

	now := s.utils.Now()
	b := entity.Bank{
		ID:              ULID,
		UserID:          req.UserID,
		Name:            req.Name,
		Agency:          req.Agency,
		AccountHolder:   req.AccountHolder,
		InvestmentsInfo: req.InvestmentsInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := b.Validate(); err != nil {
		return entity.Bank{}, err
	}

	if err := repo.Bank.CreateBank(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create bank")
		return entity.Bank{}, bank.ErrCreateBank
	}

	s.publish(req.UserID, entityBank, realtime.ActionCreated, b.ID)
	return b, nil
}

// GetBanks returns the user's banks together with every balance snapshot
// recorded for them.
func (s *bankService) GetBanks(ctx context.Context, userID string) ([]entity.Bank, []entity.AccountBalance, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, nil, err
	}

	banks, err := repo.Bank.GetBanksByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	balances, err := repo.Balance.GetBalancesByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return banks, balances, nil
}

func (s *bankService) GetBank(ctx context.Context, id string, userID string) (entity.Bank, error) {
	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return entity.Bank{}, err
	}

	return s.ownedBank(ctx, repo, id, userID)
}

func (s *bankService) UpdateBank(ctx context.Context, req bank.UpdateBankRequest) (entity.Bank, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Bank{}, err
	}

	b, err := s.ownedBank(ctx, repo, req.ID, req.UserID)
	if err != nil {
		return entity.Bank{}, err
	}

	b.Name = req.Name
	b.Agency = req.Agency
	b.AccountHolder = req.AccountHolder
	b.InvestmentsInfo = req.InvestmentsInfo
	b.UpdatedAt = s.utils.Now()

	if err := b.Validate(); err != nil {
		return entity.Bank{}, err
	}

	if err := repo.Bank.UpdateBank(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"bank_id":    req.ID,
			"error":      err.Error(),
		}).Error("Failed to update bank")
		if err == bank.ErrBankNotFound {
			return entity.Bank{}, err
		}
		return entity.Bank{}, bank.ErrUpdateBank
	}

	s.publish(req.UserID, entityBank, realtime.ActionUpdated, b.ID)
	return b, nil
}

func (s *bankService) DeleteBank(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if _, err := s.ownedBank(ctx, repo, id, userID); err != nil {
		return err
	}

	if err := repo.Bank.DeleteBank(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"bank_id":    id,
			"error":      err.Error(),
		}).Error("Failed to delete bank")
		if err == bank.ErrBankNotFound {
			return err
		}
		return bank.ErrDeleteBank
	}

	s.publish(userID, entityBank, realtime.ActionDeleted, id)
	return nil
}
