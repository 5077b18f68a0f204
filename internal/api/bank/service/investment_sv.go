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

const entityInvestment = "investment"

func investmentFromRequest(req bank.InvestmentRequest) (entity.Investment, error) {
	start, err := entity.ParseDate(req.StartDate)
	if err != nil {
		return entity.Investment{}, bank.ErrInvalidDate
	}

	end, err := entity.ParseOptionalDate(req.EndDate)
	if err != nil {
		return entity.Investment{}, bank.ErrInvalidDate
	}

	return entity.Investment{
		ID:           req.ID,
		BankID:       req.BankID,
		Type:         req.Type,
		InitialValue: req.InitialValue,
		FinalValue:   req.FinalValue,
		PeriodType:   entity.InvestmentPeriodType(req.PeriodType),
		StartDate:    start,
		EndDate:      end,
	}, nil
}

func (s *bankService) CreateInvestment(ctx context.Context, req bank.InvestmentRequest) (entity.Investment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	investment, err := investmentFromRequest(req)
	if err != nil {
		return entity.Investment{}, err
	}
	if err := investment.Validate(); err != nil {
		return entity.Investment{}, err
	}

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return entity.Investment{}, err
	}

	if _, err := s.ownedBank(ctx, repo, req.BankID, req.UserID); err != nil {
		return entity.Investment{}, err
	}

	investment.ID, err = s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Investment{}, err
	}
	investment.CreatedAt = s.utils.Now()
	investment.UpdatedAt = investment.CreatedAt

	if err := repo.Investment.CreateInvestment(ctx, investment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create investment")
		return entity.Investment{}, bank.ErrCreateInvestment
	}

	s.publish(req.UserID, entityInvestment, realtime.ActionCreated, investment.ID)
	return investment, nil
}

func (s *bankService) GetInvestments(ctx context.Context, bankID string, userID string) ([]entity.Investment, error) {
	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedBank(ctx, repo, bankID, userID); err != nil {
		return nil, err
	}

	return repo.Investment.GetInvestmentsByBankID(ctx, bankID)
}

func (s *bankService) UpdateInvestment(ctx context.Context, req bank.InvestmentRequest) (entity.Investment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	updated, err := investmentFromRequest(req)
	if err != nil {
		return entity.Investment{}, err
	}
	if err := updated.Validate(); err != nil {
		return entity.Investment{}, err
	}

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return entity.Investment{}, err
	}

	if _, err := s.ownedBank(ctx, repo, req.BankID, req.UserID); err != nil {
		return entity.Investment{}, err
	}

	existing, err := repo.Investment.GetInvestmentByID(ctx, req.ID)
	if err != nil {
		return entity.Investment{}, err
	}
	if existing.BankID != req.BankID {
		return entity.Investment{}, bank.ErrInvestmentNotFound
	}

	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.utils.Now()

	if err := repo.Investment.UpdateInvestment(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"investment_id": req.ID,
			"error":         err.Error(),
		}).Error("Failed to update investment")
		return entity.Investment{}, bank.ErrUpdateInvestment
	}

	s.publish(req.UserID, entityInvestment, realtime.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *bankService) DeleteInvestment(ctx context.Context, bankID string, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return err
	}

	if _, err := s.ownedBank(ctx, repo, bankID, userID); err != nil {
		return err
	}

	existing, err := repo.Investment.GetInvestmentByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.BankID != bankID {
		return bank.ErrInvestmentNotFound
	}

	if err := repo.Investment.DeleteInvestment(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"investment_id": id,
			"error":         err.Error(),
		}).Error("Failed to delete investment")
		return bank.ErrDeleteInvestment
	}

	s.publish(userID, entityInvestment, realtime.ActionDeleted, id)
	return nil
}
