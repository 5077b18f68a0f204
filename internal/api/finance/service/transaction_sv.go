package financeService

import (
	"mordomia/internal/api/finance"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const entityTransaction = "transaction"

func transactionFromRequest(req finance.TransactionRequest) (entity.Transaction, error) {
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return entity.Transaction{}, finance.ErrInvalidDate
	}

	tx := entity.Transaction{
		ID:                req.ID,
		UserID:            req.UserID,
		Type:              entity.TransactionType(req.Type),
		Amount:            metrics.Round2(req.Amount),
		Description:       strings.TrimSpace(req.Description),
		Category:          strings.TrimSpace(req.Category),
		Date:              date,
		PaymentType:       entity.PaymentType(req.PaymentType),
		DestinationBankID: req.DestinationBankID,
	}

	return tx, tx.Validate()
}

func (s *financeService) CreateTransaction(ctx context.Context, req finance.TransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	tx, err := transactionFromRequest(req)
	if err != nil {
		return entity.Transaction{}, err
	}

	if err := s.checkDestinationBank(ctx, req.UserID, tx.DestinationBankID); err != nil {
		return entity.Transaction{}, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	tx.ID, err = s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}
	tx.CreatedAt = s.utils.Now()
	tx.UpdatedAt = tx.CreatedAt

	if err := repo.Transaction.CreateTransaction(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, finance.ErrCreateTransaction
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": tx.ID,
		"type":           tx.Type,
	}).Info("Transaction created")

	s.snapshotAfterCreate(ctx, tx)
	s.publish(tx.UserID, entityTransaction, realtime.ActionCreated, tx.ID)

	return tx, nil
}

func (s *financeService) GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error) {
	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return entity.Transaction{}, err
	}

	tx, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	if tx.UserID != userID {
		return entity.Transaction{}, finance.ErrTransactionNotOwned
	}

	return tx, nil
}

func (s *financeService) GetTransactions(ctx context.Context, filter finance.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoFilter, err := monthFilter(filter.UserID, filter.Month)
	if err != nil {
		return nil, err
	}
	repoFilter.Type = filter.Type
	repoFilter.Category = strings.TrimSpace(filter.Category)

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Transaction.GetTransactions(ctx, repoFilter)
}

func (s *financeService) UpdateTransaction(ctx context.Context, req finance.TransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	updated, err := transactionFromRequest(req)
	if err != nil {
		return entity.Transaction{}, err
	}

	existing, err := s.GetTransactionByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Transaction{}, err
	}

	if updated.DestinationBankID != existing.DestinationBankID {
		if err := s.checkDestinationBank(ctx, req.UserID, updated.DestinationBankID); err != nil {
			return entity.Transaction{}, err
		}
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return entity.Transaction{}, err
	}

	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.utils.Now()

	if err := repo.Transaction.UpdateTransaction(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": req.ID,
			"error":          err.Error(),
		}).Error("Failed to update transaction")
		if err == finance.ErrTransactionNotFound {
			return entity.Transaction{}, err
		}
		return entity.Transaction{}, finance.ErrUpdateTransaction
	}

	s.snapshotAfterUpdate(ctx, existing, updated)
	s.publish(updated.UserID, entityTransaction, realtime.ActionUpdated, updated.ID)

	return updated, nil
}

func (s *financeService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	existing, err := s.GetTransactionByID(ctx, id, userID)
	if err != nil {
		return err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Transaction.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Error("Failed to delete transaction")
		if err == finance.ErrTransactionNotFound {
			return err
		}
		return finance.ErrDeleteTransaction
	}

	s.snapshotAfterDelete(ctx, existing)
	s.publish(userID, entityTransaction, realtime.ActionDeleted, id)

	return nil
}
