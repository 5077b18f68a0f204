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

const entityCard = "card"

func cardFromRequest(req bank.CardRequest) (entity.Card, error) {
	expiry, err := entity.ParseDate(req.ExpiryDate)
	if err != nil {
		return entity.Card{}, bank.ErrInvalidDate
	}

	card := entity.Card{
		ID:         req.ID,
		BankID:     req.BankID,
		Type:       entity.CardType(req.Type),
		ExpiryDate: expiry,
	}

	return card, card.Validate()
}

func (s *bankService) CreateCard(ctx context.Context, req bank.CardRequest) (entity.Card, error) {
	requestID := contextPkg.GetRequestID(ctx)

	card, err := cardFromRequest(req)
	if err != nil {
		return entity.Card{}, err
	}

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return entity.Card{}, err
	}

	if _, err := s.ownedBank(ctx, repo, req.BankID, req.UserID); err != nil {
		return entity.Card{}, err
	}

	card.ID, err = s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Card{}, err
	}
	card.CreatedAt = s.utils.Now()
	card.UpdatedAt = card.CreatedAt

	if err := repo.Card.CreateCard(ctx, card); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create card")
		return entity.Card{}, bank.ErrCreateCard
	}

	s.publish(req.UserID, entityCard, realtime.ActionCreated, card.ID)
	return card, nil
}

func (s *bankService) GetCards(ctx context.Context, bankID string, userID string) ([]entity.Card, error) {
	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedBank(ctx, repo, bankID, userID); err != nil {
		return nil, err
	}

	return repo.Card.GetCardsByBankID(ctx, bankID)
}

func (s *bankService) UpdateCard(ctx context.Context, req bank.CardRequest) (entity.Card, error) {
	requestID := contextPkg.GetRequestID(ctx)

	card, err := cardFromRequest(req)
	if err != nil {
		return entity.Card{}, err
	}

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return entity.Card{}, err
	}

	if _, err := s.ownedBank(ctx, repo, req.BankID, req.UserID); err != nil {
		return entity.Card{}, err
	}

	existing, err := repo.Card.GetCardByID(ctx, req.ID)
	if err != nil {
		return entity.Card{}, err
	}
	if existing.BankID != req.BankID {
		return entity.Card{}, bank.ErrCardNotFound
	}

	card.CreatedAt = existing.CreatedAt
	card.UpdatedAt = s.utils.Now()

	if err := repo.Card.UpdateCard(ctx, card); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"card_id":    req.ID,
			"error":      err.Error(),
		}).Error("Failed to update card")
		return entity.Card{}, bank.ErrUpdateCard
	}

	s.publish(req.UserID, entityCard, realtime.ActionUpdated, card.ID)
	return card, nil
}

func (s *bankService) DeleteCard(ctx context.Context, bankID string, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return err
	}

	if _, err := s.ownedBank(ctx, repo, bankID, userID); err != nil {
		return err
	}

	existing, err := repo.Card.GetCardByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.BankID != bankID {
		return bank.ErrCardNotFound
	}

	if err := repo.Card.DeleteCard(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"card_id":    id,
			"error":      err.Error(),
		}).Error("Failed to delete card")
		return bank.ErrDeleteCard
	}

	s.publish(userID, entityCard, realtime.ActionDeleted, id)
	return nil
}
