package bankRepository

import (
	"database/sql"
	"errors"
	"mordomia/database/postgres"
	"mordomia/internal/api/bank"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type CardDB struct {
	ID         sql.NullString `db:"id"`
	BankID     sql.NullString `db:"bank_id"`
	Type       sql.NullString `db:"type"`
	ExpiryDate time.Time      `db:"expiry_date"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *cardRepository) CreateCard(c context.Context, card entity.Card) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          card.ID,
		"bank_id":     card.BankID,
		"type":        string(card.Type),
		"expiry_date": card.ExpiryDate,
		"created_at":  card.CreatedAt,
		"updated_at":  card.UpdatedAt,
	}

	if _, err := postgres.NamedExec(c, r.q, queryCreateCard, argsKV); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating card")
		return err
	}

	return nil
}

func (r *cardRepository) GetCardByID(c context.Context, id string) (entity.Card, error) {
	requestID := contextPkg.GetRequestID(c)
	var row CardDB

	if err := postgres.NamedGet(c, r.q, &row, queryGetCardByID, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Card{}, bank.ErrCardNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCardByID execution err")
		return entity.Card{}, err
	}

	return makeCard(row), nil
}

func (r *cardRepository) GetCardsByBankID(c context.Context, bankID string) ([]entity.Card, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []CardDB

	if err := postgres.NamedSelect(c, r.q, &rows, queryGetCardsByBankID, map[string]interface{}{"bank_id": bankID}); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCardsByBankID execution err")
		return nil, err
	}

	result := make([]entity.Card, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeCard(row))
	}

	return result, nil
}

func (r *cardRepository) UpdateCard(c context.Context, card entity.Card) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          card.ID,
		"type":        string(card.Type),
		"expiry_date": card.ExpiryDate,
		"updated_at":  card.UpdatedAt,
	}

	rowsAffected, err := postgres.NamedExec(c, r.q, queryUpdateCard, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCard execution err")
		return err
	}

	if rowsAffected == 0 {
		return bank.ErrCardNotFound
	}

	return nil
}

func (r *cardRepository) DeleteCard(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryDeleteCard, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCard execution err")
		return err
	}

	if rowsAffected == 0 {
		return bank.ErrCardNotFound
	}

	return nil
}

func makeCard(row CardDB) entity.Card {
	return entity.Card{
		ID:         row.ID.String,
		BankID:     row.BankID.String,
		Type:       entity.CardType(row.Type.String),
		ExpiryDate: entity.DateOnly(row.ExpiryDate),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
