package financeRepository

import (
	"database/sql"
	"errors"
	"mordomia/database/postgres"
	"mordomia/internal/api/finance"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type TransactionDB struct {
	ID                sql.NullString  `db:"id"`
	UserID            sql.NullString  `db:"user_id"`
	Type              sql.NullString  `db:"type"`
	Amount            sql.NullFloat64 `db:"amount"`
	Description       sql.NullString  `db:"description"`
	Category          sql.NullString  `db:"category"`
	Date              time.Time       `db:"date"`
	PaymentType       sql.NullString  `db:"payment_type"`
	DestinationBankID sql.NullString  `db:"destination_bank_id"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func transactionArgs(t entity.Transaction) map[string]interface{} {
	return map[string]interface{}{
		"id":                  t.ID,
		"user_id":             t.UserID,
		"type":                string(t.Type),
		"amount":              t.Amount,
		"description":         t.Description,
		"category":            t.Category,
		"date":                entity.DateOnly(t.Date),
		"payment_type":        string(t.PaymentType),
		"destination_bank_id": nullString(t.DestinationBankID),
		"created_at":          t.CreatedAt,
		"updated_at":          t.UpdatedAt,
	}
}

func (r *transactionRepository) CreateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := postgres.NamedExec(c, r.q, queryCreateTransaction, transactionArgs(t)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	if err := postgres.NamedGet(c, r.q, &row, queryGetTransactionByID, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"transaction_id": id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, finance.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactions(c context.Context, filter Filter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	query, argsKV := buildFilteredQuery(querySelectTransactions, filter, "type")
	if err := postgres.NamedSelect(c, r.q, &rows, query, argsKV); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactions execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryUpdateTransaction, transactionArgs(t))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateTransaction no rows affected")
		return finance.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryDeleteTransaction, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteTransaction no rows affected")
		return finance.ErrTransactionNotFound
	}

	return nil
}

func makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:                row.ID.String,
		UserID:            row.UserID.String,
		Type:              entity.TransactionType(row.Type.String),
		Amount:            row.Amount.Float64,
		Description:       row.Description.String,
		Category:          row.Category.String,
		Date:              entity.DateOnly(row.Date),
		PaymentType:       entity.PaymentType(row.PaymentType.String),
		DestinationBankID: row.DestinationBankID.String,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
