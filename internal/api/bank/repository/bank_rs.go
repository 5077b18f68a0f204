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

type BankDB struct {
	ID              sql.NullString `db:"id"`
	UserID          sql.NullString `db:"user_id"`
	Name            sql.NullString `db:"name"`
	Agency          sql.NullString `db:"agency"`
	AccountHolder   sql.NullString `db:"account_holder"`
	InvestmentsInfo sql.NullString `db:"investments_info"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *bankRepository) CreateBank(c context.Context, b entity.Bank) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               b.ID,
		"user_id":          b.UserID,
		"name":             b.Name,
		"agency":           b.Agency,
		"account_holder":   b.AccountHolder,
		"investments_info": nullString(b.InvestmentsInfo),
		"created_at":       b.CreatedAt,
		"updated_at":       b.UpdatedAt,
	}

	if _, err := postgres.NamedExec(c, r.q, queryCreateBank, argsKV); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating bank")
		return err
	}

	return nil
}

func (r *bankRepository) GetBankByID(c context.Context, id string) (entity.Bank, error) {
	requestID := contextPkg.GetRequestID(c)
	var row BankDB

	if err := postgres.NamedGet(c, r.q, &row, queryGetBankByID, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"bank_id":    id,
			}).Warn("GetBankByID no rows found")
			return entity.Bank{}, bank.ErrBankNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBankByID execution err")
		return entity.Bank{}, err
	}

	return makeBank(row), nil
}

func (r *bankRepository) GetBanksByUserID(c context.Context, userID string) ([]entity.Bank, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []BankDB

	if err := postgres.NamedSelect(c, r.q, &rows, queryGetBanksByUserID, map[string]interface{}{"user_id": userID}); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBanksByUserID execution err")
		return nil, err
	}

	result := make([]entity.Bank, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeBank(row))
	}

	return result, nil
}

func (r *bankRepository) UpdateBank(c context.Context, b entity.Bank) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               b.ID,
		"name":             b.Name,
		"agency":           b.Agency,
		"account_holder":   b.AccountHolder,
		"investments_info": nullString(b.InvestmentsInfo),
		"updated_at":       b.UpdatedAt,
	}

	rowsAffected, err := postgres.NamedExec(c, r.q, queryUpdateBank, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBank execution err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateBank no rows affected")
		return bank.ErrBankNotFound
	}

	return nil
}

// DeleteBank removes the bank; balances, investments and cards cascade.
func (r *bankRepository) DeleteBank(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryDeleteBank, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBank execution err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteBank no rows affected")
		return bank.ErrBankNotFound
	}

	return nil
}

func makeBank(row BankDB) entity.Bank {
	return entity.Bank{
		ID:              row.ID.String,
		UserID:          row.UserID.String,
		Name:            row.Name.String,
		Agency:          row.Agency.String,
		AccountHolder:   row.AccountHolder.String,
		InvestmentsInfo: row.InvestmentsInfo.String,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
