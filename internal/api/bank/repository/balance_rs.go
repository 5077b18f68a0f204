package bankRepository

import (
	"database/sql"
	"mordomia/database/postgres"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AccountBalanceDB struct {
	ID        sql.NullString  `db:"id"`
	BankID    sql.NullString  `db:"bank_id"`
	Balance   sql.NullFloat64 `db:"balance"`
	Date      time.Time       `db:"date"`
	Notes     sql.NullString  `db:"notes"`
	CreatedAt time.Time       `db:"created_at"`
}

// CreateBalance appends to the balance log. Snapshots are never updated.
func (r *balanceRepository) CreateBalance(c context.Context, balance entity.AccountBalance) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         balance.ID,
		"bank_id":    balance.BankID,
		"balance":    balance.Balance,
		"date":       entity.DateOnly(balance.Date),
		"notes":      nullString(balance.Notes),
		"created_at": balance.CreatedAt,
	}

	if _, err := postgres.NamedExec(c, r.q, queryCreateBalance, argsKV); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"bank_id":    balance.BankID,
			"error":      err.Error(),
		}).Error("Database error when creating account balance")
		return err
	}

	return nil
}

func (r *balanceRepository) GetBalancesByBankID(c context.Context, bankID string) ([]entity.AccountBalance, error) {
	return r.selectBalances(c, queryGetBalancesByBankID, map[string]interface{}{"bank_id": bankID}, "GetBalancesByBankID")
}

func (r *balanceRepository) GetBalancesByUserID(c context.Context, userID string) ([]entity.AccountBalance, error) {
	return r.selectBalances(c, queryGetBalancesByUserID, map[string]interface{}{"user_id": userID}, "GetBalancesByUserID")
}

func (r *balanceRepository) selectBalances(c context.Context, query string, argsKV map[string]interface{}, op string) ([]entity.AccountBalance, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []AccountBalanceDB

	if err := postgres.NamedSelect(c, r.q, &rows, query, argsKV); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	result := make([]entity.AccountBalance, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.AccountBalance{
			ID:        row.ID.String,
			BankID:    row.BankID.String,
			Balance:   row.Balance.Float64,
			Date:      entity.DateOnly(row.Date),
			Notes:     row.Notes.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return result, nil
}
