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

type ExpenseDB struct {
	ID           sql.NullString  `db:"id"`
	UserID       sql.NullString  `db:"user_id"`
	Name         sql.NullString  `db:"name"`
	Amount       sql.NullFloat64 `db:"amount"`
	Category     sql.NullString  `db:"category"`
	Date         time.Time       `db:"date"`
	Status       sql.NullString  `db:"status"`
	BillingType  sql.NullString  `db:"billing_type"`
	BillingDay   sql.NullInt16   `db:"billing_day"`
	BillingMonth sql.NullInt16   `db:"billing_month"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func nullInt(v *int) sql.NullInt16 {
	if v == nil {
		return sql.NullInt16{}
	}
	return sql.NullInt16{Int16: int16(*v), Valid: true}
}

func intPtr(v sql.NullInt16) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int16)
	return &i
}

func expenseArgs(e entity.Expense) map[string]interface{} {
	return map[string]interface{}{
		"id":            e.ID,
		"user_id":       e.UserID,
		"name":          e.Name,
		"amount":        e.Amount,
		"category":      e.Category,
		"date":          entity.DateOnly(e.Date),
		"status":        string(e.Status),
		"billing_type":  string(e.BillingType),
		"billing_day":   nullInt(e.BillingDay),
		"billing_month": nullInt(e.BillingMonth),
		"created_at":    e.CreatedAt,
		"updated_at":    e.UpdatedAt,
	}
}

func (r *expenseRepository) CreateExpense(c context.Context, e entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := postgres.NamedExec(c, r.q, queryCreateExpense, expenseArgs(e)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")
		return err
	}

	return nil
}

func (r *expenseRepository) GetExpenseByID(c context.Context, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ExpenseDB

	if err := postgres.NamedGet(c, r.q, &row, queryGetExpenseByID, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"expense_id": id,
			}).Warn("GetExpenseByID no rows found")
			return entity.Expense{}, finance.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenseByID execution err")
		return entity.Expense{}, err
	}

	return makeExpense(row), nil
}

func (r *expenseRepository) GetExpenses(c context.Context, filter Filter) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ExpenseDB

	query, argsKV := buildFilteredQuery(querySelectExpenses, filter, "status")
	if err := postgres.NamedSelect(c, r.q, &rows, query, argsKV); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenses execution err")
		return nil, err
	}

	result := make([]entity.Expense, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeExpense(row))
	}

	return result, nil
}

func (r *expenseRepository) UpdateExpense(c context.Context, e entity.Expense) error {
	return r.exec(c, queryUpdateExpense, expenseArgs(e), "UpdateExpense")
}

func (r *expenseRepository) UpdateExpenseStatus(c context.Context, id string, status entity.ExpenseStatus, updatedAt time.Time) error {
	return r.exec(c, queryUpdateExpenseStatus, map[string]interface{}{
		"id":         id,
		"status":     string(status),
		"updated_at": updatedAt,
	}, "UpdateExpenseStatus")
}

func (r *expenseRepository) DeleteExpense(c context.Context, id string) error {
	return r.exec(c, queryDeleteExpense, map[string]interface{}{"id": id}, "DeleteExpense")
}

func (r *expenseRepository) exec(c context.Context, query string, argsKV map[string]interface{}, op string) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, query, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(op + " no rows affected")
		return finance.ErrExpenseNotFound
	}

	return nil
}

func makeExpense(row ExpenseDB) entity.Expense {
	return entity.Expense{
		ID:           row.ID.String,
		UserID:       row.UserID.String,
		Name:         row.Name.String,
		Amount:       row.Amount.Float64,
		Category:     row.Category.String,
		Date:         entity.DateOnly(row.Date),
		Status:       entity.ExpenseStatus(row.Status.String),
		BillingType:  entity.BillingType(row.BillingType.String),
		BillingDay:   intPtr(row.BillingDay),
		BillingMonth: intPtr(row.BillingMonth),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
