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

type InvestmentDB struct {
	ID           sql.NullString  `db:"id"`
	BankID       sql.NullString  `db:"bank_id"`
	Type         sql.NullString  `db:"type"`
	InitialValue sql.NullFloat64 `db:"initial_value"`
	FinalValue   sql.NullFloat64 `db:"final_value"`
	PeriodType   sql.NullString  `db:"period_type"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      sql.NullTime    `db:"end_date"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func investmentArgs(i entity.Investment) map[string]interface{} {
	return map[string]interface{}{
		"id":            i.ID,
		"bank_id":       i.BankID,
		"type":          i.Type,
		"initial_value": i.InitialValue,
		"final_value":   i.FinalValue,
		"period_type":   string(i.PeriodType),
		"start_date":    i.StartDate,
		"end_date":      i.EndDate,
		"created_at":    i.CreatedAt,
		"updated_at":    i.UpdatedAt,
	}
}

func (r *investmentRepository) CreateInvestment(c context.Context, investment entity.Investment) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := postgres.NamedExec(c, r.q, queryCreateInvestment, investmentArgs(investment)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating investment")
		return err
	}

	return nil
}

func (r *investmentRepository) GetInvestmentByID(c context.Context, id string) (entity.Investment, error) {
	requestID := contextPkg.GetRequestID(c)
	var row InvestmentDB

	if err := postgres.NamedGet(c, r.q, &row, queryGetInvestmentByID, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Investment{}, bank.ErrInvestmentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetInvestmentByID execution err")
		return entity.Investment{}, err
	}

	return makeInvestment(row), nil
}

func (r *investmentRepository) GetInvestmentsByBankID(c context.Context, bankID string) ([]entity.Investment, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []InvestmentDB

	if err := postgres.NamedSelect(c, r.q, &rows, queryGetInvestmentsByBankID, map[string]interface{}{"bank_id": bankID}); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetInvestmentsByBankID execution err")
		return nil, err
	}

	result := make([]entity.Investment, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeInvestment(row))
	}

	return result, nil
}

func (r *investmentRepository) UpdateInvestment(c context.Context, investment entity.Investment) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryUpdateInvestment, investmentArgs(investment))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateInvestment execution err")
		return err
	}

	if rowsAffected == 0 {
		return bank.ErrInvestmentNotFound
	}

	return nil
}

func (r *investmentRepository) DeleteInvestment(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryDeleteInvestment, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteInvestment execution err")
		return err
	}

	if rowsAffected == 0 {
		return bank.ErrInvestmentNotFound
	}

	return nil
}

func makeInvestment(row InvestmentDB) entity.Investment {
	investment := entity.Investment{
		ID:           row.ID.String,
		BankID:       row.BankID.String,
		Type:         row.Type.String,
		InitialValue: row.InitialValue.Float64,
		PeriodType:   entity.InvestmentPeriodType(row.PeriodType.String),
		StartDate:    entity.DateOnly(row.StartDate),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.FinalValue.Valid {
		v := row.FinalValue.Float64
		investment.FinalValue = &v
	}
	if row.EndDate.Valid {
		d := entity.DateOnly(row.EndDate.Time)
		investment.EndDate = &d
	}

	return investment
}
