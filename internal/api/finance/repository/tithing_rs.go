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

type TithingDB struct {
	ID        sql.NullString  `db:"id"`
	UserID    sql.NullString  `db:"user_id"`
	Amount    sql.NullFloat64 `db:"amount"`
	Church    sql.NullString  `db:"church"`
	Date      time.Time       `db:"date"`
	Type      sql.NullString  `db:"type"`
	Notes     sql.NullString  `db:"notes"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func tithingArgs(t entity.Tithing) map[string]interface{} {
	return map[string]interface{}{
		"id":         t.ID,
		"user_id":    t.UserID,
		"amount":     t.Amount,
		"church":     t.Church,
		"date":       entity.DateOnly(t.Date),
		"type":       string(t.Type),
		"notes":      nullString(t.Notes),
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}

func (r *tithingRepository) CreateTithing(c context.Context, t entity.Tithing) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := postgres.NamedExec(c, r.q, queryCreateTithing, tithingArgs(t)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating tithing")
		return err
	}

	return nil
}

func (r *tithingRepository) GetTithingByID(c context.Context, id string) (entity.Tithing, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TithingDB

	if err := postgres.NamedGet(c, r.q, &row, queryGetTithingByID, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"tithing_id": id,
			}).Warn("GetTithingByID no rows found")
			return entity.Tithing{}, finance.ErrTithingNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTithingByID execution err")
		return entity.Tithing{}, err
	}

	return makeTithing(row), nil
}

func (r *tithingRepository) GetTithings(c context.Context, filter Filter) ([]entity.Tithing, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TithingDB

	query, argsKV := buildFilteredQuery(querySelectTithings, filter, "type")
	if err := postgres.NamedSelect(c, r.q, &rows, query, argsKV); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTithings execution err")
		return nil, err
	}

	result := make([]entity.Tithing, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeTithing(row))
	}

	return result, nil
}

func (r *tithingRepository) UpdateTithing(c context.Context, t entity.Tithing) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryUpdateTithing, tithingArgs(t))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTithing execution err")
		return err
	}

	if rowsAffected == 0 {
		return finance.ErrTithingNotFound
	}

	return nil
}

func (r *tithingRepository) DeleteTithing(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryDeleteTithing, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTithing execution err")
		return err
	}

	if rowsAffected == 0 {
		return finance.ErrTithingNotFound
	}

	return nil
}

func makeTithing(row TithingDB) entity.Tithing {
	return entity.Tithing{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Amount:    row.Amount.Float64,
		Church:    row.Church.String,
		Date:      entity.DateOnly(row.Date),
		Type:      entity.TithingType(row.Type.String),
		Notes:     row.Notes.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
