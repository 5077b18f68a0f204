package goalRepository

import (
	"database/sql"
	"errors"
	"mordomia/database/postgres"
	"mordomia/internal/api/goal"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type GoalDB struct {
	ID            sql.NullString  `db:"id"`
	UserID        sql.NullString  `db:"user_id"`
	Title         sql.NullString  `db:"title"`
	Category      sql.NullString  `db:"category"`
	TargetAmount  sql.NullFloat64 `db:"target_amount"`
	CurrentAmount sql.NullFloat64 `db:"current_amount"`
	Deadline      time.Time       `db:"deadline"`
	Notes         sql.NullString  `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func goalArgs(g entity.Goal) map[string]interface{} {
	notes := sql.NullString{String: g.Notes, Valid: g.Notes != ""}

	return map[string]interface{}{
		"id":             g.ID,
		"user_id":        g.UserID,
		"title":          g.Title,
		"category":       string(g.Category),
		"target_amount":  g.TargetAmount,
		"current_amount": g.CurrentAmount,
		"deadline":       entity.DateOnly(g.Deadline),
		"notes":          notes,
		"created_at":     g.CreatedAt,
		"updated_at":     g.UpdatedAt,
	}
}

func (r *goalRepository) CreateGoal(c context.Context, g entity.Goal) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := postgres.NamedExec(c, r.q, queryCreateGoal, goalArgs(g)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating goal")
		return err
	}

	return nil
}

func (r *goalRepository) GetGoalByID(c context.Context, id string) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(c)
	var row GoalDB

	if err := postgres.NamedGet(c, r.q, &row, queryGetGoalByID, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"goal_id":    id,
			}).Warn("GetGoalByID no rows found")
			return entity.Goal{}, goal.ErrGoalNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalByID execution err")
		return entity.Goal{}, err
	}

	return makeGoal(row), nil
}

func (r *goalRepository) GetGoalsByUser(c context.Context, userID string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []GoalDB

	if err := postgres.NamedSelect(c, r.q, &rows, queryGetGoalsByUser, map[string]interface{}{"user_id": userID}); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalsByUser execution err")
		return nil, err
	}

	result := make([]entity.Goal, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeGoal(row))
	}

	return result, nil
}

func (r *goalRepository) UpdateGoal(c context.Context, g entity.Goal) error {
	return r.exec(c, queryUpdateGoal, goalArgs(g), "UpdateGoal")
}

func (r *goalRepository) UpdateGoalProgress(c context.Context, id string, currentAmount float64, updatedAt time.Time) error {
	return r.exec(c, queryUpdateGoalProgress, map[string]interface{}{
		"id":             id,
		"current_amount": currentAmount,
		"updated_at":     updatedAt,
	}, "UpdateGoalProgress")
}

func (r *goalRepository) DeleteGoal(c context.Context, id string) error {
	return r.exec(c, queryDeleteGoal, map[string]interface{}{"id": id}, "DeleteGoal")
}

func (r *goalRepository) exec(c context.Context, query string, argsKV map[string]interface{}, op string) error {
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
		return goal.ErrGoalNotFound
	}

	return nil
}

func makeGoal(row GoalDB) entity.Goal {
	return entity.Goal{
		ID:            row.ID.String,
		UserID:        row.UserID.String,
		Title:         row.Title.String,
		Category:      entity.GoalCategory(row.Category.String),
		TargetAmount:  row.TargetAmount.Float64,
		CurrentAmount: row.CurrentAmount.Float64,
		Deadline:      entity.DateOnly(row.Deadline),
		Notes:         row.Notes.String,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
