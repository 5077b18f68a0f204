package authRepository

import (
	"database/sql"
	"errors"
	"mordomia/database/postgres"
	"mordomia/internal/api/auth"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type UserDB struct {
	ID           sql.NullString `db:"id"`
	Email        sql.NullString `db:"email"`
	Name         sql.NullString `db:"name"`
	Password     sql.NullString `db:"password"`
	AuthProvider sql.NullInt16  `db:"auth_provider"`
	CreatedAt    sql.NullTime   `db:"created_at"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            user.ID,
		"email":         user.Email,
		"name":          user.Name,
		"password":      sql.NullString{String: user.Password, Valid: user.Password != ""},
		"auth_provider": user.AuthProvider.Value(),
		"created_at":    user.CreatedAt,
		"updated_at":    user.UpdatedAt,
	}

	if _, err := postgres.NamedExec(c, r.q, queryCreateUser, argsKV); err != nil {
		if postgres.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Email already exists")
			return auth.ErrEmailAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")

		return err
	}

	return nil
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	return r.getOne(c, queryGetById, map[string]interface{}{"id": id}, "GetByID")
}

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	return r.getOne(c, queryGetByEmail, map[string]interface{}{"email": email}, "GetByEmail")
}

func (r *userRepository) getOne(c context.Context, query string, argsKV map[string]interface{}, op string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var user UserDB

	if err := postgres.NamedGet(c, r.q, &user, query, argsKV); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn(op + " no rows found")
			return entity.User{}, auth.ErrUserNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.User{}, err
	}

	return makeUser(user), nil
}

func (r *userRepository) DeleteUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	rowsAffected, err := postgres.NamedExec(c, r.q, queryDeleteUser, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser execution err")
		return err
	}

	if rowsAffected == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func makeUser(user UserDB) entity.User {
	return entity.User{
		ID:           user.ID.String,
		Email:        user.Email.String,
		Name:         user.Name.String,
		Password:     user.Password.String,
		AuthProvider: entity.AuthProvider(user.AuthProvider.Int16),
		CreatedAt:    nullTime(user.CreatedAt),
		UpdatedAt:    nullTime(user.UpdatedAt),
	}
}

func nullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
