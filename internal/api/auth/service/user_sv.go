package authService

import (
	"errors"
	"mordomia/internal/api/auth"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.CreateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return entity.User{}, err
	}

	user := entity.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		Password:     hashedPassword,
		AuthProvider: entity.AuthProviderPassword,
	}

	return s.create(c, user)
}

// registerGoogleUser creates a passwordless account for a first Google
// sign-in.
func (s *userDomainImpl) registerGoogleUser(c context.Context, info auth.UserGoogle) (entity.User, error) {
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = info.Email
	}

	return s.create(c, entity.User{
		Email:        strings.ToLower(info.Email),
		Name:         name,
		AuthProvider: entity.AuthProviderGoogle,
	})
}

func (s *userDomainImpl) create(c context.Context, user entity.User) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	user.ID, err = s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.User{}, err
	}
	user.CreatedAt = s.utils.Now()
	user.UpdatedAt = user.CreatedAt

	if err := repo.Users.CreateUser(c, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return entity.User{}, auth.ErrCreateUser
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
		"provider":   user.AuthProvider.String(),
	}).Info("User registered")

	return user, nil
}

func (s *userDomainImpl) GetByID(c context.Context, id string) (entity.User, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	return repo.Users.GetByID(c, id)
}

func (s *userDomainImpl) GetByEmail(c context.Context, email string) (entity.User, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	return repo.Users.GetByEmail(c, strings.ToLower(strings.TrimSpace(email)))
}
