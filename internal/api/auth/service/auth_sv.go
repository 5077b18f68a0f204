package authService

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"mordomia/internal/api/auth"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authDomainImpl) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	user, err := s.users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if user.AuthProvider == entity.AuthProviderGoogle && user.Password == "" {
		return auth.LoginUserResponse{}, auth.ErrPasswordLoginDisabled
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	res, err := issueToken(user)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return res, nil
}

// LoginGoogle returns the consent URL. The state is single-use and expires
// after ten minutes.
func (s *authDomainImpl) LoginGoogle(c context.Context) (string, error) {
	if s.googleProvider == nil || s.redisServer == nil {
		return "", auth.ErrGoogleUnavailable
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	state := hex.EncodeToString(raw)

	if err := s.redisServer.SetOAuthState(c, state, oauthStateTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to store oauth state")
		return "", err
	}

	return s.googleProvider.AuthCodeURL(state), nil
}

// UserLoginGoogle finishes the Google flow, creating the account on the
// first sign-in.
func (s *authDomainImpl) UserLoginGoogle(c context.Context, req auth.GoogleCallbackRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if s.googleProvider == nil || s.redisServer == nil {
		return auth.LoginUserResponse{}, auth.ErrGoogleUnavailable
	}

	valid, err := s.redisServer.ConsumeOAuthState(c, req.State)
	if err != nil {
		return auth.LoginUserResponse{}, err
	}
	if !valid {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Invalid state parameter")
		return auth.LoginUserResponse{}, auth.ErrInvalidOAuthState
	}

	body, err := s.googleProvider.GetUserExchangeToken(c, req.Code)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to exchange google code")
		return auth.LoginUserResponse{}, auth.ErrGoogleExchange
	}

	var info auth.UserGoogle
	if err := jsoniter.Unmarshal(body, &info); err != nil || info.Email == "" {
		return auth.LoginUserResponse{}, auth.ErrGoogleExchange
	}

	user, err := s.users.GetByEmail(c, info.Email)
	if errors.Is(err, auth.ErrUserNotFound) {
		user, err = s.users.registerGoogleUser(c, info)
	}
	if err != nil {
		return auth.LoginUserResponse{}, err
	}

	return issueToken(user)
}

// Logout revokes the token's id until the token would have expired anyway.
func (s *authDomainImpl) Logout(c context.Context, user entity.UserLoginData) error {
	if s.redisServer == nil {
		return auth.ErrRevokeToken
	}

	ttl := time.Until(user.ExpiresAt)
	if ttl <= 0 || user.TokenID == "" {
		return nil
	}

	if err := s.redisServer.RevokeToken(c, user.TokenID, ttl); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return auth.ErrRevokeToken
	}

	return nil
}
