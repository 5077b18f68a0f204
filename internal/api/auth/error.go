package auth

import (
	"mordomia/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrorInvalidToken         = response.NewError(http.StatusUnauthorized, "invalid token")
	ErrInvalidOAuthState      = response.NewError(http.StatusBadRequest, "invalid oauth state")
	ErrGoogleExchange         = response.NewError(http.StatusBadGateway, "failed to exchange google code")
	ErrGoogleUnavailable      = response.NewError(http.StatusServiceUnavailable, "google sign-in is not configured")
	ErrPasswordLoginDisabled  = response.NewError(http.StatusBadRequest, "account uses google sign-in")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrRevokeToken            = response.NewError(http.StatusInternalServerError, "failed to revoke token")
)
