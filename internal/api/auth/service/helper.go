package authService

import (
	"mordomia/internal/api/auth"
	"mordomia/internal/entity"
	jwtPkg "mordomia/pkg/jwt"
	"os"
	"time"
)

const (
	defaultTokenTTL = time.Hour
	oauthStateTTL   = 10 * time.Minute
)

// tokenTTL reads JWT_ACCESS_TOKEN_TTL as a Go duration ("2h", "90m").
func tokenTTL() time.Duration {
	if ttl, err := time.ParseDuration(os.Getenv("JWT_ACCESS_TOKEN_TTL")); err == nil && ttl > 0 {
		return ttl
	}
	return defaultTokenTTL
}

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Name,
	}
}

func issueToken(user entity.User) (auth.LoginUserResponse, error) {
	token, expired, err := jwtPkg.Sign(MakeUserData(user), tokenTTL())
	if err != nil {
		return auth.LoginUserResponse{}, err
	}

	return auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}
