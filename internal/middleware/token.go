package middleware

import (
	"context"
	contextPkg "mordomia/pkg/context"
	jwtPkg "mordomia/pkg/jwt"
	"mordomia/pkg/redis"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

type tokenMiddleware struct {
	revocations redis.IRedis
}

func newTokenMiddleware(revocations redis.IRedis) *tokenMiddleware {
	return &tokenMiddleware{revocations: revocations}
}

func unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized, access token invalid or expired",
		"code":  "UNAUTHORIZED",
	})
}

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	m.log.WithFields(logrus.Fields{
		"path":      ctx.Path(),
		"method":    ctx.Method(),
		"client_ip": ctx.IP(),
	}).Debug("Incoming request")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"error": "Authorization header is missing",
		}).Warn("Authorization header check")
		return unauthorized(ctx)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"error": "Authorization header format is invalid",
		}).Warn("Authorization header check")
		return unauthorized(ctx)
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Token verification failed")
		return unauthorized(ctx)
	}

	user, err := jwtPkg.ClaimsToLoginData(userToken)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Token claims check")
		return unauthorized(ctx)
	}

	if m.token.revocations != nil {
		c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 2*time.Second)
		defer cancel()

		revoked, err := m.token.revocations.IsTokenRevoked(c, user.TokenID)
		if err != nil {
			m.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Revocation lookup failed")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Authentication temporarily unavailable",
				"code":  "AUTH_UNAVAILABLE",
			})
		}
		if revoked {
			m.log.WithFields(logrus.Fields{
				"user_id":  user.ID,
				"token_id": user.TokenID,
			}).Warn("Revoked token used")
			return unauthorized(ctx)
		}
	}

	ctx.Locals("user", user)
	ctx.Locals(contextPkg.UserIDKey, user.ID)

	m.log.WithField("user_id", user.ID).Debug("Authentication successful")
	return ctx.Next()
}
