package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	jwtPkg "mordomia/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type fakeRevocations struct {
	revoked map[string]bool
}

func (f *fakeRevocations) RevokeToken(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeRevocations) IsTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func (f *fakeRevocations) SetOAuthState(context.Context, string, time.Duration) error { return nil }

func (f *fakeRevocations) ConsumeOAuthState(context.Context, string) (bool, error) {
	return false, nil
}

func newTestApp(t *testing.T, revocations *fakeRevocations) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := New(logger, revocations)
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/me", m.NewTokenMiddleware, func(ctx *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(ctx)
		if err != nil {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}
		if contextPkg.GetUserID(contextPkg.FromFiberCtx(ctx)) != user.ID {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}
		return ctx.SendString(user.ID)
	})
	return app
}

func signTestToken(t *testing.T) (string, entity.UserLoginData) {
	t.Helper()

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       "user-1",
		"email":    "ana@example.com",
		"username": "ana",
	}, time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	parsed, err := jwtPkg.VerifyToken(token, AccessTokenSecret)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	user, err := jwtPkg.ClaimsToLoginData(parsed)
	if err != nil {
		t.Fatalf("ClaimsToLoginData() error = %v", err)
	}
	return token, user
}

func TestTokenMiddleware(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")

	token, user := signTestToken(t)

	tests := []struct {
		name       string
		header     string
		revoke     bool
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer " + token, revoke: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revocations := &fakeRevocations{revoked: map[string]bool{}}
			if tt.revoke {
				revocations.revoked[user.TokenID] = true
			}
			app := newTestApp(t, revocations)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRequestIDMiddlewareEchoesHeader(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Get("/", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "req-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if got := resp.Header.Get(RequestIDKey); got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if got := resp.Header.Get(RequestIDKey); len(got) != 26 {
		t.Errorf("generated request id = %q, want a ULID", got)
	}
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "1")
	t.Setenv("RATE_LIMIT_BURST", "2")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	m := New(logger, nil)

	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		statuses = append(statuses, resp.StatusCode)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK || statuses[2] != http.StatusTooManyRequests {
		t.Errorf("statuses = %v, want [200 200 429]", statuses)
	}
}

func TestSanitizeRequestBody(t *testing.T) {
	got := sanitizeRequestBody("/api/v1/auth/login", `{"email":"a@b.c","password":"hunter2"}`)
	if got != `{"email":"a@b.c","password":"[SECRET]"}` {
		t.Errorf("sanitizeRequestBody() = %s", got)
	}

	if got := sanitizeRequestBody("/x", "plain"); got != "[non-JSON body]" {
		t.Errorf("sanitizeRequestBody(non-json) = %s", got)
	}
}
