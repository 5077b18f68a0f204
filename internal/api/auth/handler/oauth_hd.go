package authHandler

import (
	"errors"
	"mordomia/internal/api/auth"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/handlerUtil"
	"mordomia/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleGoogleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	url, err := h.authService.Auth().LoginGoogle(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(url, fiber.StatusTemporaryRedirect)
	}
}

func (h *AuthHandler) CallBackFromGoogle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if reason := ctx.Query("error"); reason != "" {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"reason":     reason,
			"path":       ctx.Path(),
		}).Info("User denied access")
		return errHandler.HandleUnauthorized(ctx, requestID, "Access denied by user")
	}

	var req auth.GoogleCallbackRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("state and code are required"), ctx.Path())
	}

	res, err := h.authService.Auth().UserLoginGoogle(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_callback")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
