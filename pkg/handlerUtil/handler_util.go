package handlerUtil

import (
	"errors"
	"mordomia/internal/api/auth"
	"mordomia/internal/api/bank"
	"mordomia/internal/api/finance"
	"mordomia/internal/api/goal"
	"mordomia/internal/api/report"
	"mordomia/pkg/log"
	"mordomia/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// errorCodes gives clients a stable machine-readable code for the errors
// they are expected to branch on.
var errorCodes = []struct {
	err  error
	code string
}{
	{auth.ErrEmailAlreadyExists, "EMAIL_ALREADY_EXISTS"},
	{auth.ErrInvalidEmailOrPassword, "INVALID_CREDENTIALS"},
	{auth.ErrUserNotFound, "USER_NOT_FOUND"},
	{auth.ErrInvalidOAuthState, "INVALID_OAUTH_STATE"},
	{auth.ErrPasswordLoginDisabled, "PASSWORD_LOGIN_DISABLED"},

	{finance.ErrTransactionNotFound, "TRANSACTION_NOT_FOUND"},
	{finance.ErrExpenseNotFound, "EXPENSE_NOT_FOUND"},
	{finance.ErrTithingNotFound, "TITHING_NOT_FOUND"},
	{finance.ErrInvalidDestinationBank, "INVALID_DESTINATION_BANK"},
	{finance.ErrInvalidMonth, "INVALID_MONTH"},

	{bank.ErrBankNotFound, "BANK_NOT_FOUND"},
	{bank.ErrBalanceNotFound, "BALANCE_NOT_FOUND"},
	{bank.ErrInvestmentNotFound, "INVESTMENT_NOT_FOUND"},
	{bank.ErrCardNotFound, "CARD_NOT_FOUND"},

	{goal.ErrGoalNotFound, "GOAL_NOT_FOUND"},
	{goal.ErrConfirmationRequired, "CONFIRMATION_REQUIRED"},

	{report.ErrInvalidMonth, "INVALID_MONTH"},
	{report.ErrArchiveUnavailable, "ARCHIVE_UNAVAILABLE"},
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields := log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}

		if respErr.Code >= fiber.StatusInternalServerError {
			h.logger.WithFields(fields).Error("Operation failed with error response")
		} else {
			h.logger.WithFields(fields).Warn("Operation failed with error response")
		}

		return c.Status(respErr.Code).JSON(ErrorResponse{
			Error: respErr.Error(),
			Code:  codeFor(err),
		})
	}

	traceID := log.ErrorWithTraceID(h.logger, log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		TraceID: traceID,
	})
}

func codeFor(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ""
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error: message,
		Code:  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
