package bankHandler

import (
	"mordomia/internal/api/bank"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/handlerUtil"
	jwtPkg "mordomia/pkg/jwt"
	"mordomia/pkg/response"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BankHandler) parseInvestmentRequest(ctx *fiber.Ctx, errHandler *handlerUtil.ErrorHandler, requestID string) (bank.InvestmentRequest, bool, error) {
	var req bank.InvestmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return req, false, errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return req, false, errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.ID = ctx.Params("investmentId")
	req.BankID = ctx.Params("id")
	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return req, false, errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return req, true, nil
}

func (h *BankHandler) CreateInvestment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req, ok, err := h.parseInvestmentRequest(ctx, errHandler, requestID)
	if !ok {
		return err
	}

	investment, err := h.bankService.CreateInvestment(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_investment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toInvestmentResponse(investment))
	}
}

func (h *BankHandler) GetInvestments(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	investments, err := h.bankService.GetInvestments(c, ctx.Params("id"), userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_investments")
	}

	items := make([]bank.InvestmentResponse, 0, len(investments))
	for _, i := range investments {
		items = append(items, toInvestmentResponse(i))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response.NewList(items))
	}
}

func (h *BankHandler) UpdateInvestment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req, ok, err := h.parseInvestmentRequest(ctx, errHandler, requestID)
	if !ok {
		return err
	}

	investment, err := h.bankService.UpdateInvestment(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_investment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toInvestmentResponse(investment))
	}
}

func (h *BankHandler) DeleteInvestment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.bankService.DeleteInvestment(c, ctx.Params("id"), ctx.Params("investmentId"), userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_investment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Investment deleted successfully",
		})
	}
}
