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

func (h *BankHandler) parseCardRequest(ctx *fiber.Ctx, errHandler *handlerUtil.ErrorHandler, requestID string) (bank.CardRequest, bool, error) {
	var req bank.CardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return req, false, errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return req, false, errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.ID = ctx.Params("cardId")
	req.BankID = ctx.Params("id")
	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return req, false, errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return req, true, nil
}

func (h *BankHandler) CreateCard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req, ok, err := h.parseCardRequest(ctx, errHandler, requestID)
	if !ok {
		return err
	}

	card, err := h.bankService.CreateCard(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_card")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toCardResponse(card))
	}
}

func (h *BankHandler) GetCards(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	cards, err := h.bankService.GetCards(c, ctx.Params("id"), userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_cards")
	}

	items := make([]bank.CardResponse, 0, len(cards))
	for _, card := range cards {
		items = append(items, toCardResponse(card))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response.NewList(items))
	}
}

func (h *BankHandler) UpdateCard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req, ok, err := h.parseCardRequest(ctx, errHandler, requestID)
	if !ok {
		return err
	}

	card, err := h.bankService.UpdateCard(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_card")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toCardResponse(card))
	}
}

func (h *BankHandler) DeleteCard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.bankService.DeleteCard(c, ctx.Params("id"), ctx.Params("cardId"), userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_card")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Card deleted successfully",
		})
	}
}
