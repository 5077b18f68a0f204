package bankHandler

import (
	bankService "mordomia/internal/api/bank/service"
	"mordomia/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BankHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	bankService bankService.IBankService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bankService bankService.IBankService,
) *BankHandler {
	return &BankHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		bankService: bankService,
	}
}

func (h *BankHandler) Start(srv fiber.Router) {
	banks := srv.Group("/banks")

	banks.Post("/", h.middleware.NewTokenMiddleware, h.CreateBank)
	banks.Get("/", h.middleware.NewTokenMiddleware, h.GetBanks)
	banks.Get("/:id", h.middleware.NewTokenMiddleware, h.GetBank)
	banks.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBank)
	banks.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBank)

	banks.Post("/:id/balances", h.middleware.NewTokenMiddleware, h.RecordBalance)
	banks.Get("/:id/balances", h.middleware.NewTokenMiddleware, h.GetBalanceHistory)
	banks.Get("/:id/balance", h.middleware.NewTokenMiddleware, h.GetLatestBalance)

	banks.Post("/:id/investments", h.middleware.NewTokenMiddleware, h.CreateInvestment)
	banks.Get("/:id/investments", h.middleware.NewTokenMiddleware, h.GetInvestments)
	banks.Put("/:id/investments/:investmentId", h.middleware.NewTokenMiddleware, h.UpdateInvestment)
	banks.Delete("/:id/investments/:investmentId", h.middleware.NewTokenMiddleware, h.DeleteInvestment)

	banks.Post("/:id/cards", h.middleware.NewTokenMiddleware, h.CreateCard)
	banks.Get("/:id/cards", h.middleware.NewTokenMiddleware, h.GetCards)
	banks.Put("/:id/cards/:cardId", h.middleware.NewTokenMiddleware, h.UpdateCard)
	banks.Delete("/:id/cards/:cardId", h.middleware.NewTokenMiddleware, h.DeleteCard)
}
