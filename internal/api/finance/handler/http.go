package financeHandler

import (
	financeService "mordomia/internal/api/finance/service"
	"mordomia/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FinanceHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	financeService financeService.IFinanceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	financeService financeService.IFinanceService,
) *FinanceHandler {
	return &FinanceHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		financeService: financeService,
	}
}

func (h *FinanceHandler) Start(srv fiber.Router) {
	finance := srv.Group("/finance")

	finance.Post("/transactions", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	finance.Get("/transactions", h.middleware.NewTokenMiddleware, h.GetTransactions)
	finance.Get("/transactions/:id", h.middleware.NewTokenMiddleware, h.GetTransactionByID)
	finance.Put("/transactions/:id", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	finance.Delete("/transactions/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)

	finance.Post("/expenses", h.middleware.NewTokenMiddleware, h.CreateExpense)
	finance.Get("/expenses", h.middleware.NewTokenMiddleware, h.GetExpenses)
	finance.Get("/expenses/:id", h.middleware.NewTokenMiddleware, h.GetExpenseByID)
	finance.Put("/expenses/:id", h.middleware.NewTokenMiddleware, h.UpdateExpense)
	finance.Patch("/expenses/:id/status", h.middleware.NewTokenMiddleware, h.UpdateExpenseStatus)
	finance.Delete("/expenses/:id", h.middleware.NewTokenMiddleware, h.DeleteExpense)

	finance.Post("/tithings", h.middleware.NewTokenMiddleware, h.CreateTithing)
	finance.Get("/tithings", h.middleware.NewTokenMiddleware, h.GetTithings)
	finance.Get("/tithings/:id", h.middleware.NewTokenMiddleware, h.GetTithingByID)
	finance.Put("/tithings/:id", h.middleware.NewTokenMiddleware, h.UpdateTithing)
	finance.Delete("/tithings/:id", h.middleware.NewTokenMiddleware, h.DeleteTithing)
}
