package reportHandler

import (
	reportService "mordomia/internal/api/report/service"
	"mordomia/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	reportService reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		reportService: reportService,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	reports := srv.Group("/reports")

	reports.Get("/dashboard", h.middleware.NewTokenMiddleware, h.GetDashboard)
	reports.Get("/monthly", h.middleware.NewTokenMiddleware, h.GetMonthlyReport)
	reports.Get("/monthly/pdf", h.middleware.NewTokenMiddleware, h.DownloadMonthlyPDF)
	reports.Get("/monthly/xlsx", h.middleware.NewTokenMiddleware, h.DownloadMonthlyXLSX)
	reports.Post("/monthly/archive", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.ArchiveMonthlyPDF)
}
