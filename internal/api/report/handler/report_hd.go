package reportHandler

import (
	"errors"
	"fmt"
	"mordomia/internal/api/report"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/handlerUtil"
	jwtPkg "mordomia/pkg/jwt"
	"mordomia/pkg/pdf"
	"mordomia/pkg/spreadsheet"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// Reports may wait on the assessment model, so they get a longer budget
// than plain CRUD.
const reportTimeout = 30 * time.Second

func (h *ReportHandler) GetDashboard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query report.DashboardQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}
	query.UserID = userData.ID

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	dashboard, err := h.reportService.GetDashboard(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_dashboard")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard)
	}
}

func (h *ReportHandler) GetMonthlyReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), reportTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	query, err := h.monthQuery(ctx)
	if err != nil {
		return h.handleQueryError(ctx, errHandler, requestID, err)
	}

	r, err := h.reportService.GetMonthlyReport(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_monthly_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, r)
	}
}

func (h *ReportHandler) DownloadMonthlyPDF(ctx *fiber.Ctx) error {
	return h.download(ctx, "render_monthly_pdf", pdf.ContentType, h.reportService.RenderMonthlyPDF)
}

func (h *ReportHandler) DownloadMonthlyXLSX(ctx *fiber.Ctx) error {
	return h.download(ctx, "render_monthly_xlsx", spreadsheet.ContentType, h.reportService.RenderMonthlyXLSX)
}

type renderFunc func(ctx context.Context, query report.MonthQuery) ([]byte, string, error)

func (h *ReportHandler) download(ctx *fiber.Ctx, operation, contentType string, render renderFunc) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), reportTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	query, err := h.monthQuery(ctx)
	if err != nil {
		return h.handleQueryError(ctx, errHandler, requestID, err)
	}

	body, filename, err := render(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), operation)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(fiber.HeaderContentType, contentType)
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return ctx.Status(fiber.StatusOK).Send(body)
	}
}

func (h *ReportHandler) ArchiveMonthlyPDF(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), reportTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	query, err := h.monthQuery(ctx)
	if err != nil {
		return h.handleQueryError(ctx, errHandler, requestID, err)
	}

	archived, err := h.reportService.ArchiveMonthlyPDF(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "archive_monthly_pdf")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, archived)
	}
}

var errMissingLogin = errors.New("missing login data")

func (h *ReportHandler) monthQuery(ctx *fiber.Ctx) (report.MonthQuery, error) {
	var query report.MonthQuery
	if err := ctx.QueryParser(&query); err != nil {
		return query, err
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return query, errMissingLogin
	}
	query.UserID = userData.ID
	query.UserName = userData.Username

	return query, h.validator.Struct(query)
}

func (h *ReportHandler) handleQueryError(ctx *fiber.Ctx, errHandler *handlerUtil.ErrorHandler, requestID string, err error) error {
	if errors.Is(err, errMissingLogin) {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}
	return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
}
