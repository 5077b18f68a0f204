package reportHandler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mordomia/internal/api/report"
	"mordomia/internal/entity"
	"mordomia/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type stubMiddleware struct{}

func (stubMiddleware) NewRateLimiter(ctx *fiber.Ctx) error { return ctx.Next() }

func (stubMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals("user", entity.UserLoginData{ID: "user-1", Username: "Ana"})
	return ctx.Next()
}

func (stubMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (stubMiddleware) NewLoggingMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (stubMiddleware) GetRequestID(*fiber.Ctx) string { return "test" }

type fakeReportService struct {
	lastMonth report.MonthQuery
	archive   error
}

func (f *fakeReportService) GetDashboard(_ context.Context, q report.DashboardQuery) (report.Dashboard, error) {
	return report.Dashboard{Months: q.Months}, nil
}

func (f *fakeReportService) GetMonthlyReport(_ context.Context, q report.MonthQuery) (report.MonthlyReport, error) {
	f.lastMonth = q
	return report.MonthlyReport{Month: q.Month, UserName: q.UserName}, nil
}

func (f *fakeReportService) RenderMonthlyPDF(_ context.Context, q report.MonthQuery) ([]byte, string, error) {
	f.lastMonth = q
	return []byte("%PDF-1.3"), "mordomia-" + q.Month + ".pdf", nil
}

func (f *fakeReportService) RenderMonthlyXLSX(_ context.Context, q report.MonthQuery) ([]byte, string, error) {
	return []byte("PK"), "mordomia-" + q.Month + ".xlsx", nil
}

func (f *fakeReportService) ArchiveMonthlyPDF(_ context.Context, q report.MonthQuery) (report.ArchiveResponse, error) {
	if f.archive != nil {
		return report.ArchiveResponse{}, f.archive
	}
	return report.ArchiveResponse{Key: "reports/" + q.UserID + "/" + q.Month + ".pdf"}, nil
}

func newTestApp(t *testing.T) (*fiber.App, *fakeReportService) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := &fakeReportService{}
	app := fiber.New()
	New(logger, validation.New(), stubMiddleware{}, svc).Start(app.Group("/api/v1"))
	return app, svc
}

func do(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp
}

func TestMonthlyReportQueryValidation(t *testing.T) {
	app, svc := newTestApp(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"valid month", "/api/v1/reports/monthly?month=2025-03", http.StatusOK},
		{"missing month", "/api/v1/reports/monthly", http.StatusBadRequest},
		{"bad month", "/api/v1/reports/monthly?month=03-2025", http.StatusBadRequest},
		{"dashboard default", "/api/v1/reports/dashboard", http.StatusOK},
		{"dashboard too long", "/api/v1/reports/dashboard?months=36", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, http.MethodGet, tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}

	if svc.lastMonth.UserID != "user-1" || svc.lastMonth.UserName != "Ana" {
		t.Errorf("query = %+v, want the logged-in user", svc.lastMonth)
	}
}

func TestDownloadMonthlyPDF(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/v1/reports/monthly/pdf?month=2025-03")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderContentType); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := resp.Header.Get(fiber.HeaderContentDisposition); got != `attachment; filename="mordomia-2025-03.pdf"` {
		t.Errorf("Content-Disposition = %q", got)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "%PDF-1.3" {
		t.Errorf("body = %q", body)
	}
}

func TestArchiveUnavailable(t *testing.T) {
	app, svc := newTestApp(t)
	svc.archive = report.ErrArchiveUnavailable

	resp := do(t, app, http.MethodPost, "/api/v1/reports/monthly/archive?month=2025-03")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}

	svc.archive = nil
	resp = do(t, app, http.MethodPost, "/api/v1/reports/monthly/archive?month=2025-03")
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want 201", resp.StatusCode)
	}
}
