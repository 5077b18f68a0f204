package goalHandler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mordomia/internal/api/goal"
	"mordomia/internal/entity"
	"mordomia/pkg/handlerUtil"
	"mordomia/pkg/metrics"
	"mordomia/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type stubMiddleware struct{}

func (stubMiddleware) NewRateLimiter(ctx *fiber.Ctx) error { return ctx.Next() }

func (stubMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals("user", entity.UserLoginData{ID: "user-1"})
	return ctx.Next()
}

func (stubMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (stubMiddleware) NewLoggingMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (stubMiddleware) GetRequestID(*fiber.Ctx) string { return "test" }

type fakeGoalService struct {
	removeReq goal.RemoveProgressRequest
}

func (f *fakeGoalService) CreateGoal(_ context.Context, req goal.GoalRequest) (entity.Goal, error) {
	return entity.Goal{ID: "goal-1", UserID: req.UserID, Title: req.Title, TargetAmount: req.TargetAmount}, nil
}

func (f *fakeGoalService) GetGoals(context.Context, string) ([]entity.Goal, error) {
	return nil, nil
}

func (f *fakeGoalService) GetGoalByID(_ context.Context, id string, _ string) (entity.Goal, error) {
	if id != "goal-1" {
		return entity.Goal{}, goal.ErrGoalNotFound
	}
	return entity.Goal{ID: id, TargetAmount: 200, CurrentAmount: 50}, nil
}

func (f *fakeGoalService) UpdateGoal(_ context.Context, req goal.GoalRequest) (entity.Goal, error) {
	return entity.Goal{ID: req.ID}, nil
}

func (f *fakeGoalService) DeleteGoal(context.Context, string, string) error { return nil }

func (f *fakeGoalService) AddProgress(_ context.Context, req goal.ProgressRequest) (entity.Goal, error) {
	return entity.Goal{ID: req.ID, TargetAmount: 100, CurrentAmount: req.Amount}, nil
}

func (f *fakeGoalService) RemoveProgress(_ context.Context, req goal.RemoveProgressRequest) (entity.Goal, error) {
	f.removeReq = req
	if !req.Confirm {
		return entity.Goal{}, goal.ErrConfirmationRequired
	}
	return entity.Goal{ID: req.ID, TargetAmount: 100}, nil
}

func (f *fakeGoalService) GetProjections(context.Context, string) ([]metrics.GoalProjection, error) {
	days := 123.456
	return []metrics.GoalProjection{{GoalID: "goal-1", DailyRequired: 3.33333, ProjectedCompletionDays: &days}}, nil
}

func newTestApp(t *testing.T) (*fiber.App, *fakeGoalService) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := &fakeGoalService{}
	app := fiber.New()
	New(logger, validation.New(), stubMiddleware{}, svc).Start(app.Group("/api/v1"))
	return app, svc
}

func do(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp
}

func TestCreateGoalValidation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"title":"Missão","category":"mission","target_amount":500,"deadline":"2025-12-01"}`, http.StatusCreated},
		{"bad deadline", `{"title":"Missão","category":"mission","target_amount":500,"deadline":"01/12/2025"}`, http.StatusBadRequest},
		{"unknown category", `{"title":"Missão","category":"holiday","target_amount":500,"deadline":"2025-12-01"}`, http.StatusBadRequest},
		{"malformed json", `{"title":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, http.MethodPost, "/api/v1/goals", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestGetGoalResponseCarriesProgress(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/v1/goals/goal-1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body goal.GoalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if body.ProgressPct != 25 {
		t.Errorf("progress_pct = %v, want 25", body.ProgressPct)
	}

	if resp := do(t, app, http.MethodGet, "/api/v1/goals/other", ""); resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown goal status = %d, want 404", resp.StatusCode)
	}
}

func TestRemoveProgressNeedsConfirmation(t *testing.T) {
	app, svc := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/v1/goals/goal-1/progress/remove", `{"amount":50}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}

	var errBody handlerUtil.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if errBody.Code != "CONFIRMATION_REQUIRED" {
		t.Errorf("code = %q, want CONFIRMATION_REQUIRED", errBody.Code)
	}
	if svc.removeReq.ID != "goal-1" || svc.removeReq.UserID != "user-1" {
		t.Errorf("service got %+v, want path id and token user", svc.removeReq)
	}

	resp = do(t, app, http.MethodPost, "/api/v1/goals/goal-1/progress/remove", `{"amount":50,"confirm":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("confirmed status = %d, want 200", resp.StatusCode)
	}
}

func TestProjectionsRouteIsNotAGoalID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/v1/goals/projections", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Items []metrics.GoalProjection `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].DailyRequired != 3.33 {
		t.Errorf("items = %+v, want one projection rounded to cents", body.Items)
	}
	if got := *body.Items[0].ProjectedCompletionDays; got != 123.46 {
		t.Errorf("projected_completion_days = %v, want 123.46", got)
	}
}
