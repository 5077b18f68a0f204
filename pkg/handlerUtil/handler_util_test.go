package handlerUtil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mordomia/internal/api/goal"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func newTestApp(err error) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := New(logger)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, c.Path(), "test")
	})
	return app
}

func decode(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body
}

func TestHandleResponseError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"domain error", goal.ErrConfirmationRequired, http.StatusConflict, "CONFIRMATION_REQUIRED"},
		{"wrapped domain error", fmt.Errorf("removing: %w", goal.ErrGoalNotFound), http.StatusNotFound, "GOAL_NOT_FOUND"},
		{"domain error without code", goal.ErrInvalidTitle, http.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := newTestApp(tc.err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}

			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			if body := decode(t, resp); body.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tc.wantCode)
			}
		})
	}
}

func TestHandleUnexpectedErrorHasTraceID(t *testing.T) {
	resp, err := newTestApp(errors.New("connection reset")).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}

	body := decode(t, resp)
	if body.TraceID != "req-1" {
		t.Errorf("trace_id = %q, want the request id", body.TraceID)
	}
	if body.Error == "connection reset" {
		t.Error("internal error message leaked to the client")
	}
}
