package report

import (
	"mordomia/pkg/response"
	"net/http"
)

var (
	ErrInvalidMonth       = response.NewError(http.StatusBadRequest, "invalid month, expected YYYY-MM")
	ErrInvalidMonthsCount = response.NewError(http.StatusBadRequest, "months must be between 1 and 24")
	ErrLoadRecords        = response.NewError(http.StatusInternalServerError, "failed to load financial records")
	ErrRenderReport       = response.NewError(http.StatusInternalServerError, "failed to render report")
	ErrArchiveUnavailable = response.NewError(http.StatusServiceUnavailable, "report archive storage is not configured")
	ErrArchiveReport      = response.NewError(http.StatusInternalServerError, "failed to archive report")
)
