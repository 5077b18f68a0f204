package goal

import (
	"mordomia/pkg/response"
	"net/http"
)

var (
	ErrGoalNotFound          = response.NewError(http.StatusNotFound, "goal not found")
	ErrGoalNotOwned          = response.NewError(http.StatusForbidden, "goal does not belong to user")
	ErrInvalidTitle          = response.NewError(http.StatusBadRequest, "goal title is required")
	ErrInvalidCategory       = response.NewError(http.StatusBadRequest, "invalid goal category")
	ErrInvalidTarget         = response.NewError(http.StatusBadRequest, "target amount must be greater than zero")
	ErrInvalidCurrent        = response.NewError(http.StatusBadRequest, "current amount must be between zero and the target amount")
	ErrInvalidDeadline       = response.NewError(http.StatusBadRequest, "deadline is required in YYYY-MM-DD format")
	ErrInvalidProgressAmount = response.NewError(http.StatusBadRequest, "progress amount must be greater than zero")
	ErrConfirmationRequired  = response.NewError(http.StatusConflict, "removing this amount clears the goal progress and must be confirmed")
	ErrCreateGoal            = response.NewError(http.StatusInternalServerError, "failed to create goal")
	ErrUpdateGoal            = response.NewError(http.StatusInternalServerError, "failed to update goal")
	ErrDeleteGoal            = response.NewError(http.StatusInternalServerError, "failed to delete goal")
)
