package entity

import (
	"mordomia/internal/api/goal"
	"strings"
	"time"
)

type GoalCategory string

const (
	GoalCategoryMission  GoalCategory = "mission"
	GoalCategoryPersonal GoalCategory = "personal"
	GoalCategoryStudy    GoalCategory = "study"
	GoalCategoryDebt     GoalCategory = "debt"
	GoalCategoryGiving   GoalCategory = "giving"
)

func IsValidGoalCategory(category string) bool {
	switch GoalCategory(category) {
	case GoalCategoryMission, GoalCategoryPersonal, GoalCategoryStudy, GoalCategoryDebt, GoalCategoryGiving:
		return true
	default:
		return false
	}
}

type Goal struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Title         string       `json:"title"`
	Category      GoalCategory `json:"category"`
	TargetAmount  float64      `json:"target_amount"`
	CurrentAmount float64      `json:"current_amount"`
	Deadline      time.Time    `json:"deadline"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return goal.ErrInvalidTitle
	}

	if !IsValidGoalCategory(string(g.Category)) {
		return goal.ErrInvalidCategory
	}

	if g.TargetAmount <= 0 {
		return goal.ErrInvalidTarget
	}

	if g.CurrentAmount < 0 || g.CurrentAmount > g.TargetAmount {
		return goal.ErrInvalidCurrent
	}

	if g.Deadline.IsZero() {
		return goal.ErrInvalidDeadline
	}

	return nil
}
