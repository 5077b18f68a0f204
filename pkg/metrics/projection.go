package metrics

import (
	"math"
	"mordomia/internal/entity"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyLow      UrgencyLevel = "low"
)

var urgencyRank = map[UrgencyLevel]int{
	UrgencyCritical: 0,
	UrgencyHigh:     1,
	UrgencyMedium:   2,
	UrgencyLow:      3,
}

var urgencyMessages = map[UrgencyLevel]string{
	UrgencyCritical: "Prazo vencido! Reavalie esta meta e defina um novo plano.",
	UrgencyHigh:     "Menos de um mês restante. Concentre seus esforços nesta meta.",
	UrgencyMedium:   "Prazo se aproximando. Mantenha a constância nas contribuições.",
	UrgencyLow:      "Há tempo suficiente. Continue contribuindo com fidelidade.",
}

const completionUnitDays = 30

type GoalProjection struct {
	GoalID                  string              `json:"goal_id"`
	Title                   string              `json:"title"`
	Category                entity.GoalCategory `json:"category"`
	TargetAmount            float64             `json:"target_amount"`
	CurrentAmount           float64             `json:"current_amount"`
	Deadline                string              `json:"deadline"`
	DaysRemaining           int                 `json:"days_remaining"`
	WeeksRemaining          int                 `json:"weeks_remaining"`
	MonthsRemaining         int                 `json:"months_remaining"`
	RemainingAmount         float64             `json:"remaining_amount"`
	ProgressPct             float64             `json:"progress_pct"`
	DailyRequired           float64             `json:"daily_required"`
	WeeklyRequired          float64             `json:"weekly_required"`
	MonthlyRequired         float64             `json:"monthly_required"`
	UrgencyLevel            UrgencyLevel        `json:"urgency_level"`
	UrgencyMessage          string              `json:"urgency_message"`
	ProjectedCompletionDays *float64            `json:"projected_completion_days"`
	IsAchievable            bool                `json:"is_achievable"`
}

// DaysBetween counts whole calendar days from today until the deadline;
// negative once the deadline has passed.
func DaysBetween(today, deadline time.Time) int {
	diff := entity.DateOnly(deadline).Sub(entity.DateOnly(today))
	return int(math.Ceil(diff.Hours() / 24))
}

func ClassifyUrgency(daysRemaining int) UrgencyLevel {
	switch {
	case daysRemaining < 0:
		return UrgencyCritical
	case daysRemaining <= 30:
		return UrgencyHigh
	case daysRemaining <= 90:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func UrgencyMessage(level UrgencyLevel) string {
	return urgencyMessages[level]
}

// ProjectGoal computes the pace needed to reach the goal by its deadline.
// Achievability extrapolates the saved amount over a fixed 30-day unit; it is
// not a historical contribution rate.
func ProjectGoal(goal entity.Goal, today time.Time) GoalProjection {
	days := DaysBetween(today, goal.Deadline)
	months := max(1, int(math.Ceil(float64(days)/30)))
	weeks := max(1, int(math.Ceil(float64(days)/7)))

	target := decimal.NewFromFloat(goal.TargetAmount)
	current := decimal.NewFromFloat(goal.CurrentAmount)
	remaining := decimal.Max(decimal.Zero, target.Sub(current))

	var progress float64
	if goal.TargetAmount > 0 {
		progress = goal.CurrentAmount / goal.TargetAmount * 100
	}

	level := ClassifyUrgency(days)

	projection := GoalProjection{
		GoalID:          goal.ID,
		Title:           goal.Title,
		Category:        goal.Category,
		TargetAmount:    goal.TargetAmount,
		CurrentAmount:   goal.CurrentAmount,
		Deadline:        entity.FormatDate(goal.Deadline),
		DaysRemaining:   days,
		WeeksRemaining:  weeks,
		MonthsRemaining: months,
		RemainingAmount: remaining.InexactFloat64(),
		ProgressPct:     progress,
		DailyRequired:   remaining.InexactFloat64() / float64(max(1, days)),
		WeeklyRequired:  remaining.InexactFloat64() / float64(weeks),
		MonthlyRequired: remaining.InexactFloat64() / float64(months),
		UrgencyLevel:    level,
		UrgencyMessage:  UrgencyMessage(level),
	}

	if goal.CurrentAmount > 0 {
		completion := goal.TargetAmount / goal.CurrentAmount * completionUnitDays
		projection.ProjectedCompletionDays = &completion
		projection.IsAchievable = completion <= float64(days)
	}

	return projection
}

func ProjectGoals(goals []entity.Goal, today time.Time) []GoalProjection {
	projections := make([]GoalProjection, 0, len(goals))
	for _, g := range goals {
		projections = append(projections, ProjectGoal(g, today))
	}
	return projections
}

// SortGoalsByPriority returns a copy ordered most urgent first, then least
// complete first.
func SortGoalsByPriority(projections []GoalProjection) []GoalProjection {
	sorted := make([]GoalProjection, len(projections))
	copy(sorted, projections)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := urgencyRank[sorted[i].UrgencyLevel], urgencyRank[sorted[j].UrgencyLevel]
		if ri != rj {
			return ri < rj
		}
		return sorted[i].ProgressPct < sorted[j].ProgressPct
	})

	return sorted
}

// ApplyProgress adds to the saved amount without passing the target.
func ApplyProgress(current, target, amount float64) float64 {
	sum := decimal.NewFromFloat(current).Add(decimal.NewFromFloat(amount))
	return decimal.Min(sum, decimal.NewFromFloat(target)).InexactFloat64()
}

// RemoveProgress subtracts from the saved amount, never going below zero.
func RemoveProgress(current, amount float64) float64 {
	diff := decimal.NewFromFloat(current).Sub(decimal.NewFromFloat(amount))
	return decimal.Max(decimal.Zero, diff).InexactFloat64()
}

// RemovalNeedsConfirmation reports whether removing amount would clear all
// of the saved progress.
func RemovalNeedsConfirmation(current, amount float64) bool {
	return amount >= current
}
