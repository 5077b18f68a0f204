package goalHandler

import (
	"mordomia/internal/api/goal"
	"mordomia/internal/entity"
	"mordomia/pkg/metrics"
	"time"
)

func toGoalResponse(g entity.Goal) goal.GoalResponse {
	var progress float64
	if g.TargetAmount > 0 {
		progress = metrics.Round2(g.CurrentAmount / g.TargetAmount * 100)
	}

	return goal.GoalResponse{
		ID:            g.ID,
		Title:         g.Title,
		Category:      string(g.Category),
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		ProgressPct:   progress,
		Deadline:      entity.FormatDate(g.Deadline),
		Notes:         g.Notes,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     g.UpdatedAt.Format(time.RFC3339),
	}
}

// roundProjection keeps money and percentages at two decimals on the wire.
func roundProjection(p metrics.GoalProjection) metrics.GoalProjection {
	p.RemainingAmount = metrics.Round2(p.RemainingAmount)
	p.ProgressPct = metrics.Round2(p.ProgressPct)
	p.DailyRequired = metrics.Round2(p.DailyRequired)
	p.WeeklyRequired = metrics.Round2(p.WeeklyRequired)
	p.MonthlyRequired = metrics.Round2(p.MonthlyRequired)
	if p.ProjectedCompletionDays != nil {
		days := metrics.Round2(*p.ProjectedCompletionDays)
		p.ProjectedCompletionDays = &days
	}
	return p
}
