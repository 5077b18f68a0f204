package metrics

import (
	"mordomia/internal/entity"
	"testing"
)

func TestClassifyUrgency(t *testing.T) {
	cases := []struct {
		days int
		want UrgencyLevel
	}{
		{-30, UrgencyCritical},
		{-1, UrgencyCritical},
		{0, UrgencyHigh},
		{30, UrgencyHigh},
		{31, UrgencyMedium},
		{90, UrgencyMedium},
		{91, UrgencyLow},
		{400, UrgencyLow},
	}

	for _, tc := range cases {
		if got := ClassifyUrgency(tc.days); got != tc.want {
			t.Errorf("ClassifyUrgency(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestUrgencyMessageIsDefinedForEveryLevel(t *testing.T) {
	for _, level := range []UrgencyLevel{UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow} {
		if UrgencyMessage(level) == "" {
			t.Errorf("UrgencyMessage(%s) is empty", level)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	today := date(t, "2025-03-15")

	cases := map[string]int{
		"2025-03-15": 0,
		"2025-03-16": 1,
		"2025-03-14": -1,
		"2025-04-14": 30,
		"2026-03-15": 365,
	}

	for deadline, want := range cases {
		if got := DaysBetween(today, date(t, deadline)); got != want {
			t.Errorf("DaysBetween(2025-03-15, %s) = %d, want %d", deadline, got, want)
		}
	}
}

func TestProjectGoalShortDeadline(t *testing.T) {
	goal := entity.Goal{
		ID:           "g1",
		Title:        "Viagem missionária",
		Category:     entity.GoalCategoryMission,
		TargetAmount: 1000,
		Deadline:     date(t, "2025-03-25"),
	}

	p := ProjectGoal(goal, date(t, "2025-03-15"))

	if p.DaysRemaining != 10 {
		t.Errorf("DaysRemaining = %d, want 10", p.DaysRemaining)
	}
	if p.RemainingAmount != 1000 {
		t.Errorf("RemainingAmount = %v, want 1000", p.RemainingAmount)
	}
	if p.MonthlyRequired != 1000 {
		t.Errorf("MonthlyRequired = %v, want 1000", p.MonthlyRequired)
	}
	if p.WeeklyRequired != 500 {
		t.Errorf("WeeklyRequired = %v, want 500", p.WeeklyRequired)
	}
	if p.DailyRequired != 100 {
		t.Errorf("DailyRequired = %v, want 100", p.DailyRequired)
	}
	if p.UrgencyLevel != UrgencyHigh {
		t.Errorf("UrgencyLevel = %s, want %s", p.UrgencyLevel, UrgencyHigh)
	}
	if p.ProjectedCompletionDays != nil {
		t.Errorf("ProjectedCompletionDays = %v, want nil", *p.ProjectedCompletionDays)
	}
	if p.IsAchievable {
		t.Error("IsAchievable = true, want false without any progress")
	}
	if p.Deadline != "2025-03-25" {
		t.Errorf("Deadline = %q, want 2025-03-25", p.Deadline)
	}
}

func TestProjectGoalAchievability(t *testing.T) {
	goal := entity.Goal{
		TargetAmount:  1000,
		CurrentAmount: 500,
		Deadline:      date(t, "2025-06-13"),
	}

	p := ProjectGoal(goal, date(t, "2025-03-15"))

	if p.ProjectedCompletionDays == nil || *p.ProjectedCompletionDays != 60 {
		t.Fatalf("ProjectedCompletionDays = %v, want 60", p.ProjectedCompletionDays)
	}
	if !p.IsAchievable {
		t.Errorf("IsAchievable = false with %d days left, want true", p.DaysRemaining)
	}
	if p.ProgressPct != 50 {
		t.Errorf("ProgressPct = %v, want 50", p.ProgressPct)
	}
	if p.UrgencyLevel != UrgencyMedium {
		t.Errorf("UrgencyLevel = %s, want %s", p.UrgencyLevel, UrgencyMedium)
	}
}

func TestProjectGoalOverdueUsesFloors(t *testing.T) {
	goal := entity.Goal{
		TargetAmount:  300,
		CurrentAmount: 100,
		Deadline:      date(t, "2025-03-14"),
	}

	p := ProjectGoal(goal, date(t, "2025-03-15"))

	if p.UrgencyLevel != UrgencyCritical {
		t.Errorf("UrgencyLevel = %s, want %s", p.UrgencyLevel, UrgencyCritical)
	}
	if p.MonthsRemaining != 1 || p.WeeksRemaining != 1 {
		t.Errorf("months/weeks = %d/%d, want 1/1", p.MonthsRemaining, p.WeeksRemaining)
	}
	if p.DailyRequired != 200 {
		t.Errorf("DailyRequired = %v, want 200", p.DailyRequired)
	}
	if p.IsAchievable {
		t.Error("IsAchievable = true for an overdue goal")
	}
}

func TestProjectGoalCompleted(t *testing.T) {
	goal := entity.Goal{TargetAmount: 500, CurrentAmount: 500, Deadline: date(t, "2025-12-31")}

	p := ProjectGoal(goal, date(t, "2025-03-15"))

	if p.RemainingAmount != 0 || p.DailyRequired != 0 {
		t.Errorf("remaining/daily = %v/%v, want 0/0", p.RemainingAmount, p.DailyRequired)
	}
	if p.ProgressPct != 100 {
		t.Errorf("ProgressPct = %v, want 100", p.ProgressPct)
	}
}

func TestSortGoalsByPriority(t *testing.T) {
	input := []GoalProjection{
		{GoalID: "low", UrgencyLevel: UrgencyLow, ProgressPct: 5},
		{GoalID: "high-80", UrgencyLevel: UrgencyHigh, ProgressPct: 80},
		{GoalID: "critical", UrgencyLevel: UrgencyCritical, ProgressPct: 99},
		{GoalID: "high-20", UrgencyLevel: UrgencyHigh, ProgressPct: 20},
		{GoalID: "medium", UrgencyLevel: UrgencyMedium, ProgressPct: 0},
	}

	sorted := SortGoalsByPriority(input)

	want := []string{"critical", "high-20", "high-80", "medium", "low"}
	for i, id := range want {
		if sorted[i].GoalID != id {
			t.Errorf("position %d = %s, want %s", i, sorted[i].GoalID, id)
		}
	}

	if input[0].GoalID != "low" {
		t.Error("SortGoalsByPriority modified its input")
	}
}

func TestProgressAdjustments(t *testing.T) {
	if got := ApplyProgress(900, 1000, 200); got != 1000 {
		t.Errorf("ApplyProgress past target = %v, want 1000", got)
	}
	if got := ApplyProgress(100.1, 1000, 0.2); got != 100.3 {
		t.Errorf("ApplyProgress() = %v, want 100.3", got)
	}
	if got := RemoveProgress(100, 150); got != 0 {
		t.Errorf("RemoveProgress below zero = %v, want 0", got)
	}
	if got := RemoveProgress(100, 40); got != 60 {
		t.Errorf("RemoveProgress() = %v, want 60", got)
	}

	if !RemovalNeedsConfirmation(100, 100) {
		t.Error("RemovalNeedsConfirmation(100, 100) = false, want true")
	}
	if RemovalNeedsConfirmation(100, 99.99) {
		t.Error("RemovalNeedsConfirmation(100, 99.99) = true, want false")
	}
}
