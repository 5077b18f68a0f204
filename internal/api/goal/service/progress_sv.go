package goalService

import (
	"mordomia/internal/api/goal"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// AddProgress adds a contribution, capping the saved amount at the target.
func (s *goalService) AddProgress(ctx context.Context, req goal.ProgressRequest) (entity.Goal, error) {
	if req.Amount <= 0 {
		return entity.Goal{}, goal.ErrInvalidProgressAmount
	}

	g, err := s.GetGoalByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Goal{}, err
	}

	next := metrics.Round2(metrics.ApplyProgress(g.CurrentAmount, g.TargetAmount, req.Amount))
	return s.saveProgress(ctx, g, next)
}

// RemoveProgress withdraws from the saved amount. Clearing the goal entirely
// requires an explicit confirmation.
func (s *goalService) RemoveProgress(ctx context.Context, req goal.RemoveProgressRequest) (entity.Goal, error) {
	if req.Amount <= 0 {
		return entity.Goal{}, goal.ErrInvalidProgressAmount
	}

	g, err := s.GetGoalByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Goal{}, err
	}

	if metrics.RemovalNeedsConfirmation(g.CurrentAmount, req.Amount) && !req.Confirm {
		return entity.Goal{}, goal.ErrConfirmationRequired
	}

	next := metrics.Round2(metrics.RemoveProgress(g.CurrentAmount, req.Amount))
	return s.saveProgress(ctx, g, next)
}

func (s *goalService) saveProgress(ctx context.Context, g entity.Goal, next float64) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return entity.Goal{}, err
	}

	updatedAt := s.utils.Now()
	if err := repo.Goal.UpdateGoalProgress(ctx, g.ID, next, updatedAt); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    g.ID,
			"error":      err.Error(),
		}).Error("Failed to update goal progress")
		return entity.Goal{}, goal.ErrUpdateGoal
	}

	g.CurrentAmount = next
	g.UpdatedAt = updatedAt

	s.publish(g.UserID, realtime.ActionUpdated, g.ID)
	return g, nil
}

// GetProjections projects every goal of the user against today's date,
// most urgent first.
func (s *goalService) GetProjections(ctx context.Context, userID string) ([]metrics.GoalProjection, error) {
	goals, err := s.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	return metrics.SortGoalsByPriority(metrics.ProjectGoals(goals, s.utils.Now())), nil
}
