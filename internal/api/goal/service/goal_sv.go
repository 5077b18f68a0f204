package goalService

import (
	"mordomia/internal/api/goal"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func goalFromRequest(req goal.GoalRequest) (entity.Goal, error) {
	deadline, err := entity.ParseDate(req.Deadline)
	if err != nil {
		return entity.Goal{}, goal.ErrInvalidDeadline
	}

	g := entity.Goal{
		ID:            req.ID,
		UserID:        req.UserID,
		Title:         strings.TrimSpace(req.Title),
		Category:      entity.GoalCategory(req.Category),
		TargetAmount:  metrics.Round2(req.TargetAmount),
		CurrentAmount: metrics.Round2(req.CurrentAmount),
		Deadline:      deadline,
		Notes:         strings.TrimSpace(req.Notes),
	}

	return g, g.Validate()
}

func (s *goalService) CreateGoal(ctx context.Context, req goal.GoalRequest) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	g, err := goalFromRequest(req)
	if err != nil {
		return entity.Goal{}, err
	}

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Goal{}, err
	}

	g.ID, err = s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Goal{}, err
	}
	g.CreatedAt = s.utils.Now()
	g.UpdatedAt = g.CreatedAt

	if err := repo.Goal.CreateGoal(ctx, g); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create goal")
		return entity.Goal{}, goal.ErrCreateGoal
	}

	s.publish(g.UserID, realtime.ActionCreated, g.ID)
	return g, nil
}

func (s *goalService) GetGoals(ctx context.Context, userID string) ([]entity.Goal, error) {
	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Goal.GetGoalsByUser(ctx, userID)
}

func (s *goalService) GetGoalByID(ctx context.Context, id string, userID string) (entity.Goal, error) {
	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return entity.Goal{}, err
	}

	g, err := repo.Goal.GetGoalByID(ctx, id)
	if err != nil {
		return entity.Goal{}, err
	}

	if g.UserID != userID {
		return entity.Goal{}, goal.ErrGoalNotOwned
	}

	return g, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, req goal.GoalRequest) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	updated, err := goalFromRequest(req)
	if err != nil {
		return entity.Goal{}, err
	}

	existing, err := s.GetGoalByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Goal{}, err
	}

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return entity.Goal{}, err
	}

	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.utils.Now()

	if err := repo.Goal.UpdateGoal(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    req.ID,
			"error":      err.Error(),
		}).Error("Failed to update goal")
		return entity.Goal{}, goal.ErrUpdateGoal
	}

	s.publish(updated.UserID, realtime.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetGoalByID(ctx, id, userID); err != nil {
		return err
	}

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Goal.DeleteGoal(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    id,
			"error":      err.Error(),
		}).Error("Failed to delete goal")
		return goal.ErrDeleteGoal
	}

	s.publish(userID, realtime.ActionDeleted, id)
	return nil
}
