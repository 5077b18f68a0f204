package goalService

import (
	"mordomia/internal/api/goal"
	goalRepository "mordomia/internal/api/goal/repository"
	"mordomia/internal/entity"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"mordomia/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IGoalService interface {
	CreateGoal(ctx context.Context, req goal.GoalRequest) (entity.Goal, error)
	GetGoals(ctx context.Context, userID string) ([]entity.Goal, error)
	GetGoalByID(ctx context.Context, id string, userID string) (entity.Goal, error)
	UpdateGoal(ctx context.Context, req goal.GoalRequest) (entity.Goal, error)
	DeleteGoal(ctx context.Context, id string, userID string) error

	AddProgress(ctx context.Context, req goal.ProgressRequest) (entity.Goal, error)
	RemoveProgress(ctx context.Context, req goal.RemoveProgressRequest) (entity.Goal, error)
	GetProjections(ctx context.Context, userID string) ([]metrics.GoalProjection, error)
}

type goalService struct {
	log            *logrus.Logger
	goalRepository goalRepository.Repository
	utils          utils.IUtils
	publisher      realtime.Publisher
}

func NewGoalService(
	log *logrus.Logger,
	gr goalRepository.Repository,
	utils utils.IUtils,
	publisher realtime.Publisher,
) IGoalService {
	return &goalService{
		log:            log,
		goalRepository: gr,
		utils:          utils,
		publisher:      publisher,
	}
}

const entityGoal = "goal"

func (s *goalService) publish(userID string, action realtime.Action, id string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(userID, realtime.NewEvent(entityGoal, action, id))
}
