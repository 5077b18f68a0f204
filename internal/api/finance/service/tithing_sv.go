package financeService

import (
	"mordomia/internal/api/finance"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const entityTithing = "tithing"

func tithingFromRequest(req finance.TithingRequest) (entity.Tithing, error) {
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return entity.Tithing{}, finance.ErrInvalidDate
	}

	tithing := entity.Tithing{
		ID:     req.ID,
		UserID: req.UserID,
		Amount: metrics.Round2(req.Amount),
		Church: strings.TrimSpace(req.Church),
		Date:   date,
		Type:   entity.TithingType(req.Type),
		Notes:  strings.TrimSpace(req.Notes),
	}

	return tithing, tithing.Validate()
}

func (s *financeService) CreateTithing(ctx context.Context, req finance.TithingRequest) (entity.Tithing, error) {
	requestID := contextPkg.GetRequestID(ctx)

	tithing, err := tithingFromRequest(req)
	if err != nil {
		return entity.Tithing{}, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Tithing{}, err
	}

	tithing.ID, err = s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Tithing{}, err
	}
	tithing.CreatedAt = s.utils.Now()
	tithing.UpdatedAt = tithing.CreatedAt

	if err := repo.Tithing.CreateTithing(ctx, tithing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create tithing")
		return entity.Tithing{}, finance.ErrCreateTithing
	}

	s.publish(tithing.UserID, entityTithing, realtime.ActionCreated, tithing.ID)
	return tithing, nil
}

func (s *financeService) GetTithingByID(ctx context.Context, id string, userID string) (entity.Tithing, error) {
	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return entity.Tithing{}, err
	}

	tithing, err := repo.Tithing.GetTithingByID(ctx, id)
	if err != nil {
		return entity.Tithing{}, err
	}

	if tithing.UserID != userID {
		return entity.Tithing{}, finance.ErrTithingNotOwned
	}

	return tithing, nil
}

func (s *financeService) GetTithings(ctx context.Context, filter finance.MonthFilter) ([]entity.Tithing, error) {
	repoFilter, err := monthFilter(filter.UserID, filter.Month)
	if err != nil {
		return nil, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Tithing.GetTithings(ctx, repoFilter)
}

func (s *financeService) UpdateTithing(ctx context.Context, req finance.TithingRequest) (entity.Tithing, error) {
	requestID := contextPkg.GetRequestID(ctx)

	updated, err := tithingFromRequest(req)
	if err != nil {
		return entity.Tithing{}, err
	}

	existing, err := s.GetTithingByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Tithing{}, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return entity.Tithing{}, err
	}

	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.utils.Now()

	if err := repo.Tithing.UpdateTithing(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"tithing_id": req.ID,
			"error":      err.Error(),
		}).Error("Failed to update tithing")
		return entity.Tithing{}, finance.ErrUpdateTithing
	}

	s.publish(updated.UserID, entityTithing, realtime.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *financeService) DeleteTithing(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetTithingByID(ctx, id, userID); err != nil {
		return err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Tithing.DeleteTithing(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"tithing_id": id,
			"error":      err.Error(),
		}).Error("Failed to delete tithing")
		return finance.ErrDeleteTithing
	}

	s.publish(userID, entityTithing, realtime.ActionDeleted, id)
	return nil
}
