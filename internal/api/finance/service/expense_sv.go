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

const entityExpense = "expense"

func expenseFromRequest(req finance.ExpenseRequest) (entity.Expense, error) {
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return entity.Expense{}, finance.ErrInvalidDate
	}

	expense := entity.Expense{
		ID:           req.ID,
		UserID:       req.UserID,
		Name:         strings.TrimSpace(req.Name),
		Amount:       metrics.Round2(req.Amount),
		Category:     strings.TrimSpace(req.Category),
		Date:         date,
		Status:       entity.ExpenseStatus(req.Status),
		BillingType:  entity.BillingType(req.BillingType),
		BillingDay:   req.BillingDay,
		BillingMonth: req.BillingMonth,
	}

	// A one-off bill has no schedule; a monthly one has no month.
	switch expense.BillingType {
	case entity.BillingTypeUnique:
		expense.BillingDay = nil
		expense.BillingMonth = nil
	case entity.BillingTypeMonthly:
		expense.BillingMonth = nil
	}

	return expense, expense.Validate()
}

func (s *financeService) CreateExpense(ctx context.Context, req finance.ExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	expense, err := expenseFromRequest(req)
	if err != nil {
		return entity.Expense{}, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	expense.ID, err = s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Expense{}, err
	}
	expense.CreatedAt = s.utils.Now()
	expense.UpdatedAt = expense.CreatedAt

	if err := repo.Expense.CreateExpense(ctx, expense); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return entity.Expense{}, finance.ErrCreateExpense
	}

	s.publish(expense.UserID, entityExpense, realtime.ActionCreated, expense.ID)
	return expense, nil
}

func (s *financeService) GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error) {
	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return entity.Expense{}, err
	}

	expense, err := repo.Expense.GetExpenseByID(ctx, id)
	if err != nil {
		return entity.Expense{}, err
	}

	if expense.UserID != userID {
		return entity.Expense{}, finance.ErrExpenseNotOwned
	}

	return expense, nil
}

func (s *financeService) GetExpenses(ctx context.Context, filter finance.MonthFilter) ([]entity.Expense, error) {
	repoFilter, err := monthFilter(filter.UserID, filter.Month)
	if err != nil {
		return nil, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Expense.GetExpenses(ctx, repoFilter)
}

func (s *financeService) UpdateExpense(ctx context.Context, req finance.ExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	updated, err := expenseFromRequest(req)
	if err != nil {
		return entity.Expense{}, err
	}

	existing, err := s.GetExpenseByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Expense{}, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return entity.Expense{}, err
	}

	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.utils.Now()

	if err := repo.Expense.UpdateExpense(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": req.ID,
			"error":      err.Error(),
		}).Error("Failed to update expense")
		return entity.Expense{}, finance.ErrUpdateExpense
	}

	s.publish(updated.UserID, entityExpense, realtime.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *financeService) UpdateExpenseStatus(ctx context.Context, req finance.ExpenseStatusRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidExpenseStatus(req.Status) {
		return entity.Expense{}, finance.ErrInvalidStatus
	}

	expense, err := s.GetExpenseByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Expense{}, err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return entity.Expense{}, err
	}

	expense.Status = entity.ExpenseStatus(req.Status)
	expense.UpdatedAt = s.utils.Now()

	if err := repo.Expense.UpdateExpenseStatus(ctx, expense.ID, expense.Status, expense.UpdatedAt); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": req.ID,
			"error":      err.Error(),
		}).Error("Failed to update expense status")
		return entity.Expense{}, finance.ErrUpdateExpense
	}

	s.publish(expense.UserID, entityExpense, realtime.ActionUpdated, expense.ID)
	return expense, nil
}

func (s *financeService) DeleteExpense(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetExpenseByID(ctx, id, userID); err != nil {
		return err
	}

	repo, err := s.financeRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Expense.DeleteExpense(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": id,
			"error":      err.Error(),
		}).Error("Failed to delete expense")
		return finance.ErrDeleteExpense
	}

	s.publish(userID, entityExpense, realtime.ActionDeleted, id)
	return nil
}
