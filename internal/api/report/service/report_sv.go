package reportService

import (
	"mordomia/internal/api/report"
	financeRepository "mordomia/internal/api/finance/repository"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *reportService) GetDashboard(ctx context.Context, query report.DashboardQuery) (report.Dashboard, error) {
	requestID := contextPkg.GetRequestID(ctx)

	months := query.Months
	if months == 0 {
		months = defaultDashboardMonths
	}
	if months < 1 || months > 24 {
		return report.Dashboard{}, report.ErrInvalidMonthsCount
	}

	records, err := s.loadDashboardRecords(ctx, query.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    query.UserID,
			"error":      err.Error(),
		}).Error("failed to load dashboard records")
		return report.Dashboard{}, report.ErrLoadRecords
	}

	return buildDashboard(records, months, s.utils.Now()), nil
}

func (s *reportService) GetMonthlyReport(ctx context.Context, query report.MonthQuery) (report.MonthlyReport, error) {
	requestID := contextPkg.GetRequestID(ctx)

	from, to, ok := metrics.MonthRange(query.Month)
	if !ok {
		return report.MonthlyReport{}, report.ErrInvalidMonth
	}

	financeClient, err := s.financeRepository.NewClient(false)
	if err != nil {
		return report.MonthlyReport{}, s.loadFailed(requestID, query.UserID, err)
	}

	filter := financeRepository.Filter{UserID: query.UserID, From: from, To: to}

	var records monthRecords
	if records.transactions, err = financeClient.Transaction.GetTransactions(ctx, filter); err != nil {
		return report.MonthlyReport{}, s.loadFailed(requestID, query.UserID, err)
	}
	if records.expenses, err = financeClient.Expense.GetExpenses(ctx, filter); err != nil {
		return report.MonthlyReport{}, s.loadFailed(requestID, query.UserID, err)
	}
	if records.tithings, err = financeClient.Tithing.GetTithings(ctx, filter); err != nil {
		return report.MonthlyReport{}, s.loadFailed(requestID, query.UserID, err)
	}

	goalClient, err := s.goalRepository.NewClient(false)
	if err != nil {
		return report.MonthlyReport{}, s.loadFailed(requestID, query.UserID, err)
	}

	goals, err := goalClient.Goal.GetGoalsByUser(ctx, query.UserID)
	if err != nil {
		return report.MonthlyReport{}, s.loadFailed(requestID, query.UserID, err)
	}

	r := buildMonthlyReport(query.Month, from, records, goals, s.utils.Now())
	r.UserName = query.UserName

	s.applyAIAssessment(ctx, &r, requestID)

	return r, nil
}

func (s *reportService) loadDashboardRecords(ctx context.Context, userID string) (dashboardRecords, error) {
	var records dashboardRecords

	financeClient, err := s.financeRepository.NewClient(false)
	if err != nil {
		return records, err
	}

	filter := financeRepository.Filter{UserID: userID}
	if records.transactions, err = financeClient.Transaction.GetTransactions(ctx, filter); err != nil {
		return records, err
	}
	if records.expenses, err = financeClient.Expense.GetExpenses(ctx, filter); err != nil {
		return records, err
	}
	if records.tithings, err = financeClient.Tithing.GetTithings(ctx, filter); err != nil {
		return records, err
	}

	bankClient, err := s.bankRepository.NewClient(false)
	if err != nil {
		return records, err
	}
	if records.banks, err = bankClient.Bank.GetBanksByUserID(ctx, userID); err != nil {
		return records, err
	}
	if records.balances, err = bankClient.Balance.GetBalancesByUserID(ctx, userID); err != nil {
		return records, err
	}

	goalClient, err := s.goalRepository.NewClient(false)
	if err != nil {
		return records, err
	}
	records.goals, err = goalClient.Goal.GetGoalsByUser(ctx, userID)

	return records, err
}

func (s *reportService) loadFailed(requestID, userID string, err error) error {
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"error":      err.Error(),
	}).Error("failed to load report records")
	return report.ErrLoadRecords
}
