package reportService

import (
	"mordomia/internal/api/report"
	"mordomia/internal/entity"
	"mordomia/pkg/metrics"
	"time"

	"github.com/shopspring/decimal"
)

const titheTargetPct = 10

// monthRecords is one user's data for a single calendar month.
type monthRecords struct {
	transactions []entity.Transaction
	expenses     []entity.Expense
	tithings     []entity.Tithing
}

func buildSummary(records monthRecords) report.Summary {
	income := metrics.TotalIncome(records.transactions)
	txExpenses := metrics.TotalExpense(records.transactions)
	dedicated := metrics.Sum(records.expenses)
	given := metrics.SumTithings(records.tithings)

	totalExpenses := decimal.NewFromFloat(txExpenses).Add(decimal.NewFromFloat(dedicated))
	net := decimal.NewFromFloat(income).Sub(totalExpenses).Sub(decimal.NewFromFloat(given.Total))

	pending := decimal.Zero
	for _, e := range records.expenses {
		if e.Status == entity.ExpenseStatusPending {
			pending = pending.Add(decimal.NewFromFloat(e.Amount))
		}
	}

	return report.Summary{
		Income:              metrics.Round2(income),
		TransactionExpenses: metrics.Round2(txExpenses),
		DedicatedExpenses:   metrics.Round2(dedicated),
		TotalExpenses:       metrics.Round2(totalExpenses.InexactFloat64()),
		PendingExpenses:     metrics.Round2(pending.InexactFloat64()),
		Tithes:              metrics.Round2(given.Tithes),
		Offerings:           metrics.Round2(given.Offerings),
		Vows:                metrics.Round2(given.Vows),
		TotalGiven:          metrics.Round2(given.Total),
		Net:                 metrics.Round2(net.InexactFloat64()),
	}
}

func fidelityFor(tithes, income float64) report.Fidelity {
	pct := metrics.Round2(metrics.TithePercentage(tithes, income))

	switch {
	case income <= 0:
		return report.Fidelity{
			Level:   report.FidelityNoIncome,
			Message: "Nenhuma receita registrada neste mês.",
		}
	case pct >= titheTargetPct:
		return report.Fidelity{
			Percentage: pct,
			Level:      report.FidelityFaithful,
			Message:    "Dízimo fiel: " + report.FormatPercent(pct) + " da renda foi devolvido ao Senhor.",
		}
	case pct > 0:
		return report.Fidelity{
			Percentage: pct,
			Level:      report.FidelityPartial,
			Message:    "Dízimo parcial: " + report.FormatPercent(pct) + " da renda, abaixo dos 10%.",
		}
	default:
		return report.Fidelity{
			Level:   report.FidelityNone,
			Message: "Nenhum dízimo registrado neste mês.",
		}
	}
}

func transactionLines(transactions []entity.Transaction) []report.TransactionLine {
	lines := make([]report.TransactionLine, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, report.TransactionLine{
			Date:        entity.FormatDate(t.Date),
			Type:        string(t.Type),
			Category:    t.Category,
			Description: t.Description,
			Amount:      metrics.Round2(t.Amount),
		})
	}
	return lines
}

func tithingLines(tithings []entity.Tithing) []report.TithingLine {
	lines := make([]report.TithingLine, 0, len(tithings))
	for _, t := range tithings {
		lines = append(lines, report.TithingLine{
			Date:   entity.FormatDate(t.Date),
			Type:   string(t.Type),
			Church: t.Church,
			Amount: metrics.Round2(t.Amount),
		})
	}
	return lines
}

func incomeTransactions(transactions []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeIncome {
			out = append(out, t)
		}
	}
	return out
}

func projectGoals(goals []entity.Goal, today time.Time) []metrics.GoalProjection {
	projections := metrics.SortGoalsByPriority(metrics.ProjectGoals(goals, today))
	for i := range projections {
		p := &projections[i]
		p.RemainingAmount = metrics.Round2(p.RemainingAmount)
		p.ProgressPct = metrics.Round2(p.ProgressPct)
		p.DailyRequired = metrics.Round2(p.DailyRequired)
		p.WeeklyRequired = metrics.Round2(p.WeeklyRequired)
		p.MonthlyRequired = metrics.Round2(p.MonthlyRequired)
	}
	return projections
}

// buildMonthlyReport assembles the report bundle with the rule-based
// assessment; the service may later replace the prose.
func buildMonthlyReport(month string, monthStart time.Time, records monthRecords, goals []entity.Goal, now time.Time) report.MonthlyReport {
	summary := buildSummary(records)

	r := report.MonthlyReport{
		Month:             month,
		GeneratedAt:       now.Format(time.RFC3339),
		Summary:           summary,
		Fidelity:          fidelityFor(summary.Tithes, summary.Income),
		ExpenseCategories: metrics.ShapeSeries(metrics.ExpenseCategoryBreakdown(records.transactions, records.expenses)),
		IncomeCategories:  metrics.ShapeSeries(metrics.CategoryBreakdown(incomeTransactions(records.transactions))),
		Transactions:      transactionLines(records.transactions),
		Tithings:          tithingLines(records.tithings),
		Goals:             projectGoals(goals, now),
		Scripture:         scriptureFor(monthStart),
	}

	r.Assessment = ruleAssessment(r)
	r.AssessmentSource = assessmentSourceRules
	r.ActionItems = actionItems(r)

	return r
}

type dashboardRecords struct {
	transactions []entity.Transaction
	expenses     []entity.Expense
	tithings     []entity.Tithing
	banks        []entity.Bank
	balances     []entity.AccountBalance
	goals        []entity.Goal
}

func buildDashboard(records dashboardRecords, months int, now time.Time) report.Dashboard {
	currentMonth := metrics.MonthKey(now)
	current := monthRecords{
		transactions: metrics.FilterByMonth(records.transactions, currentMonth),
		expenses:     metrics.FilterByMonth(records.expenses, currentMonth),
		tithings:     metrics.FilterByMonth(records.tithings, currentMonth),
	}
	summary := buildSummary(current)

	return report.Dashboard{
		Months:            months,
		CurrentMonth:      currentMonth,
		TotalIncome:       metrics.Round2(metrics.TotalIncome(records.transactions)),
		TotalExpense:      metrics.Round2(metrics.TotalExpense(records.transactions)),
		BasicBalance:      metrics.Round2(metrics.Balance(records.transactions)),
		BankedTotal:       metrics.Round2(metrics.BankedTotal(records.banks, records.balances)),
		UnbankedBalance:   metrics.Round2(metrics.UnbankedBalance(records.transactions)),
		NetBalance:        metrics.Round2(metrics.NetBalance(records.banks, records.balances, records.transactions)),
		MonthSummary:      summary,
		Fidelity:          fidelityFor(summary.Tithes, summary.Income),
		IncomeCategories:  metrics.ShapeSeries(metrics.CategoryBreakdown(incomeTransactions(current.transactions))),
		ExpenseCategories: metrics.ShapeSeries(metrics.ExpenseCategoryBreakdown(current.transactions, current.expenses)),
		TithingBreakdown:  metrics.ShapeSeries(metrics.CategoryBreakdown(current.tithings)),
		Trend:             metrics.ShapeTrend(metrics.MonthlyTrend(records.transactions, records.expenses, records.tithings, months, now)),
		Goals:             projectGoals(records.goals, now),
	}
}
