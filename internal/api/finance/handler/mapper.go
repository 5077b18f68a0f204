package financeHandler

import (
	"mordomia/internal/api/finance"
	"mordomia/internal/entity"
	"mordomia/pkg/metrics"
	"time"
)

func toTransactionResponse(t entity.Transaction) finance.TransactionResponse {
	return finance.TransactionResponse{
		ID:                t.ID,
		Type:              string(t.Type),
		Amount:            t.Amount,
		Description:       t.Description,
		Category:          t.Category,
		Date:              entity.FormatDate(t.Date),
		PaymentType:       string(t.PaymentType),
		DestinationBankID: t.DestinationBankID,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt.Format(time.RFC3339),
	}
}

func toTransactionList(transactions []entity.Transaction) finance.TransactionListResponse {
	items := make([]finance.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, toTransactionResponse(t))
	}

	return finance.TransactionListResponse{
		Items: items,
		Totals: finance.TransactionTotals{
			Income:  metrics.Round2(metrics.TotalIncome(transactions)),
			Expense: metrics.Round2(metrics.TotalExpense(transactions)),
			Balance: metrics.Round2(metrics.Balance(transactions)),
		},
	}
}

func toExpenseResponse(e entity.Expense) finance.ExpenseResponse {
	return finance.ExpenseResponse{
		ID:           e.ID,
		Name:         e.Name,
		Amount:       e.Amount,
		Category:     e.Category,
		Date:         entity.FormatDate(e.Date),
		Status:       string(e.Status),
		BillingType:  string(e.BillingType),
		BillingDay:   e.BillingDay,
		BillingMonth: e.BillingMonth,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

func toExpenseList(expenses []entity.Expense) finance.ExpenseListResponse {
	items := make([]finance.ExpenseResponse, 0, len(expenses))
	var paid, pending []entity.Expense
	for _, e := range expenses {
		items = append(items, toExpenseResponse(e))
		if e.Status == entity.ExpenseStatusPaid {
			paid = append(paid, e)
		} else {
			pending = append(pending, e)
		}
	}

	return finance.ExpenseListResponse{
		Items: items,
		Totals: finance.ExpenseTotals{
			Paid:    metrics.Round2(metrics.Sum(paid)),
			Pending: metrics.Round2(metrics.Sum(pending)),
			Total:   metrics.Round2(metrics.Sum(expenses)),
		},
	}
}

func toTithingResponse(t entity.Tithing) finance.TithingResponse {
	return finance.TithingResponse{
		ID:        t.ID,
		Amount:    t.Amount,
		Church:    t.Church,
		Date:      entity.FormatDate(t.Date),
		Type:      string(t.Type),
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

func toTithingList(tithings []entity.Tithing) finance.TithingListResponse {
	items := make([]finance.TithingResponse, 0, len(tithings))
	for _, t := range tithings {
		items = append(items, toTithingResponse(t))
	}

	totals := metrics.SumTithings(tithings)
	return finance.TithingListResponse{
		Items: items,
		Totals: finance.TithingTotals{
			Tithes:    metrics.Round2(totals.Tithes),
			Offerings: metrics.Round2(totals.Offerings),
			Vows:      metrics.Round2(totals.Vows),
			Total:     metrics.Round2(totals.Total),
		},
	}
}
