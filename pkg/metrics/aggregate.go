// Package metrics turns raw financial records into the figures shown on the
// dashboard and in reports. Every function is pure: no I/O, no hidden state,
// and empty input or zero denominators degrade to zero values.
package metrics

import (
	"mordomia/internal/entity"
	"time"

	"github.com/shopspring/decimal"
)

type Dated interface {
	RecordDate() time.Time
}

type Categorized interface {
	RecordCategory() string
	RecordAmount() float64
}

type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type MonthTrend struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Tithing  float64 `json:"tithing"`
	Net      float64 `json:"net"`
}

type TithingTotals struct {
	Tithes    float64 `json:"tithes"`
	Offerings float64 `json:"offerings"`
	Vows      float64 `json:"vows"`
	Total     float64 `json:"total"`
}

func TotalByType(transactions []entity.Transaction, txType entity.TransactionType) float64 {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.Type == txType {
			sum = sum.Add(decimal.NewFromFloat(t.Amount))
		}
	}
	return sum.InexactFloat64()
}

func TotalIncome(transactions []entity.Transaction) float64 {
	return TotalByType(transactions, entity.TransactionTypeIncome)
}

func TotalExpense(transactions []entity.Transaction) float64 {
	return TotalByType(transactions, entity.TransactionTypeExpense)
}

// Balance is the simple all-transactions balance, income minus expense.
func Balance(transactions []entity.Transaction) float64 {
	return TotalIncome(transactions) - TotalExpense(transactions)
}

func Sum[T Categorized](records []T) float64 {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(decimal.NewFromFloat(r.RecordAmount()))
	}
	return sum.InexactFloat64()
}

// MonthRange returns the half-open calendar range [start, end) for a
// YYYY-MM key.
func MonthRange(monthKey string) (time.Time, time.Time, bool) {
	start, err := time.Parse(entity.MonthLayout, monthKey)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), true
}

func MonthKey(t time.Time) string {
	return t.Format(entity.MonthLayout)
}

// FilterByMonth keeps the records dated inside the given month. An invalid
// key matches nothing.
func FilterByMonth[T Dated](records []T, monthKey string) []T {
	start, end, ok := MonthRange(monthKey)
	result := make([]T, 0)
	if !ok {
		return result
	}

	for _, r := range records {
		d := entity.DateOnly(r.RecordDate())
		if !d.Before(start) && d.Before(end) {
			result = append(result, r)
		}
	}
	return result
}

// CategoryBreakdown sums amounts per category keeping first-appearance order.
func CategoryBreakdown[T Categorized](records []T) []CategoryValue {
	index := make(map[string]int)
	sums := make([]decimal.Decimal, 0)
	names := make([]string, 0)

	for _, r := range records {
		name := r.RecordCategory()
		i, ok := index[name]
		if !ok {
			i = len(names)
			index[name] = i
			names = append(names, name)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(decimal.NewFromFloat(r.RecordAmount()))
	}

	result := make([]CategoryValue, 0, len(names))
	for i, name := range names {
		result = append(result, CategoryValue{Name: name, Value: sums[i].InexactFloat64()})
	}
	return result
}

// ExpenseCategoryBreakdown merges expense transactions and dedicated expenses
// into a single per-category breakdown.
func ExpenseCategoryBreakdown(transactions []entity.Transaction, expenses []entity.Expense) []CategoryValue {
	items := make([]CategoryValue, 0, len(transactions)+len(expenses))
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense {
			items = append(items, CategoryValue{Name: t.Category, Value: t.Amount})
		}
	}
	for _, e := range expenses {
		items = append(items, CategoryValue{Name: e.Category, Value: e.Amount})
	}
	return CategoryBreakdown(items)
}

func (c CategoryValue) RecordCategory() string { return c.Name }
func (c CategoryValue) RecordAmount() float64 { return c.Value }

func SumTithings(tithings []entity.Tithing) TithingTotals {
	var tithes, offerings, vows decimal.Decimal
	for _, t := range tithings {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case entity.TithingTypeTithe:
			tithes = tithes.Add(amount)
		case entity.TithingTypeOffering:
			offerings = offerings.Add(amount)
		case entity.TithingTypeVow:
			vows = vows.Add(amount)
		}
	}

	return TithingTotals{
		Tithes:    tithes.InexactFloat64(),
		Offerings: offerings.InexactFloat64(),
		Vows:      vows.InexactFloat64(),
		Total:     tithes.Add(offerings).Add(vows).InexactFloat64(),
	}
}

// TithePercentage is the share of income given as tithe. Zero income yields 0.
func TithePercentage(tithes, income float64) float64 {
	if income <= 0 || isNotFinite(tithes) || isNotFinite(income) {
		return 0
	}
	return tithes / income * 100
}

// MonthlyTrend covers the last monthsCount calendar months ending at the
// month of today, oldest first.
func MonthlyTrend(
	transactions []entity.Transaction,
	expenses []entity.Expense,
	tithings []entity.Tithing,
	monthsCount int,
	today time.Time,
) []MonthTrend {
	if monthsCount <= 0 {
		return []MonthTrend{}
	}

	current := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	trend := make([]MonthTrend, 0, monthsCount)

	for i := monthsCount - 1; i >= 0; i-- {
		key := MonthKey(current.AddDate(0, -i, 0))

		monthTxs := FilterByMonth(transactions, key)
		income := decimal.NewFromFloat(TotalIncome(monthTxs))
		spent := decimal.NewFromFloat(TotalExpense(monthTxs)).
			Add(decimal.NewFromFloat(Sum(FilterByMonth(expenses, key))))
		given := decimal.NewFromFloat(Sum(FilterByMonth(tithings, key)))

		trend = append(trend, MonthTrend{
			Month:    key,
			Income:   income.InexactFloat64(),
			Expenses: spent.InexactFloat64(),
			Tithing:  given.InexactFloat64(),
			Net:      income.Sub(spent).Sub(given).InexactFloat64(),
		})
	}

	return trend
}
