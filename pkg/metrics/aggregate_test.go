package metrics

import (
	"mordomia/internal/entity"
	"reflect"
	"testing"
	"time"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := entity.ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", value, err)
	}
	return d
}

func TestBalanceIdentity(t *testing.T) {
	sets := [][]entity.Transaction{
		nil,
		{{Type: entity.TransactionTypeIncome, Amount: 10.1}},
		{{Type: entity.TransactionTypeExpense, Amount: 0.3}},
		{
			{Type: entity.TransactionTypeIncome, Amount: 0.1},
			{Type: entity.TransactionTypeIncome, Amount: 0.2},
			{Type: entity.TransactionTypeExpense, Amount: 0.7},
			{Type: entity.TransactionTypeExpense, Amount: 1234.56},
		},
	}

	for i, txs := range sets {
		if got, want := Balance(txs), TotalIncome(txs)-TotalExpense(txs); got != want {
			t.Errorf("set %d: Balance() = %v, want %v", i, got, want)
		}
	}
}

func TestTotalByTypeSumsExactly(t *testing.T) {
	txs := []entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: 0.1},
		{Type: entity.TransactionTypeIncome, Amount: 0.2},
		{Type: entity.TransactionTypeExpense, Amount: 5},
	}

	if got := TotalIncome(txs); got != 0.3 {
		t.Errorf("TotalIncome() = %v, want 0.3", got)
	}
	if got := TotalExpense(txs); got != 5 {
		t.Errorf("TotalExpense() = %v, want 5", got)
	}
	if got := TotalIncome(nil); got != 0 {
		t.Errorf("TotalIncome(nil) = %v, want 0", got)
	}
}

func TestFilterByMonth(t *testing.T) {
	txs := []entity.Transaction{
		{ID: "a", Date: date(t, "2025-01-31")},
		{ID: "b", Date: date(t, "2025-02-01")},
		{ID: "c", Date: date(t, "2025-02-28")},
		{ID: "d", Date: date(t, "2025-03-01")},
		{ID: "e", Date: time.Date(2025, 2, 14, 23, 59, 0, 0, time.UTC)},
	}

	got := FilterByMonth(txs, "2025-02")
	ids := make([]string, 0, len(got))
	for _, tx := range got {
		ids = append(ids, tx.ID)
	}

	if want := []string{"b", "c", "e"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("FilterByMonth() ids = %v, want %v", ids, want)
	}

	for _, key := range []string{"", "2025-2", "2025/02", "2025-13", "february"} {
		if got := FilterByMonth(txs, key); len(got) != 0 {
			t.Errorf("FilterByMonth(%q) returned %d records, want 0", key, len(got))
		}
	}
}

func TestCategoryBreakdownKeepsFirstAppearanceOrder(t *testing.T) {
	txs := []entity.Transaction{
		{Category: "mercado", Amount: 100},
		{Category: "transporte", Amount: 40},
		{Category: "mercado", Amount: 50.5},
		{Category: "lazer", Amount: 10},
	}

	want := []CategoryValue{
		{Name: "mercado", Value: 150.5},
		{Name: "transporte", Value: 40},
		{Name: "lazer", Value: 10},
	}

	if got := CategoryBreakdown(txs); !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryBreakdown() = %v, want %v", got, want)
	}

	if got := CategoryBreakdown([]entity.Transaction{}); len(got) != 0 {
		t.Errorf("CategoryBreakdown(empty) = %v, want empty", got)
	}
}

func TestExpenseCategoryBreakdownMergesSources(t *testing.T) {
	txs := []entity.Transaction{
		{Type: entity.TransactionTypeIncome, Category: "salario", Amount: 5000},
		{Type: entity.TransactionTypeExpense, Category: "casa", Amount: 200},
	}
	expenses := []entity.Expense{
		{Category: "casa", Amount: 800},
		{Category: "escola", Amount: 300},
	}

	want := []CategoryValue{
		{Name: "casa", Value: 1000},
		{Name: "escola", Value: 300},
	}

	if got := ExpenseCategoryBreakdown(txs, expenses); !reflect.DeepEqual(got, want) {
		t.Errorf("ExpenseCategoryBreakdown() = %v, want %v", got, want)
	}
}

func TestSumTithings(t *testing.T) {
	tithings := []entity.Tithing{
		{Type: entity.TithingTypeTithe, Amount: 100},
		{Type: entity.TithingTypeTithe, Amount: 50},
		{Type: entity.TithingTypeOffering, Amount: 20},
		{Type: entity.TithingTypeVow, Amount: 30},
	}

	want := TithingTotals{Tithes: 150, Offerings: 20, Vows: 30, Total: 200}
	if got := SumTithings(tithings); got != want {
		t.Errorf("SumTithings() = %+v, want %+v", got, want)
	}

	if got := SumTithings(nil); got != (TithingTotals{}) {
		t.Errorf("SumTithings(nil) = %+v, want zero", got)
	}
}

func TestTithePercentage(t *testing.T) {
	cases := []struct {
		name   string
		tithes float64
		income float64
		want   float64
	}{
		{"ten percent", 100, 1000, 10},
		{"zero income", 250, 0, 0},
		{"zero both", 0, 0, 0},
		{"negative income", 10, -100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TithePercentage(tc.tithes, tc.income); got != tc.want {
				t.Errorf("TithePercentage(%v, %v) = %v, want %v", tc.tithes, tc.income, got, tc.want)
			}
		})
	}
}

func TestMonthlyTrendWithoutRecords(t *testing.T) {
	today := date(t, "2025-03-15")

	got := MonthlyTrend(nil, nil, nil, 3, today)
	want := []MonthTrend{
		{Month: "2025-01"},
		{Month: "2025-02"},
		{Month: "2025-03"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthlyTrend() = %+v, want %+v", got, want)
	}

	if got := MonthlyTrend(nil, nil, nil, 0, today); len(got) != 0 {
		t.Errorf("MonthlyTrend(0 months) = %+v, want empty", got)
	}
}

func TestMonthlyTrendCombinesSources(t *testing.T) {
	today := date(t, "2025-03-15")

	txs := []entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: 1000, Date: date(t, "2025-02-05")},
		{Type: entity.TransactionTypeExpense, Amount: 200, Date: date(t, "2025-02-10")},
		{Type: entity.TransactionTypeIncome, Amount: 999, Date: date(t, "2024-12-31")},
	}
	expenses := []entity.Expense{
		{Amount: 100, Date: date(t, "2025-02-20")},
	}
	tithings := []entity.Tithing{
		{Type: entity.TithingTypeTithe, Amount: 100, Date: date(t, "2025-02-06")},
		{Type: entity.TithingTypeOffering, Amount: 15, Date: date(t, "2025-03-01")},
	}

	got := MonthlyTrend(txs, expenses, tithings, 2, today)
	want := []MonthTrend{
		{Month: "2025-02", Income: 1000, Expenses: 300, Tithing: 100, Net: 600},
		{Month: "2025-03", Income: 0, Expenses: 0, Tithing: 15, Net: -15},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthlyTrend() = %+v, want %+v", got, want)
	}
}

func TestMonthlyTrendCrossesYearBoundary(t *testing.T) {
	got := MonthlyTrend(nil, nil, nil, 2, date(t, "2025-01-31"))
	if got[0].Month != "2024-12" || got[1].Month != "2025-01" {
		t.Errorf("MonthlyTrend() months = %s, %s, want 2024-12, 2025-01", got[0].Month, got[1].Month)
	}
}
