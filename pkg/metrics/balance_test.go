package metrics

import (
	"mordomia/internal/entity"
	"testing"
	"time"
)

func TestBalanceWithoutBanks(t *testing.T) {
	txs := []entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: 1000, Date: date(t, "2025-01-10")},
		{Type: entity.TransactionTypeExpense, Amount: 300, Date: date(t, "2025-01-15")},
	}

	if got := Balance(txs); got != 700 {
		t.Errorf("Balance() = %v, want 700", got)
	}
	if got := NetBalance(nil, nil, txs); got != 700 {
		t.Errorf("NetBalance() = %v, want 700", got)
	}
}

func TestLatestBalanceUsesDateNotInsertionOrder(t *testing.T) {
	balances := []entity.AccountBalance{
		{ID: "2", BankID: "A", Balance: 800, Date: date(t, "2025-01-20")},
		{ID: "1", BankID: "A", Balance: 500, Date: date(t, "2025-01-01")},
		{ID: "3", BankID: "B", Balance: 9000, Date: date(t, "2025-02-01")},
	}

	latest, ok := LatestBalance(balances, "A")
	if !ok {
		t.Fatal("LatestBalance() found = false, want true")
	}
	if latest.Balance != 800 {
		t.Errorf("LatestBalance() = %v, want 800", latest.Balance)
	}

	if _, ok := LatestBalance(balances, "missing"); ok {
		t.Error("LatestBalance(missing) found = true, want false")
	}
}

func TestLatestBalanceTieBreak(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	balances := []entity.AccountBalance{
		{ID: "01A", BankID: "A", Balance: 100, Date: date(t, "2025-01-05"), CreatedAt: created.Add(time.Minute)},
		{ID: "01B", BankID: "A", Balance: 200, Date: date(t, "2025-01-05"), CreatedAt: created},
	}
	if latest, _ := LatestBalance(balances, "A"); latest.Balance != 100 {
		t.Errorf("same date: LatestBalance() = %v, want most recently created 100", latest.Balance)
	}

	balances[0].CreatedAt = created
	if latest, _ := LatestBalance(balances, "A"); latest.Balance != 200 {
		t.Errorf("same date and creation: LatestBalance() = %v, want greatest id 200", latest.Balance)
	}
}

func TestNetBalanceCombinesBankedAndUnbanked(t *testing.T) {
	banks := []entity.Bank{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	balances := []entity.AccountBalance{
		{ID: "1", BankID: "A", Balance: 500, Date: date(t, "2025-01-01")},
		{ID: "2", BankID: "A", Balance: 800, Date: date(t, "2025-01-20")},
		{ID: "3", BankID: "B", Balance: -50, Date: date(t, "2025-01-03")},
	}
	txs := []entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: 100},
		{Type: entity.TransactionTypeExpense, Amount: 30},
		{Type: entity.TransactionTypeIncome, Amount: 5000, DestinationBankID: "A"},
	}

	if got := BankedTotal(banks, balances); got != 750 {
		t.Errorf("BankedTotal() = %v, want 750", got)
	}
	if got := UnbankedBalance(txs); got != 70 {
		t.Errorf("UnbankedBalance() = %v, want 70", got)
	}
	if got := NetBalance(banks, balances, txs); got != 820 {
		t.Errorf("NetBalance() = %v, want 820", got)
	}
}

func TestSnapshotAddThenRemoveRestoresNetBalance(t *testing.T) {
	banks := []entity.Bank{{ID: "A"}}
	balances := []entity.AccountBalance{
		{ID: "1", BankID: "A", Balance: 500, Date: date(t, "2025-01-01")},
	}
	before := NetBalance(banks, balances, nil)

	for _, txType := range []entity.TransactionType{entity.TransactionTypeIncome, entity.TransactionTypeExpense} {
		tx := entity.Transaction{Type: txType, Amount: 123.45, DestinationBankID: "A", Date: date(t, "2025-01-10")}

		latest, _ := LatestBalance(balances, "A")
		afterAdd := append(balances, entity.AccountBalance{
			ID: "2", BankID: "A", Date: tx.Date, Balance: SnapshotAfterAdd(latest.Balance, tx),
		})

		latest, _ = LatestBalance(afterAdd, "A")
		afterRemove := append(afterAdd, entity.AccountBalance{
			ID: "3", BankID: "A", Date: date(t, "2025-03-01"), Balance: SnapshotAfterRemove(latest.Balance, tx),
		})

		if got := NetBalance(banks, afterRemove, nil); got != before {
			t.Errorf("%s: NetBalance() after add+remove = %v, want %v", txType, got, before)
		}
	}
}

func TestSnapshotDirection(t *testing.T) {
	income := entity.Transaction{Type: entity.TransactionTypeIncome, Amount: 100}
	expense := entity.Transaction{Type: entity.TransactionTypeExpense, Amount: 100}

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"add income", SnapshotAfterAdd(500, income), 600},
		{"add expense", SnapshotAfterAdd(500, expense), 400},
		{"remove income", SnapshotAfterRemove(500, income), 400},
		{"remove expense", SnapshotAfterRemove(500, expense), 600},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}
