package metrics

import (
	"mordomia/internal/entity"

	"github.com/shopspring/decimal"
)

// LatestBalance picks the snapshot with the greatest date for the bank.
// Snapshots sharing a date are ordered by creation time, then by id, so the
// most recently inserted one wins.
func LatestBalance(balances []entity.AccountBalance, bankID string) (entity.AccountBalance, bool) {
	var (
		latest entity.AccountBalance
		found  bool
	)

	for _, b := range balances {
		if b.BankID != bankID {
			continue
		}
		if !found || isNewerSnapshot(b, latest) {
			latest = b
			found = true
		}
	}

	return latest, found
}

func isNewerSnapshot(candidate, current entity.AccountBalance) bool {
	cd, ld := entity.DateOnly(candidate.Date), entity.DateOnly(current.Date)
	if !cd.Equal(ld) {
		return cd.After(ld)
	}
	if !candidate.CreatedAt.Equal(current.CreatedAt) {
		return candidate.CreatedAt.After(current.CreatedAt)
	}
	return candidate.ID > current.ID
}

// BankedTotal sums the latest balance of every bank. Banks without snapshots
// contribute nothing.
func BankedTotal(banks []entity.Bank, balances []entity.AccountBalance) float64 {
	sum := decimal.Zero
	for _, b := range banks {
		if latest, ok := LatestBalance(balances, b.ID); ok {
			sum = sum.Add(decimal.NewFromFloat(latest.Balance))
		}
	}
	return sum.InexactFloat64()
}

// UnbankedBalance is the flow of transactions not linked to any bank.
func UnbankedBalance(transactions []entity.Transaction) float64 {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.IsBanked() {
			continue
		}
		sum = sum.Add(signedAmount(t))
	}
	return sum.InexactFloat64()
}

func NetBalance(banks []entity.Bank, balances []entity.AccountBalance, transactions []entity.Transaction) float64 {
	return decimal.NewFromFloat(BankedTotal(banks, balances)).
		Add(decimal.NewFromFloat(UnbankedBalance(transactions))).
		InexactFloat64()
}

// SnapshotAfterAdd is the running balance once the transaction is applied.
func SnapshotAfterAdd(previous float64, tx entity.Transaction) float64 {
	return decimal.NewFromFloat(previous).Add(signedAmount(tx)).InexactFloat64()
}

// SnapshotAfterRemove reverses exactly what SnapshotAfterAdd applied.
func SnapshotAfterRemove(previous float64, tx entity.Transaction) float64 {
	return decimal.NewFromFloat(previous).Sub(signedAmount(tx)).InexactFloat64()
}

func signedAmount(tx entity.Transaction) decimal.Decimal {
	amount := decimal.NewFromFloat(tx.Amount)
	switch tx.Type {
	case entity.TransactionTypeIncome:
		return amount
	case entity.TransactionTypeExpense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}
