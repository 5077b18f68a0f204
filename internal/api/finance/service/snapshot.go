package financeService

import (
	"fmt"
	"mordomia/internal/api/finance"
	"mordomia/internal/entity"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// checkDestinationBank rejects bank links to banks the user does not own.
func (s *financeService) checkDestinationBank(ctx context.Context, userID string, bankID string) error {
	if bankID == "" {
		return nil
	}

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		return err
	}

	b, err := repo.Bank.GetBankByID(ctx, bankID)
	if err != nil || b.UserID != userID {
		return finance.ErrInvalidDestinationBank
	}

	return nil
}

// appendSnapshot writes a new balance snapshot for bankID computed from the
// bank's current latest balance. The snapshot is never dated before that
// latest one, otherwise a backdated transaction would be shadowed and its
// later removal would apply against a balance it never changed. Failures
// are logged and swallowed: the transaction write that triggered it has
// already succeeded.
func (s *financeService) appendSnapshot(ctx context.Context, userID string, bankID string, date time.Time, note string, next func(previous float64) float64) {
	requestID := contextPkg.GetRequestID(ctx)
	fields := logrus.Fields{
		"request_id": requestID,
		"bank_id":    bankID,
	}

	repo, err := s.bankRepository.NewClient(false)
	if err != nil {
		fields["error"] = err.Error()
		s.log.WithFields(fields).Error("Balance snapshot skipped: failed to create client")
		return
	}

	balances, err := repo.Balance.GetBalancesByBankID(ctx, bankID)
	if err != nil {
		fields["error"] = err.Error()
		s.log.WithFields(fields).Error("Balance snapshot skipped: failed to load balances")
		return
	}

	var previous float64
	if latest, ok := metrics.LatestBalance(balances, bankID); ok {
		previous = latest.Balance
		date = snapshotDate(date, latest)
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		fields["error"] = err.Error()
		s.log.WithFields(fields).Error("Balance snapshot skipped: failed to generate ULID")
		return
	}

	snapshot := entity.AccountBalance{
		ID:        ULID,
		BankID:    bankID,
		Balance:   metrics.Round2(next(previous)),
		Date:      entity.DateOnly(date),
		Notes:     note,
		CreatedAt: s.utils.Now(),
	}

	if err := repo.Balance.CreateBalance(ctx, snapshot); err != nil {
		fields["error"] = err.Error()
		s.log.WithFields(fields).Error("Balance snapshot failed")
		return
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"bank_id":    bankID,
		"previous":   previous,
		"balance":    snapshot.Balance,
	}).Debug("Balance snapshot appended")

	s.publish(userID, "account_balance", realtime.ActionCreated, snapshot.ID)
}

func (s *financeService) snapshotAfterCreate(ctx context.Context, tx entity.Transaction) {
	if !tx.IsBanked() {
		return
	}

	s.appendSnapshot(ctx, tx.UserID, tx.DestinationBankID, tx.Date, snapshotNote("added", tx), func(previous float64) float64 {
		return metrics.SnapshotAfterAdd(previous, tx)
	})
}

func (s *financeService) snapshotAfterDelete(ctx context.Context, tx entity.Transaction) {
	if !tx.IsBanked() {
		return
	}

	s.appendSnapshot(ctx, tx.UserID, tx.DestinationBankID, s.utils.Now(), snapshotNote("removed", tx), func(previous float64) float64 {
		return metrics.SnapshotAfterRemove(previous, tx)
	})
}

// snapshotAfterUpdate reverses the old transaction's effect and applies the
// new one. When both sides hit the same bank a single snapshot carries the
// net change.
func (s *financeService) snapshotAfterUpdate(ctx context.Context, before entity.Transaction, after entity.Transaction) {
	if !balanceEffectChanged(before, after) {
		return
	}

	if before.IsBanked() && before.DestinationBankID == after.DestinationBankID {
		s.appendSnapshot(ctx, after.UserID, after.DestinationBankID, s.utils.Now(), snapshotNote("updated", after), func(previous float64) float64 {
			return metrics.SnapshotAfterAdd(metrics.SnapshotAfterRemove(previous, before), after)
		})
		return
	}

	s.snapshotAfterDelete(ctx, before)
	s.snapshotAfterCreate(ctx, after)
}

// snapshotDate keeps a new snapshot at or after the bank's latest one.
func snapshotDate(date time.Time, latest entity.AccountBalance) time.Time {
	if d := entity.DateOnly(latest.Date); d.After(entity.DateOnly(date)) {
		return d
	}
	return date
}

func balanceEffectChanged(before entity.Transaction, after entity.Transaction) bool {
	return before.Amount != after.Amount ||
		before.Type != after.Type ||
		before.DestinationBankID != after.DestinationBankID
}

func snapshotNote(action string, tx entity.Transaction) string {
	return fmt.Sprintf("automatic: transaction %s %s", tx.ID, action)
}
