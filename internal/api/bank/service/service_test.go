package bankService

import (
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"mordomia/internal/api/bank"
	bankRepository "mordomia/internal/api/bank/repository"
	"mordomia/internal/entity"
	"mordomia/pkg/realtime"
	"mordomia/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type memStore struct {
	mu          sync.Mutex
	banks       map[string]entity.Bank
	balances    []entity.AccountBalance
	investments map[string]entity.Investment
	cards       map[string]entity.Card
}

func newMemStore() *memStore {
	return &memStore{
		banks:       map[string]entity.Bank{},
		investments: map[string]entity.Investment{},
		cards:       map[string]entity.Card{},
	}
}

func (m *memStore) NewClient(bool) (bankRepository.Client, error) {
	return bankRepository.Client{
		Bank:       m,
		Balance:    m,
		Investment: m,
		Card:       m,
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

func (m *memStore) CreateBank(_ context.Context, b entity.Bank) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banks[b.ID] = b
	return nil
}

func (m *memStore) GetBankByID(_ context.Context, id string) (entity.Bank, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.banks[id]
	if !ok {
		return entity.Bank{}, bank.ErrBankNotFound
	}
	return b, nil
}

func (m *memStore) GetBanksByUserID(_ context.Context, userID string) ([]entity.Bank, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Bank
	for _, b := range m.banks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) UpdateBank(_ context.Context, b entity.Bank) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.banks[b.ID]; !ok {
		return bank.ErrBankNotFound
	}
	m.banks[b.ID] = b
	return nil
}

func (m *memStore) DeleteBank(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.banks[id]; !ok {
		return bank.ErrBankNotFound
	}
	delete(m.banks, id)
	return nil
}

func (m *memStore) CreateBalance(_ context.Context, b entity.AccountBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances = append(m.balances, b)
	return nil
}

func (m *memStore) GetBalancesByBankID(_ context.Context, bankID string) ([]entity.AccountBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.AccountBalance
	for _, b := range m.balances {
		if b.BankID == bankID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) GetBalancesByUserID(_ context.Context, userID string) ([]entity.AccountBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.AccountBalance
	for _, b := range m.balances {
		if m.banks[b.BankID].UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) CreateInvestment(_ context.Context, i entity.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.investments[i.ID] = i
	return nil
}

func (m *memStore) GetInvestmentByID(_ context.Context, id string) (entity.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.investments[id]
	if !ok {
		return entity.Investment{}, bank.ErrInvestmentNotFound
	}
	return i, nil
}

func (m *memStore) GetInvestmentsByBankID(_ context.Context, bankID string) ([]entity.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Investment
	for _, i := range m.investments {
		if i.BankID == bankID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memStore) UpdateInvestment(_ context.Context, i entity.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.investments[i.ID] = i
	return nil
}

func (m *memStore) DeleteInvestment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.investments, id)
	return nil
}

func (m *memStore) CreateCard(_ context.Context, c entity.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[c.ID] = c
	return nil
}

func (m *memStore) GetCardByID(_ context.Context, id string) (entity.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[id]
	if !ok {
		return entity.Card{}, bank.ErrCardNotFound
	}
	return c, nil
}

func (m *memStore) GetCardsByBankID(_ context.Context, bankID string) ([]entity.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Card
	for _, c := range m.cards {
		if c.BankID == bankID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) UpdateCard(_ context.Context, c entity.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[c.ID] = c
	return nil
}

func (m *memStore) DeleteCard(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cards, id)
	return nil
}

type recordingPublisher struct {
	events []realtime.Event
}

func (p *recordingPublisher) Publish(_ string, event realtime.Event) {
	p.events = append(p.events, event)
}

func newTestService(t *testing.T) (IBankService, *memStore, *recordingPublisher) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := newMemStore()
	publisher := &recordingPublisher{}
	clock := func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }

	return NewBankService(logger, store, utils.NewWithClock(clock), publisher), store, publisher
}

func createBank(t *testing.T, svc IBankService, userID string, name string) entity.Bank {
	t.Helper()

	b, err := svc.CreateBank(context.Background(), bank.CreateBankRequest{UserID: userID, Name: name})
	if err != nil {
		t.Fatalf("CreateBank() error = %v", err)
	}
	return b
}

func TestCreateBankPublishesEvent(t *testing.T) {
	svc, store, publisher := newTestService(t)

	b := createBank(t, svc, "ana", "Nubank")

	if b.ID == "" {
		t.Fatal("CreateBank() returned empty id")
	}
	if _, ok := store.banks[b.ID]; !ok {
		t.Error("bank was not persisted")
	}
	if len(publisher.events) != 1 || publisher.events[0].Entity != "bank" || publisher.events[0].Action != realtime.ActionCreated {
		t.Errorf("events = %+v", publisher.events)
	}
}

func TestCreateBankRejectsBlankName(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateBank(context.Background(), bank.CreateBankRequest{UserID: "ana", Name: "   "})
	if !errors.Is(err, bank.ErrInvalidBankName) {
		t.Errorf("err = %v, want ErrInvalidBankName", err)
	}
}

func TestBankOwnership(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	b := createBank(t, svc, "ana", "Itau")

	if _, err := svc.GetBank(ctx, b.ID, "bia"); !errors.Is(err, bank.ErrBankNotOwned) {
		t.Errorf("GetBank() err = %v, want ErrBankNotOwned", err)
	}
	if err := svc.DeleteBank(ctx, b.ID, "bia"); !errors.Is(err, bank.ErrBankNotOwned) {
		t.Errorf("DeleteBank() err = %v, want ErrBankNotOwned", err)
	}
	if _, err := svc.GetBank(ctx, "missing", "ana"); !errors.Is(err, bank.ErrBankNotFound) {
		t.Errorf("GetBank(missing) err = %v, want ErrBankNotFound", err)
	}
	if _, err := svc.RecordBalance(ctx, bank.CreateBalanceRequest{BankID: b.ID, UserID: "bia", Balance: 10, Date: "2025-03-01"}); !errors.Is(err, bank.ErrBankNotOwned) {
		t.Errorf("RecordBalance() err = %v, want ErrBankNotOwned", err)
	}
}

func TestUpdateBank(t *testing.T) {
	svc, store, _ := newTestService(t)

	b := createBank(t, svc, "ana", "Itau")

	updated, err := svc.UpdateBank(context.Background(), bank.UpdateBankRequest{
		ID:            b.ID,
		UserID:        "ana",
		Name:          "Itau Personnalite",
		AccountHolder: "Ana",
	})
	if err != nil {
		t.Fatalf("UpdateBank() error = %v", err)
	}
	if updated.Name != "Itau Personnalite" || store.banks[b.ID].AccountHolder != "Ana" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestLatestBalanceFollowsSnapshotDate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	b := createBank(t, svc, "ana", "Caixa")

	if _, err := svc.GetLatestBalance(ctx, b.ID, "ana"); !errors.Is(err, bank.ErrBalanceNotFound) {
		t.Fatalf("GetLatestBalance() on empty log err = %v, want ErrBalanceNotFound", err)
	}

	for _, snap := range []struct {
		date    string
		balance float64
	}{
		{"2025-03-10", 800},
		{"2025-02-01", 1200},
	} {
		if _, err := svc.RecordBalance(ctx, bank.CreateBalanceRequest{BankID: b.ID, UserID: "ana", Balance: snap.balance, Date: snap.date}); err != nil {
			t.Fatalf("RecordBalance() error = %v", err)
		}
	}

	latest, err := svc.GetLatestBalance(ctx, b.ID, "ana")
	if err != nil {
		t.Fatalf("GetLatestBalance() error = %v", err)
	}
	if latest.Balance != 800 {
		t.Errorf("latest balance = %v, want 800", latest.Balance)
	}

	history, err := svc.GetBalanceHistory(ctx, b.ID, "ana")
	if err != nil || len(history) != 2 {
		t.Errorf("history = %v, %v", history, err)
	}
}

func TestRecordBalanceRejectsBadDate(t *testing.T) {
	svc, _, _ := newTestService(t)
	b := createBank(t, svc, "ana", "Caixa")

	_, err := svc.RecordBalance(context.Background(), bank.CreateBalanceRequest{BankID: b.ID, UserID: "ana", Balance: 1, Date: "15/03/2025"})
	if !errors.Is(err, bank.ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestInvestmentPeriodRules(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	b := createBank(t, svc, "ana", "BB")

	tests := []struct {
		name    string
		req     bank.InvestmentRequest
		wantErr error
	}{
		{
			name: "permanent without end date",
			req:  bank.InvestmentRequest{Type: "CDB", InitialValue: 1000, PeriodType: "permanente", StartDate: "2025-01-01"},
		},
		{
			name: "periodic with end date",
			req:  bank.InvestmentRequest{Type: "LCI", InitialValue: 500, PeriodType: "periodico", StartDate: "2025-01-01", EndDate: "2026-01-01"},
		},
		{
			name:    "periodic without end date",
			req:     bank.InvestmentRequest{Type: "LCI", InitialValue: 500, PeriodType: "periodico", StartDate: "2025-01-01"},
			wantErr: bank.ErrInvalidEndDate,
		},
		{
			name:    "permanent with end date",
			req:     bank.InvestmentRequest{Type: "CDB", InitialValue: 500, PeriodType: "permanente", StartDate: "2025-01-01", EndDate: "2026-01-01"},
			wantErr: bank.ErrUnexpectedEndDate,
		},
		{
			name:    "unparseable start date",
			req:     bank.InvestmentRequest{Type: "CDB", InitialValue: 500, PeriodType: "permanente", StartDate: "soon"},
			wantErr: bank.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.BankID = b.ID
			tt.req.UserID = "ana"

			_, err := svc.CreateInvestment(ctx, tt.req)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("CreateInvestment() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateInvestment() err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	investments, err := svc.GetInvestments(ctx, b.ID, "ana")
	if err != nil || len(investments) != 2 {
		t.Errorf("GetInvestments() = %d items, err %v; want 2", len(investments), err)
	}
}

func TestCardMustBelongToPathBank(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first := createBank(t, svc, "ana", "Inter")
	second := createBank(t, svc, "ana", "C6")

	card, err := svc.CreateCard(ctx, bank.CardRequest{BankID: first.ID, UserID: "ana", Type: "credito", ExpiryDate: "2029-08-01"})
	if err != nil {
		t.Fatalf("CreateCard() error = %v", err)
	}

	if err := svc.DeleteCard(ctx, second.ID, card.ID, "ana"); !errors.Is(err, bank.ErrCardNotFound) {
		t.Errorf("DeleteCard() via other bank err = %v, want ErrCardNotFound", err)
	}

	updated, err := svc.UpdateCard(ctx, bank.CardRequest{ID: card.ID, BankID: first.ID, UserID: "ana", Type: "debito", ExpiryDate: "2030-01-01"})
	if err != nil {
		t.Fatalf("UpdateCard() error = %v", err)
	}
	if updated.Type != entity.CardTypeDebit || !updated.CreatedAt.Equal(card.CreatedAt) {
		t.Errorf("updated = %+v", updated)
	}

	if err := svc.DeleteCard(ctx, first.ID, card.ID, "ana"); err != nil {
		t.Errorf("DeleteCard() error = %v", err)
	}
}

func TestCreateCardRejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestService(t)
	b := createBank(t, svc, "ana", "Inter")

	_, err := svc.CreateCard(context.Background(), bank.CardRequest{BankID: b.ID, UserID: "ana", Type: "prepaid", ExpiryDate: "2029-08-01"})
	if !errors.Is(err, bank.ErrInvalidCardType) {
		t.Errorf("err = %v, want ErrInvalidCardType", err)
	}
}
