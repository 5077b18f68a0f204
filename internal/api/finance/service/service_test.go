package financeService

import (
	"errors"
	"io"
	"testing"
	"time"

	"mordomia/internal/api/bank"
	bankRepository "mordomia/internal/api/bank/repository"
	"mordomia/internal/api/finance"
	financeRepository "mordomia/internal/api/finance/repository"
	"mordomia/internal/entity"
	"mordomia/pkg/metrics"
	"mordomia/pkg/realtime"
	"mordomia/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var errStoreDown = errors.New("store unavailable")

type fakeFinanceStore struct {
	transactions map[string]entity.Transaction
	expenses     map[string]entity.Expense
	tithings     map[string]entity.Tithing
	lastFilter   financeRepository.Filter
}

func newFakeFinanceStore() *fakeFinanceStore {
	return &fakeFinanceStore{
		transactions: map[string]entity.Transaction{},
		expenses:     map[string]entity.Expense{},
		tithings:     map[string]entity.Tithing{},
	}
}

func (f *fakeFinanceStore) NewClient(bool) (financeRepository.Client, error) {
	return financeRepository.Client{
		Transaction: f,
		Expense:     f,
		Tithing:     f,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

func (f *fakeFinanceStore) CreateTransaction(_ context.Context, t entity.Transaction) error {
	f.transactions[t.ID] = t
	return nil
}

func (f *fakeFinanceStore) GetTransactionByID(_ context.Context, id string) (entity.Transaction, error) {
	t, ok := f.transactions[id]
	if !ok {
		return entity.Transaction{}, finance.ErrTransactionNotFound
	}
	return t, nil
}

func (f *fakeFinanceStore) GetTransactions(_ context.Context, filter financeRepository.Filter) ([]entity.Transaction, error) {
	f.lastFilter = filter
	var out []entity.Transaction
	for _, t := range f.transactions {
		if t.UserID == filter.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeFinanceStore) UpdateTransaction(_ context.Context, t entity.Transaction) error {
	if _, ok := f.transactions[t.ID]; !ok {
		return finance.ErrTransactionNotFound
	}
	f.transactions[t.ID] = t
	return nil
}

func (f *fakeFinanceStore) DeleteTransaction(_ context.Context, id string) error {
	if _, ok := f.transactions[id]; !ok {
		return finance.ErrTransactionNotFound
	}
	delete(f.transactions, id)
	return nil
}

func (f *fakeFinanceStore) CreateExpense(_ context.Context, e entity.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeFinanceStore) GetExpenseByID(_ context.Context, id string) (entity.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return entity.Expense{}, finance.ErrExpenseNotFound
	}
	return e, nil
}

func (f *fakeFinanceStore) GetExpenses(_ context.Context, filter financeRepository.Filter) ([]entity.Expense, error) {
	f.lastFilter = filter
	var out []entity.Expense
	for _, e := range f.expenses {
		if e.UserID == filter.UserID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFinanceStore) UpdateExpense(_ context.Context, e entity.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeFinanceStore) UpdateExpenseStatus(_ context.Context, id string, status entity.ExpenseStatus, updatedAt time.Time) error {
	e := f.expenses[id]
	e.Status = status
	e.UpdatedAt = updatedAt
	f.expenses[id] = e
	return nil
}

func (f *fakeFinanceStore) DeleteExpense(_ context.Context, id string) error {
	delete(f.expenses, id)
	return nil
}

func (f *fakeFinanceStore) CreateTithing(_ context.Context, t entity.Tithing) error {
	f.tithings[t.ID] = t
	return nil
}

func (f *fakeFinanceStore) GetTithingByID(_ context.Context, id string) (entity.Tithing, error) {
	t, ok := f.tithings[id]
	if !ok {
		return entity.Tithing{}, finance.ErrTithingNotFound
	}
	return t, nil
}

func (f *fakeFinanceStore) GetTithings(_ context.Context, filter financeRepository.Filter) ([]entity.Tithing, error) {
	f.lastFilter = filter
	var out []entity.Tithing
	for _, t := range f.tithings {
		if t.UserID == filter.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeFinanceStore) UpdateTithing(_ context.Context, t entity.Tithing) error {
	f.tithings[t.ID] = t
	return nil
}

func (f *fakeFinanceStore) DeleteTithing(_ context.Context, id string) error {
	delete(f.tithings, id)
	return nil
}

type fakeBankStore struct {
	banks       map[string]entity.Bank
	balances    []entity.AccountBalance
	failBalance bool
}

func (f *fakeBankStore) NewClient(bool) (bankRepository.Client, error) {
	return bankRepository.Client{
		Bank:     f,
		Balance:  f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeBankStore) CreateBank(_ context.Context, b entity.Bank) error {
	f.banks[b.ID] = b
	return nil
}

func (f *fakeBankStore) GetBankByID(_ context.Context, id string) (entity.Bank, error) {
	b, ok := f.banks[id]
	if !ok {
		return entity.Bank{}, bank.ErrBankNotFound
	}
	return b, nil
}

func (f *fakeBankStore) GetBanksByUserID(_ context.Context, userID string) ([]entity.Bank, error) {
	var out []entity.Bank
	for _, b := range f.banks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBankStore) UpdateBank(_ context.Context, b entity.Bank) error {
	f.banks[b.ID] = b
	return nil
}

func (f *fakeBankStore) DeleteBank(_ context.Context, id string) error {
	delete(f.banks, id)
	return nil
}

func (f *fakeBankStore) CreateBalance(_ context.Context, b entity.AccountBalance) error {
	if f.failBalance {
		return errStoreDown
	}
	f.balances = append(f.balances, b)
	return nil
}

func (f *fakeBankStore) GetBalancesByBankID(_ context.Context, bankID string) ([]entity.AccountBalance, error) {
	var out []entity.AccountBalance
	for _, b := range f.balances {
		if b.BankID == bankID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBankStore) GetBalancesByUserID(_ context.Context, _ string) ([]entity.AccountBalance, error) {
	return f.balances, nil
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type fixture struct {
	svc    IFinanceService
	store  *fakeFinanceStore
	banks  *fakeBankStore
	events *[]realtime.Event
	ctx    context.Context
	userID string
	bankID string
	today  time.Time
}

type eventSink []realtime.Event

func (e *eventSink) Publish(_ string, event realtime.Event) {
	*e = append(*e, event)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	clock := &testClock{now: today.Add(9 * time.Hour)}

	banks := &fakeBankStore{
		banks: map[string]entity.Bank{
			"bank-ana": {ID: "bank-ana", UserID: "ana", Name: "Caixa"},
			"bank-bia": {ID: "bank-bia", UserID: "bia", Name: "Inter"},
		},
		balances: []entity.AccountBalance{
			{ID: "b0", BankID: "bank-ana", Balance: 1000, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	store := newFakeFinanceStore()
	sink := &eventSink{}

	svc := NewFinanceService(logger, store, banks, utils.NewWithClock(clock.Now), sink)

	events := (*[]realtime.Event)(sink)
	return &fixture{
		svc:    svc,
		store:  store,
		banks:  banks,
		events: events,
		ctx:    context.Background(),
		userID: "ana",
		bankID: "bank-ana",
		today:  today,
	}
}

func (f *fixture) latest(t *testing.T) float64 {
	t.Helper()
	latest, ok := metrics.LatestBalance(f.banks.balances, f.bankID)
	if !ok {
		t.Fatal("no snapshot for bank")
	}
	return latest.Balance
}

func (f *fixture) netBalance() float64 {
	var txs []entity.Transaction
	for _, tx := range f.store.transactions {
		txs = append(txs, tx)
	}
	banks := []entity.Bank{f.banks.banks[f.bankID]}
	return metrics.NetBalance(banks, f.banks.balances, txs)
}

func TestCreateUnbankedTransactionSkipsSnapshot(t *testing.T) {
	f := newFixture(t)

	tx, err := f.svc.CreateTransaction(f.ctx, finance.TransactionRequest{
		UserID: f.userID, Type: "income", Amount: 1000, Category: "Salário", Date: "2025-01-10", PaymentType: "pix",
	})
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	if tx.ID == "" || tx.CreatedAt.IsZero() {
		t.Errorf("tx = %+v", tx)
	}
	if len(f.banks.balances) != 1 {
		t.Errorf("snapshots = %d, want 1", len(f.banks.balances))
	}
	if len(*f.events) != 1 || (*f.events)[0].Entity != "transaction" {
		t.Errorf("events = %+v", *f.events)
	}
}

func TestBankedTransactionRoundTripRestoresNetBalance(t *testing.T) {
	f := newFixture(t)
	before := f.netBalance()

	tx, err := f.svc.CreateTransaction(f.ctx, finance.TransactionRequest{
		UserID: f.userID, Type: "income", Amount: 200, Category: "Freela", Date: "2025-03-10",
		PaymentType: "pix", DestinationBankID: f.bankID,
	})
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	if got := f.latest(t); got != 1200 {
		t.Fatalf("latest after add = %v, want 1200", got)
	}
	added := f.banks.balances[len(f.banks.balances)-1]
	if !added.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("add snapshot dated %v, want transaction date", added.Date)
	}

	if err := f.svc.DeleteTransaction(f.ctx, tx.ID, f.userID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	removed := f.banks.balances[len(f.banks.balances)-1]
	if !removed.Date.Equal(f.today) {
		t.Errorf("remove snapshot dated %v, want today", removed.Date)
	}
	if got := f.latest(t); got != 1000 {
		t.Errorf("latest after remove = %v, want 1000", got)
	}
	if after := f.netBalance(); after != before {
		t.Errorf("net balance = %v, want %v", after, before)
	}
}

func TestBackdatedBankedTransactionStillMovesBalance(t *testing.T) {
	f := newFixture(t)
	before := f.netBalance()
	seedDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tx, err := f.svc.CreateTransaction(f.ctx, finance.TransactionRequest{
		UserID: f.userID, Type: "income", Amount: 200, Category: "Freela", Date: "2025-02-10",
		PaymentType: "pix", DestinationBankID: f.bankID,
	})
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	added := f.banks.balances[len(f.banks.balances)-1]
	if !added.Date.Equal(seedDate) {
		t.Errorf("add snapshot dated %v, want %v", added.Date, seedDate)
	}
	if got := f.latest(t); got != 1200 {
		t.Fatalf("latest after add = %v, want 1200", got)
	}

	if err := f.svc.DeleteTransaction(f.ctx, tx.ID, f.userID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	if got := f.latest(t); got != 1000 {
		t.Errorf("latest after remove = %v, want 1000", got)
	}
	if after := f.netBalance(); after != before {
		t.Errorf("net balance = %v, want %v", after, before)
	}

	unbanked, err := f.svc.CreateTransaction(f.ctx, finance.TransactionRequest{
		UserID: f.userID, Type: "expense", Amount: 50, Category: "Mercado", Date: "2025-01-20", PaymentType: "pix",
	})
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	_, err = f.svc.UpdateTransaction(f.ctx, finance.TransactionRequest{
		ID: unbanked.ID, UserID: f.userID, Type: "expense", Amount: 50, Category: "Mercado", Date: "2025-01-20",
		PaymentType: "debito", DestinationBankID: f.bankID,
	})
	if err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if got := f.latest(t); got != 950 {
		t.Errorf("latest after moving backdated expense into bank = %v, want 950", got)
	}
}

func TestUpdateOnSameBankWritesOneNetSnapshot(t *testing.T) {
	f := newFixture(t)

	tx, err := f.svc.CreateTransaction(f.ctx, finance.TransactionRequest{
		UserID: f.userID, Type: "expense", Amount: 100, Category: "Mercado", Date: "2025-03-12",
		PaymentType: "debito", DestinationBankID: f.bankID,
	})
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	if got := f.latest(t); got != 900 {
		t.Fatalf("latest after add = %v, want 900", got)
	}
	count := len(f.banks.balances)

	_, err = f.svc.UpdateTransaction(f.ctx, finance.TransactionRequest{
		ID: tx.ID, UserID: f.userID, Type: "expense", Amount: 150, Category: "Mercado", Date: "2025-03-12",
		PaymentType: "debito", DestinationBankID: f.bankID,
	})
	if err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if len(f.banks.balances) != count+1 {
		t.Errorf("snapshots appended = %d, want 1", len(f.banks.balances)-count)
	}
	if got := f.latest(t); got != 850 {
		t.Errorf("latest after update = %v, want 850", got)
	}

	_, err = f.svc.UpdateTransaction(f.ctx, finance.TransactionRequest{
		ID: tx.ID, UserID: f.userID, Type: "expense", Amount: 150, Category: "Feira", Date: "2025-03-12",
		PaymentType: "debito", DestinationBankID: f.bankID,
	})
	if err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if len(f.banks.balances) != count+1 {
		t.Error("category-only update must not append a snapshot")
	}
}

func TestSnapshotFailureDoesNotFailTransaction(t *testing.T) {
	f := newFixture(t)
	f.banks.failBalance = true

	tx, err := f.svc.CreateTransaction(f.ctx, finance.TransactionRequest{
		UserID: f.userID, Type: "income", Amount: 50, Category: "Oferta", Date: "2025-03-10",
		PaymentType: "pix", DestinationBankID: f.bankID,
	})
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v, want success despite snapshot failure", err)
	}
	if _, ok := f.store.transactions[tx.ID]; !ok {
		t.Error("transaction was not persisted")
	}
}

func TestTransactionValidationAndOwnership(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		req     finance.TransactionRequest
		wantErr error
	}{
		{
			name:    "foreign destination bank",
			req:     finance.TransactionRequest{Type: "income", Amount: 10, Category: "x", Date: "2025-03-01", PaymentType: "pix", DestinationBankID: "bank-bia"},
			wantErr: finance.ErrInvalidDestinationBank,
		},
		{
			name:    "unknown destination bank",
			req:     finance.TransactionRequest{Type: "income", Amount: 10, Category: "x", Date: "2025-03-01", PaymentType: "pix", DestinationBankID: "nope"},
			wantErr: finance.ErrInvalidDestinationBank,
		},
		{
			name:    "zero amount",
			req:     finance.TransactionRequest{Type: "income", Amount: 0, Category: "x", Date: "2025-03-01", PaymentType: "pix"},
			wantErr: finance.ErrInvalidAmount,
		},
		{
			name:    "bad date",
			req:     finance.TransactionRequest{Type: "income", Amount: 10, Category: "x", Date: "2025-13-01", PaymentType: "pix"},
			wantErr: finance.ErrInvalidDate,
		},
		{
			name:    "unknown payment type",
			req:     finance.TransactionRequest{Type: "income", Amount: 10, Category: "x", Date: "2025-03-01", PaymentType: "cheque"},
			wantErr: finance.ErrInvalidPaymentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.UserID = f.userID
			if _, err := f.svc.CreateTransaction(f.ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if len(f.store.transactions) != 0 {
		t.Errorf("invalid requests persisted %d transactions", len(f.store.transactions))
	}

	tx, err := f.svc.CreateTransaction(f.ctx, finance.TransactionRequest{
		UserID: f.userID, Type: "expense", Amount: 30, Category: "Lanche", Date: "2025-03-02", PaymentType: "moeda",
	})
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	if _, err := f.svc.GetTransactionByID(f.ctx, tx.ID, "bia"); !errors.Is(err, finance.ErrTransactionNotOwned) {
		t.Errorf("GetTransactionByID(other user) err = %v", err)
	}
	if err := f.svc.DeleteTransaction(f.ctx, tx.ID, "bia"); !errors.Is(err, finance.ErrTransactionNotOwned) {
		t.Errorf("DeleteTransaction(other user) err = %v", err)
	}
}

func TestGetTransactionsMonthFilter(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.GetTransactions(f.ctx, finance.TransactionFilter{UserID: f.userID, Month: "2025-3"}); !errors.Is(err, finance.ErrInvalidMonth) {
		t.Errorf("err = %v, want ErrInvalidMonth", err)
	}

	if _, err := f.svc.GetTransactions(f.ctx, finance.TransactionFilter{UserID: f.userID, Month: "2025-02", Type: "expense", Category: " Mercado "}); err != nil {
		t.Fatalf("GetTransactions() error = %v", err)
	}

	got := f.store.lastFilter
	if !got.From.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) || !got.To.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("range = [%v, %v)", got.From, got.To)
	}
	if got.Type != "expense" || got.Category != "Mercado" {
		t.Errorf("filter = %+v", got)
	}
}

func TestExpenseBillingSchedule(t *testing.T) {
	f := newFixture(t)
	day, month := 10, 4

	tests := []struct {
		name      string
		req       finance.ExpenseRequest
		wantErr   error
		wantDay   bool
		wantMonth bool
	}{
		{
			name:    "unique drops schedule",
			req:     finance.ExpenseRequest{Name: "Geladeira", Amount: 2500, Category: "Casa", Date: "2025-03-05", Status: "paid", BillingType: "unique", BillingDay: &day, BillingMonth: &month},
			wantDay: false,
		},
		{
			name:    "monthly keeps day only",
			req:     finance.ExpenseRequest{Name: "Aluguel", Amount: 1500, Category: "Casa", Date: "2025-03-05", Status: "pending", BillingType: "monthly", BillingDay: &day, BillingMonth: &month},
			wantDay: true,
		},
		{
			name:    "monthly without day",
			req:     finance.ExpenseRequest{Name: "Internet", Amount: 100, Category: "Casa", Date: "2025-03-05", Status: "pending", BillingType: "monthly"},
			wantErr: finance.ErrInvalidBillingDay,
		},
		{
			name:      "yearly keeps both",
			req:       finance.ExpenseRequest{Name: "IPVA", Amount: 900, Category: "Carro", Date: "2025-03-05", Status: "pending", BillingType: "yearly", BillingDay: &day, BillingMonth: &month},
			wantDay:   true,
			wantMonth: true,
		},
		{
			name:    "yearly without month",
			req:     finance.ExpenseRequest{Name: "IPTU", Amount: 900, Category: "Casa", Date: "2025-03-05", Status: "pending", BillingType: "yearly", BillingDay: &day},
			wantErr: finance.ErrInvalidBillingMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.UserID = f.userID
			expense, err := f.svc.CreateExpense(f.ctx, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateExpense() error = %v", err)
			}
			if (expense.BillingDay != nil) != tt.wantDay || (expense.BillingMonth != nil) != tt.wantMonth {
				t.Errorf("billing day/month = %v/%v", expense.BillingDay, expense.BillingMonth)
			}
		})
	}
}

func TestUpdateExpenseStatus(t *testing.T) {
	f := newFixture(t)

	expense, err := f.svc.CreateExpense(f.ctx, finance.ExpenseRequest{
		UserID: f.userID, Name: "Luz", Amount: 180, Category: "Casa", Date: "2025-03-08", Status: "pending", BillingType: "unique",
	})
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}

	updated, err := f.svc.UpdateExpenseStatus(f.ctx, finance.ExpenseStatusRequest{ID: expense.ID, UserID: f.userID, Status: "paid"})
	if err != nil {
		t.Fatalf("UpdateExpenseStatus() error = %v", err)
	}
	if updated.Status != entity.ExpenseStatusPaid || f.store.expenses[expense.ID].Status != entity.ExpenseStatusPaid {
		t.Errorf("status = %v", updated.Status)
	}

	if _, err := f.svc.UpdateExpenseStatus(f.ctx, finance.ExpenseStatusRequest{ID: expense.ID, UserID: f.userID, Status: "late"}); !errors.Is(err, finance.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
	if _, err := f.svc.UpdateExpenseStatus(f.ctx, finance.ExpenseStatusRequest{ID: expense.ID, UserID: "bia", Status: "pending"}); !errors.Is(err, finance.ErrExpenseNotOwned) {
		t.Errorf("err = %v, want ErrExpenseNotOwned", err)
	}
}

func TestTithingLifecycle(t *testing.T) {
	f := newFixture(t)

	tithing, err := f.svc.CreateTithing(f.ctx, finance.TithingRequest{
		UserID: f.userID, Amount: 100, Church: " Igreja Batista ", Date: "2025-03-02", Type: "tithe",
	})
	if err != nil {
		t.Fatalf("CreateTithing() error = %v", err)
	}
	if tithing.Church != "Igreja Batista" {
		t.Errorf("church = %q", tithing.Church)
	}

	if _, err := f.svc.CreateTithing(f.ctx, finance.TithingRequest{UserID: f.userID, Amount: 10, Church: "X", Date: "2025-03-02", Type: "gift"}); !errors.Is(err, finance.ErrInvalidTithingType) {
		t.Errorf("err = %v, want ErrInvalidTithingType", err)
	}

	updated, err := f.svc.UpdateTithing(f.ctx, finance.TithingRequest{
		ID: tithing.ID, UserID: f.userID, Amount: 120, Church: "Igreja Batista", Date: "2025-03-02", Type: "tithe",
	})
	if err != nil || updated.Amount != 120 {
		t.Fatalf("UpdateTithing() = %+v, %v", updated, err)
	}

	list, err := f.svc.GetTithings(f.ctx, finance.MonthFilter{UserID: f.userID, Month: "2025-03"})
	if err != nil || len(list) != 1 {
		t.Fatalf("GetTithings() = %v, %v", list, err)
	}

	if err := f.svc.DeleteTithing(f.ctx, tithing.ID, "bia"); !errors.Is(err, finance.ErrTithingNotOwned) {
		t.Errorf("DeleteTithing(other user) err = %v", err)
	}
	if err := f.svc.DeleteTithing(f.ctx, tithing.ID, f.userID); err != nil {
		t.Errorf("DeleteTithing() error = %v", err)
	}
}
