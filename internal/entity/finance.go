package entity

import (
	"mordomia/internal/api/finance"
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

type PaymentType string

const (
	PaymentTypePix    PaymentType = "pix"
	PaymentTypeCredit PaymentType = "credito"
	PaymentTypeDebit  PaymentType = "debito"
	PaymentTypeCash   PaymentType = "moeda"
	PaymentTypeBoleto PaymentType = "boleto"
)

func IsValidPaymentType(p string) bool {
	switch PaymentType(p) {
	case PaymentTypePix, PaymentTypeCredit, PaymentTypeDebit, PaymentTypeCash, PaymentTypeBoleto:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	Type              TransactionType `json:"type"`
	Amount            float64         `json:"amount"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Date              time.Time       `json:"date"`
	PaymentType       PaymentType     `json:"payment_type"`
	DestinationBankID string          `json:"destination_bank_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsBanked reports whether the transaction moves money in a registered bank
// account instead of the general pool.
func (t Transaction) IsBanked() bool {
	return t.DestinationBankID != ""
}

func (t Transaction) RecordDate() time.Time { return t.Date }
func (t Transaction) RecordCategory() string { return t.Category }
func (t Transaction) RecordAmount() float64 { return t.Amount }

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(string(t.Type)) {
		return finance.ErrInvalidTransactionType
	}

	if !IsValidPaymentType(string(t.PaymentType)) {
		return finance.ErrInvalidPaymentType
	}

	if t.Amount <= 0 {
		return finance.ErrInvalidAmount
	}

	if strings.TrimSpace(t.Category) == "" {
		return finance.ErrInvalidCategory
	}

	if t.Date.IsZero() {
		return finance.ErrInvalidDate
	}

	return nil
}

type ExpenseStatus string

const (
	ExpenseStatusPaid    ExpenseStatus = "paid"
	ExpenseStatusPending ExpenseStatus = "pending"
)

func IsValidExpenseStatus(s string) bool {
	return ExpenseStatus(s) == ExpenseStatusPaid || ExpenseStatus(s) == ExpenseStatusPending
}

type BillingType string

const (
	BillingTypeUnique  BillingType = "unique"
	BillingTypeMonthly BillingType = "monthly"
	BillingTypeYearly  BillingType = "yearly"
)

func IsValidBillingType(b string) bool {
	switch BillingType(b) {
	case BillingTypeUnique, BillingTypeMonthly, BillingTypeYearly:
		return true
	default:
		return false
	}
}

// Expense is a dedicated bill, tracked apart from ad-hoc transactions.
type Expense struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Name         string        `json:"name"`
	Amount       float64       `json:"amount"`
	Category     string        `json:"category"`
	Date         time.Time     `json:"date"`
	Status       ExpenseStatus `json:"status"`
	BillingType  BillingType   `json:"billing_type"`
	BillingDay   *int          `json:"billing_day,omitempty"`
	BillingMonth *int          `json:"billing_month,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (e Expense) RecordDate() time.Time { return e.Date }
func (e Expense) RecordCategory() string { return e.Category }
func (e Expense) RecordAmount() float64 { return e.Amount }

func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return finance.ErrInvalidExpenseName
	}

	if e.Amount <= 0 {
		return finance.ErrInvalidAmount
	}

	if strings.TrimSpace(e.Category) == "" {
		return finance.ErrInvalidCategory
	}

	if e.Date.IsZero() {
		return finance.ErrInvalidDate
	}

	if !IsValidExpenseStatus(string(e.Status)) {
		return finance.ErrInvalidStatus
	}

	switch e.BillingType {
	case BillingTypeUnique:
	case BillingTypeMonthly:
		if e.BillingDay == nil || *e.BillingDay < 1 || *e.BillingDay > 31 {
			return finance.ErrInvalidBillingDay
		}
	case BillingTypeYearly:
		if e.BillingDay == nil || *e.BillingDay < 1 || *e.BillingDay > 31 {
			return finance.ErrInvalidBillingDay
		}
		if e.BillingMonth == nil || *e.BillingMonth < 1 || *e.BillingMonth > 12 {
			return finance.ErrInvalidBillingMonth
		}
	default:
		return finance.ErrInvalidBillingType
	}

	return nil
}

type TithingType string

const (
	TithingTypeTithe    TithingType = "tithe"
	TithingTypeOffering TithingType = "offering"
	TithingTypeVow      TithingType = "vow"
)

func IsValidTithingType(t string) bool {
	switch TithingType(t) {
	case TithingTypeTithe, TithingTypeOffering, TithingTypeVow:
		return true
	default:
		return false
	}
}

type Tithing struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Amount    float64     `json:"amount"`
	Church    string      `json:"church"`
	Date      time.Time   `json:"date"`
	Type      TithingType `json:"type"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (t Tithing) RecordDate() time.Time { return t.Date }
func (t Tithing) RecordCategory() string { return string(t.Type) }
func (t Tithing) RecordAmount() float64 { return t.Amount }

func (t *Tithing) Validate() error {
	if t.Amount <= 0 {
		return finance.ErrInvalidAmount
	}

	if strings.TrimSpace(t.Church) == "" {
		return finance.ErrInvalidChurch
	}

	if !IsValidTithingType(string(t.Type)) {
		return finance.ErrInvalidTithingType
	}

	if t.Date.IsZero() {
		return finance.ErrInvalidDate
	}

	return nil
}
