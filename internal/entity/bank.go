package entity

import (
	"mordomia/internal/api/bank"
	"strings"
	"time"
)

type Bank struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Agency          string    `json:"agency"`
	AccountHolder   string    `json:"account_holder"`
	InvestmentsInfo string    `json:"investments_info,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (b *Bank) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return bank.ErrInvalidBankName
	}
	return nil
}

// AccountBalance is one entry of a bank's append-only balance log.
type AccountBalance struct {
	ID        string    `json:"id"`
	BankID    string    `json:"bank_id"`
	Balance   float64   `json:"balance"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type InvestmentPeriodType string

const (
	InvestmentPeriodic  InvestmentPeriodType = "periodico"
	InvestmentPermanent InvestmentPeriodType = "permanente"
)

type Investment struct {
	ID           string               `json:"id"`
	BankID       string               `json:"bank_id"`
	Type         string               `json:"type"`
	InitialValue float64              `json:"initial_value"`
	FinalValue   *float64             `json:"final_value,omitempty"`
	PeriodType   InvestmentPeriodType `json:"period_type"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      *time.Time           `json:"end_date,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func (i *Investment) Validate() error {
	if strings.TrimSpace(i.Type) == "" {
		return bank.ErrInvalidInvestment
	}

	if i.InitialValue < 0 || (i.FinalValue != nil && *i.FinalValue < 0) {
		return bank.ErrInvalidAmount
	}

	if i.StartDate.IsZero() {
		return bank.ErrInvalidDate
	}

	switch i.PeriodType {
	case InvestmentPeriodic:
		if i.EndDate == nil || i.EndDate.Before(i.StartDate) {
			return bank.ErrInvalidEndDate
		}
	case InvestmentPermanent:
		if i.EndDate != nil {
			return bank.ErrUnexpectedEndDate
		}
	default:
		return bank.ErrInvalidPeriodType
	}

	return nil
}

type CardType string

const (
	CardTypeDebit  CardType = "debito"
	CardTypeCredit CardType = "credito"
)

type Card struct {
	ID         string    `json:"id"`
	BankID     string    `json:"bank_id"`
	Type       CardType  `json:"type"`
	ExpiryDate time.Time `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Card) Validate() error {
	if c.Type != CardTypeDebit && c.Type != CardTypeCredit {
		return bank.ErrInvalidCardType
	}

	if c.ExpiryDate.IsZero() {
		return bank.ErrInvalidDate
	}

	return nil
}
