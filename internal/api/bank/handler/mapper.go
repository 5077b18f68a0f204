package bankHandler

import (
	"mordomia/internal/api/bank"
	"mordomia/internal/entity"
	"time"
)

func toBankResponse(b entity.Bank, latest *float64) bank.BankResponse {
	return bank.BankResponse{
		ID:              b.ID,
		Name:            b.Name,
		Agency:          b.Agency,
		AccountHolder:   b.AccountHolder,
		InvestmentsInfo: b.InvestmentsInfo,
		LatestBalance:   latest,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func toBalanceResponse(b entity.AccountBalance) bank.BalanceResponse {
	return bank.BalanceResponse{
		ID:        b.ID,
		BankID:    b.BankID,
		Balance:   b.Balance,
		Date:      entity.FormatDate(b.Date),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func toInvestmentResponse(i entity.Investment) bank.InvestmentResponse {
	return bank.InvestmentResponse{
		ID:           i.ID,
		BankID:       i.BankID,
		Type:         i.Type,
		InitialValue: i.InitialValue,
		FinalValue:   i.FinalValue,
		PeriodType:   string(i.PeriodType),
		StartDate:    entity.FormatDate(i.StartDate),
		EndDate:      entity.FormatOptionalDate(i.EndDate),
		CreatedAt:    i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    i.UpdatedAt.Format(time.RFC3339),
	}
}

func toCardResponse(c entity.Card) bank.CardResponse {
	return bank.CardResponse{
		ID:         c.ID,
		BankID:     c.BankID,
		Type:       string(c.Type),
		ExpiryDate: entity.FormatDate(c.ExpiryDate),
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}
