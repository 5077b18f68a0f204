package bank

import (
	"mordomia/pkg/response"
	"net/http"
)

var (
	ErrBankNotFound    = response.NewError(http.StatusNotFound, "bank not found")
	ErrBankNotOwned    = response.NewError(http.StatusForbidden, "bank does not belong to user")
	ErrInvalidBankName = response.NewError(http.StatusBadRequest, "bank name is required")
	ErrCreateBank      = response.NewError(http.StatusInternalServerError, "failed to create bank")
	ErrUpdateBank      = response.NewError(http.StatusInternalServerError, "failed to update bank")
	ErrDeleteBank      = response.NewError(http.StatusInternalServerError, "failed to delete bank")

	ErrBalanceNotFound = response.NewError(http.StatusNotFound, "no balance recorded for bank")
	ErrCreateBalance   = response.NewError(http.StatusInternalServerError, "failed to record balance")
	ErrInvalidDate     = response.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidAmount   = response.NewError(http.StatusBadRequest, "amount must not be negative")

	ErrInvestmentNotFound = response.NewError(http.StatusNotFound, "investment not found")
	ErrInvalidInvestment  = response.NewError(http.StatusBadRequest, "investment type is required")
	ErrInvalidPeriodType  = response.NewError(http.StatusBadRequest, "invalid investment period type")
	ErrInvalidEndDate     = response.NewError(http.StatusBadRequest, "end date must be set for periodic investments and not before start date")
	ErrUnexpectedEndDate  = response.NewError(http.StatusBadRequest, "permanent investments cannot have an end date")
	ErrCreateInvestment   = response.NewError(http.StatusInternalServerError, "failed to create investment")
	ErrUpdateInvestment   = response.NewError(http.StatusInternalServerError, "failed to update investment")
	ErrDeleteInvestment   = response.NewError(http.StatusInternalServerError, "failed to delete investment")

	ErrCardNotFound    = response.NewError(http.StatusNotFound, "card not found")
	ErrInvalidCardType = response.NewError(http.StatusBadRequest, "invalid card type")
	ErrCreateCard      = response.NewError(http.StatusInternalServerError, "failed to create card")
	ErrUpdateCard      = response.NewError(http.StatusInternalServerError, "failed to update card")
	ErrDeleteCard      = response.NewError(http.StatusInternalServerError, "failed to delete card")
)
