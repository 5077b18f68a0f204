package finance

import (
	"mordomia/pkg/response"
	"net/http"
)

var (
	ErrTransactionNotFound    = response.NewError(http.StatusNotFound, "transaction not found")
	ErrTransactionNotOwned    = response.NewError(http.StatusForbidden, "transaction does not belong to user")
	ErrInvalidTransactionType = response.NewError(http.StatusBadRequest, "invalid transaction type")
	ErrInvalidPaymentType     = response.NewError(http.StatusBadRequest, "invalid payment type")
	ErrInvalidAmount          = response.NewError(http.StatusBadRequest, "amount must be greater than zero")
	ErrInvalidCategory        = response.NewError(http.StatusBadRequest, "category is required")
	ErrInvalidDate            = response.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth           = response.NewError(http.StatusBadRequest, "invalid month, expected YYYY-MM")
	ErrInvalidDestinationBank = response.NewError(http.StatusBadRequest, "destination bank does not belong to user")
	ErrCreateTransaction      = response.NewError(http.StatusInternalServerError, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(http.StatusInternalServerError, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(http.StatusInternalServerError, "failed to delete transaction")

	ErrExpenseNotFound     = response.NewError(http.StatusNotFound, "expense not found")
	ErrExpenseNotOwned     = response.NewError(http.StatusForbidden, "expense does not belong to user")
	ErrInvalidExpenseName  = response.NewError(http.StatusBadRequest, "expense name is required")
	ErrInvalidStatus       = response.NewError(http.StatusBadRequest, "invalid expense status")
	ErrInvalidBillingType  = response.NewError(http.StatusBadRequest, "invalid billing type")
	ErrInvalidBillingDay   = response.NewError(http.StatusBadRequest, "billing day must be between 1 and 31")
	ErrInvalidBillingMonth = response.NewError(http.StatusBadRequest, "billing month must be between 1 and 12")
	ErrCreateExpense       = response.NewError(http.StatusInternalServerError, "failed to create expense")
	ErrUpdateExpense       = response.NewError(http.StatusInternalServerError, "failed to update expense")
	ErrDeleteExpense       = response.NewError(http.StatusInternalServerError, "failed to delete expense")

	ErrTithingNotFound    = response.NewError(http.StatusNotFound, "tithing record not found")
	ErrTithingNotOwned    = response.NewError(http.StatusForbidden, "tithing record does not belong to user")
	ErrInvalidTithingType = response.NewError(http.StatusBadRequest, "invalid tithing type")
	ErrInvalidChurch      = response.NewError(http.StatusBadRequest, "church is required")
	ErrCreateTithing      = response.NewError(http.StatusInternalServerError, "failed to create tithing record")
	ErrUpdateTithing      = response.NewError(http.StatusInternalServerError, "failed to update tithing record")
	ErrDeleteTithing      = response.NewError(http.StatusInternalServerError, "failed to delete tithing record")
)
