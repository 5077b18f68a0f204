package report

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var brl = accounting.Accounting{
	Symbol:         "R$ ",
	Precision:      2,
	Thousand:       ".",
	Decimal:        ",",
	FormatNegative: "-%s%v",
}

// FormatBRL renders an amount as Brazilian reais, e.g. "R$ 1.234,56".
func FormatBRL(amount float64) string {
	return brl.FormatMoneyDecimal(decimal.NewFromFloat(amount).Round(2))
}

func FormatPercent(pct float64) string {
	return accounting.FormatNumberDecimal(decimal.NewFromFloat(pct).Round(1), 1, ".", ",") + "%"
}
