package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var ac = accounting.Accounting{Symbol: "$", Precision: 2}

// Price renders a decimal amount for templates and flash messages.
func Price(amount decimal.Decimal) string {
	return ac.FormatMoney(amount)
}
