package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// displayFormat: тысячи через пробел, без дробной части ("12 500").
const displayFormat = "# ###."

// Format округляет сумму до целых и группирует разряды пробелом.
func Format(amount decimal.Decimal) string {
	return humanize.FormatInteger(displayFormat, int(amount.Round(0).IntPart()))
}
