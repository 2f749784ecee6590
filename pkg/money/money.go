package money

import (
	"math"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Round normalizes an amount to two decimal places, rounding half away
// from zero. Every derived total in the SDK passes through this before
// comparison or display.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Format renders an amount with the rupee symbol and Indian digit grouping.
func Format(amount float64) string {
	return printer.Sprintf("%v", currency.NarrowSymbol(currency.INR.Amount(Round(amount))))
}

// String renders an amount as a plain two-decimal string without currency
// markup, e.g. "200.00". Useful for logs and tests.
func String(amount float64) string {
	return strconv.FormatFloat(Round(amount), 'f', 2, 64)
}
