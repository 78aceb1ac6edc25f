package rental

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are displayed the Swedish way: space-grouped thousands, no
// decimals for whole amounts ("1 500 kr").
var svPrinter = message.NewPrinter(language.Swedish)

// FormatPrice renders a currency amount with sv-SE digit grouping.
// NaN and infinities are treated as 0 so a missing upstream price never
// breaks rendering.
func FormatPrice(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return svPrinter.Sprintf("%d", int64(math.Round(value)))
}
