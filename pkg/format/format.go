// Package format provides display formatting for dashboard figures.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

var printer = message.NewPrinter(language.English)

// Percent returns a percentage string at one decimal (e.g., "6.9%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// SignedPercent returns a percentage string with an explicit sign on positive
// values (e.g., "+9.5%", "-1.0%"). Zero renders unsigned.
func SignedPercent(value float64) string {
	if value > 0 {
		return fmt.Sprintf("+%.1f%%", value)
	}
	return fmt.Sprintf("%.1f%%", value)
}

// Level returns a projected index level in compact thousands form
// (e.g., 56706.25 renders as "56.7K").
func Level(value float64) string {
	return fmt.Sprintf("%.1fK", value/constants.LevelDisplayScale)
}

// Grouped returns a whole-number string with thousands separators (e.g., "23,500").
func Grouped(value float64) string {
	return printer.Sprintf("%.0f", math.Round(value))
}

// Rupees returns an EPS figure with the currency sign and separators (e.g., "₹2,268").
func Rupees(value float64) string {
	formatted := printer.Sprintf("%.0f", math.Abs(math.Round(value)))
	if value < 0 {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// Multiple returns a valuation multiple string (e.g., "24.5x").
func Multiple(value float64) string {
	return fmt.Sprintf("%.1fx", value)
}
