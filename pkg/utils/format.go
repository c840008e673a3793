package utils

import (
	"fmt"
	"math"

	"indicomp/internal/models"
)

// NotAvailable is rendered for missing values.
const NotAvailable = "N/A"

// FormatNumber renders a number with a T/B/M/K suffix. Values below one keep
// three decimals.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}

	abs := math.Abs(v)

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%.1fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	case abs >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

// FormatValue renders an observed value, N/A when missing.
func FormatValue(v models.Value) string {
	if !v.Valid {
		return NotAvailable
	}

	return FormatNumber(v.Number)
}

// FormatPercentage renders v with the given number of decimals and a % sign.
func FormatPercentage(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}

	return fmt.Sprintf("%.*f%%", decimals, v)
}

// FormatCurrency renders v with FormatNumber followed by the currency code.
func FormatCurrency(v float64, currency string) string {
	formatted := FormatNumber(v)
	if formatted == NotAvailable {
		return NotAvailable
	}

	return formatted + " " + currency
}
