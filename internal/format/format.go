// Package format holds display formatting helpers shared by the TUI and the
// one-shot status command.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Currency renders a USD amount with two decimals.
func Currency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Number renders a count with thousands separators.
func Number(value float64) string {
	return humanize.Comma(int64(math.Round(value)))
}

// Percent renders a percentage with one decimal.
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// MonthName returns the English month name for 1-12, "Unknown" otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return time.Month(month).String()
}

// Truncate shortens a string to maxLen runes, ellipsis included.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
