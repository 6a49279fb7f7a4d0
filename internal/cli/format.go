// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const fallbackCurrency = money.EUR

// FormatMoney formats a decimal amount in the given ISO currency.
// e.g., 5320.54 EUR -> "€5,320.54"
func FormatMoney(v decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(fallbackCurrency)
	}
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).IntPart())
}

// FormatSignedMoney is FormatMoney with an explicit leading sign for
// non-negative amounts, used for profit display.
func FormatSignedMoney(v decimal.Decimal, code string) string {
	if v.IsNegative() {
		return FormatMoney(v, code)
	}
	return "+" + FormatMoney(v, code)
}

// FormatPercent formats a percent-valued float with one decimal.
// e.g., 6.4 -> "6.4%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRate formats a fractional rate as a percentage with one decimal.
// e.g., 0.013 -> "1.3%"
func FormatRate(rate float64) string {
	return FormatPercent(rate * 100)
}

// FormatProgress formats a 0-100 progress value for bar labels.
func FormatProgress(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatWeeks renders a pluralized week count label.
func FormatWeeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

// FormatTimestamp renders a schedule instant for display.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("Mon, 02 Jan 2006 15:04")
}

// FormatCountdown formats the remaining duration until an instant.
// e.g., 49h30m -> "2d 1h", 90m -> "1h 30m", 5m -> "5m"
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h >= 24 {
		return fmt.Sprintf("%dd %dh", h/24, h%24)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
