package cli

import (
	"fmt"
	"strings"
	"time"

	"vaultview/internal/sim"
)

const plainBarWidth = 32

// RenderStatus renders a one-shot plain-text snapshot of the simulation,
// the non-TUI counterpart of the dashboard view.
func RenderStatus(snap sim.Snapshot, res sim.PollResult, now time.Time, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  Balance:      %s\n", FormatMoney(snap.Balance, currency))
	fmt.Fprintf(&b, "  Profit:       %s (%s)\n",
		FormatSignedMoney(snap.Profit, currency),
		FormatPercent(snap.Growth))
	fmt.Fprintf(&b, "  Invested:     %s\n", FormatWeeks(snap.Weeks))
	fmt.Fprintf(&b, "  Next rate:    %s\n", FormatRate(snap.NextRate))
	b.WriteString("\n")

	fmt.Fprintf(&b, "  Status:       %s\n", res.Phase)
	if !res.NextUpdate.IsZero() {
		fmt.Fprintf(&b, "  Next update:  %s (in %s)\n",
			FormatTimestamp(res.NextUpdate),
			FormatCountdown(res.NextUpdate.Sub(now)))
	}
	fmt.Fprintf(&b, "  Progress:     %s %s\n", plainBar(res.Progress, plainBarWidth), FormatProgress(res.Progress))

	return b.String()
}

// plainBar renders an ASCII progress bar for non-TUI output.
func plainBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
