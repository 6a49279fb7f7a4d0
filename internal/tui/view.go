package tui

import (
	"fmt"
	"strings"

	"vaultview/internal/cli"
	"vaultview/internal/sim"
	"vaultview/internal/tui/components"
	"vaultview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  vaultview needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(msg, a.height)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height
	snap := a.snap
	currency := a.cfg.Display.Currency

	// 1. Header
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	header := " " + titleStyle.Render("◈ vaultview") +
		subtitleStyle.Render(" · Portfolio Growth")

	// 2. Metric cards
	metrics := []components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(snap.Balance, currency), Sub: cli.FormatWeeks(snap.Weeks)},
		{Label: "Profit", Value: cli.FormatSignedMoney(snap.Profit, currency), Sub: cli.FormatPercent(snap.Growth) + " total"},
		{Label: "Next Rate", Value: cli.FormatRate(snap.NextRate), Sub: "weekly"},
	}
	cards := components.MetricCardRow(metrics, cw)

	// 3. Schedule card: next update + window progress
	scheduleBody := a.renderScheduleBody(cw)
	schedule := components.ContentCard("Weekly Update", scheduleBody, cw)

	// 4. Status bar
	statusBar := components.RenderStatusBar(w, a.poll.Phase.String(), a.clock.Format("15:04:05"))

	content := lipgloss.JoinVertical(lipgloss.Left, cards, schedule)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) renderScheduleBody(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	innerW := components.CardInnerWidth(cw)

	var b strings.Builder
	switch a.poll.Phase {
	case sim.PhaseBeforeWindow:
		b.WriteString(labelStyle.Render("First update "))
		b.WriteString(valueStyle.Render(cli.FormatTimestamp(a.poll.NextUpdate)))
	case sim.PhaseAfterWindow:
		b.WriteString(labelStyle.Render("Simulation period completed"))
	default:
		b.WriteString(labelStyle.Render("Next update  "))
		b.WriteString(valueStyle.Render(cli.FormatTimestamp(a.poll.NextUpdate)))
	}
	b.WriteString("\n")

	barW := innerW - 28
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ScheduleBar("Period", a.poll.Progress/100, a.poll.NextUpdate, a.clock, 6, barW))

	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"r", "Poll now"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-4s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
