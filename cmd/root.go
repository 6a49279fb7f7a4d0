// Package cmd implements the vaultview CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"vaultview/internal/config"
	"vaultview/internal/sim"
	"vaultview/internal/tui"
	"vaultview/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagPollSec int

var rootCmd = &cobra.Command{
	Use:   "vaultview",
	Short: "Simulated investment balance dashboard",
	Long:  "A presentation widget showing a steadily growing investment balance with scheduled weekly updates.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagPollSec, "poll", 0, "Poll interval in seconds (overrides config)")
}

// setupLogging routes logrus to a file so diagnostics never write to the
// terminal the dashboard is drawing on.
func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(config.LogPath(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(f)
}

// loadConfig applies flag overrides on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagPollSec > 0 {
		cfg.Schedule.PollIntervalSec = flagPollSec
	}
	return cfg, nil
}

// buildTracker assembles the simulation state container from config.
func buildTracker(cfg config.Config) (*sim.Tracker, error) {
	start, end, loc, err := cfg.Schedule.Window()
	if err != nil {
		return nil, err
	}

	sched := sim.Schedule{
		Start:   start,
		End:     end,
		Loc:     loc,
		Weekday: time.Weekday(cfg.Schedule.TargetWeekday),
		Hour:    cfg.Schedule.TargetHour,
		Minute:  cfg.Schedule.TargetMinute,
	}

	return sim.NewTracker(sim.Options{
		SeedCapital:      decimal.NewFromFloat(cfg.Simulation.SeedCapital),
		BootstrapBalance: decimal.NewFromFloat(cfg.Simulation.BootstrapBalance),
		BootstrapWeeks:   cfg.Simulation.BootstrapWeeks,
		Schedule:         sched,
		Rates:            sim.NewUniformRate(cfg.Simulation.MinWeeklyRate, cfg.Simulation.MaxWeeklyRate),
	}), nil
}

func runDashboard(_ *cobra.Command, _ []string) error {
	setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Display.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	tracker, err := buildTracker(cfg)
	if err != nil {
		return err
	}

	app := tui.NewApp(cfg, tracker)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}
