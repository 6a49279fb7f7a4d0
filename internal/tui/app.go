// Package tui provides the full-screen Bubble Tea dashboard for vaultview.
package tui

import (
	"time"

	"vaultview/internal/config"
	"vaultview/internal/sim"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// App is the root Bubble Tea model. It owns the simulation state container
// and drives it from the tick loop; nothing else mutates the tracker.
type App struct {
	tracker *sim.Tracker
	cfg     config.Config

	// Last poll outputs, re-rendered every frame
	snap sim.Snapshot
	poll sim.PollResult

	// Poll cadence: ticks arrive every second, the poller runs when
	// sinceLast reaches pollEvery.
	pollEvery int
	sinceLast int
	clock     time.Time

	// UI state
	width    int
	height   int
	showHelp bool

	// First-run setup (huh form)
	setupForm *setupForm
	needSetup bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 100
	minContentHeight = 5
)

// NewApp creates the dashboard model, applies the forced first update, and
// runs an initial poll so the first frame has data.
func NewApp(cfg config.Config, tracker *sim.Tracker) App {
	tracker.Bootstrap()

	pollEvery := int(cfg.Schedule.PollInterval() / time.Second)

	a := App{
		tracker:   tracker,
		cfg:       cfg,
		pollEvery: pollEvery,
		clock:     time.Now(),
		needSetup: !config.Exists(),
	}
	a.runPoll(a.clock)

	if a.needSetup {
		a.setupForm = newSetupForm(&a.cfg)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm.Resize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetup(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			// Manual poll, same gated path as the timer
			a.runPoll(time.Now())
			return a, nil
		}
		return a, nil

	case tickMsg:
		a.clock = time.Time(msg)
		a.sinceLast++
		if a.sinceLast >= a.pollEvery {
			a.sinceLast = 0
			a.runPoll(a.clock)
		}
		return a, tickCmd()
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetup(msg)
	}

	return a, nil
}

// runPoll executes one poll cycle at the given instant. Any panic is caught
// here at the poll boundary and logged; the previously displayed state then
// stands until the next regular tick.
func (a *App) runPoll(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("poll cycle failed, keeping previous state")
		}
	}()

	res := a.tracker.Poll(now)
	snap := a.tracker.Snapshot()

	if res.Triggered {
		logrus.WithFields(logrus.Fields{
			"balance": snap.Balance.String(),
			"weeks":   snap.Weeks,
			"day_key": snap.LastUpdateKey,
		}).Info("weekly update applied")
	}

	a.poll = res
	a.snap = snap
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
