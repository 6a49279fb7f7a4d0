package tui

import (
	"io"
	"testing"
	"time"

	"vaultview/internal/sim"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetOutput(io.Discard)
}

func testTracker() *sim.Tracker {
	return sim.NewTracker(sim.Options{
		SeedCapital:      decimal.NewFromFloat(5000.00),
		BootstrapBalance: decimal.NewFromFloat(5320.54),
		BootstrapWeeks:   1,
		Schedule: sim.Schedule{
			Start:   time.Date(2026, 1, 9, 9, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC),
			Loc:     time.UTC,
			Weekday: time.Friday,
			Hour:    9,
		},
		Rates: sim.UniformRate{Min: 0.01, Max: 0.01},
	})
}

func TestTickRunsPollAtCadence(t *testing.T) {
	tr := testTracker()
	tr.Bootstrap()

	a := App{tracker: tr, pollEvery: 2}
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)

	model, _ := a.Update(tickMsg(now))
	a = model.(App)
	if !a.snap.Balance.IsZero() {
		t.Fatal("poll ran before the cadence elapsed")
	}

	model, _ = a.Update(tickMsg(now.Add(time.Second)))
	a = model.(App)
	if a.snap.Balance.IsZero() {
		t.Fatal("poll did not run once the cadence elapsed")
	}
	if a.sinceLast != 0 {
		t.Fatalf("tick counter = %d, want reset to 0", a.sinceLast)
	}
	if a.poll.Phase != sim.PhaseActiveWindow {
		t.Fatalf("phase = %v, want PhaseActiveWindow", a.poll.Phase)
	}
}

func TestRunPollRecoversAndKeepsState(t *testing.T) {
	tr := testTracker()
	tr.Bootstrap()

	a := App{tracker: tr, pollEvery: 1}
	good := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	a.runPoll(good)

	before := a.snap
	beforePoll := a.poll

	// A nil schedule location makes every time normalization panic; the
	// recover at the poll boundary must keep the previous display state.
	a.tracker = sim.NewTracker(sim.Options{
		Schedule: sim.Schedule{},
		Rates:    sim.UniformRate{},
	})
	a.runPoll(good)

	if !a.snap.Balance.Equal(before.Balance) {
		t.Fatalf("balance changed across a failed poll: %s -> %s", before.Balance, a.snap.Balance)
	}
	if a.poll != beforePoll {
		t.Fatal("poll result changed across a failed poll")
	}
}
