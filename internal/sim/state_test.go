package sim

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// stubRates yields a fixed sequence of rates, cycling when exhausted.
type stubRates struct {
	rates []float64
	i     int
}

func (s *stubRates) Next() float64 {
	r := s.rates[s.i%len(s.rates)]
	s.i++
	return r
}

func newTestTracker(rates ...float64) *Tracker {
	return NewTracker(Options{
		SeedCapital:      decimal.NewFromFloat(5000.00),
		BootstrapBalance: decimal.NewFromFloat(5320.54),
		BootstrapWeeks:   1,
		Schedule:         testSchedule(),
		Rates:            &stubRates{rates: rates},
	})
}

func mustEqual(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("balance = %s, want %s", got, want)
	}
}

func TestBootstrapAppliesForcedFirstUpdate(t *testing.T) {
	tr := newTestTracker(0.02)
	tr.Bootstrap()

	snap := tr.Snapshot()
	mustEqual(t, snap.Balance, "5320.54")
	if snap.Weeks != 1 {
		t.Fatalf("weeks = %d, want 1", snap.Weeks)
	}
	if snap.NextRate != 0.02 {
		t.Fatalf("next rate = %v, want 0.02", snap.NextRate)
	}
	mustEqual(t, snap.Profit, "320.54")
}

func TestPollTriggersExactlyOncePerDay(t *testing.T) {
	tr := newTestTracker(0.02, 0.01)
	tr.Bootstrap()

	// One week into the window, at the exact target weekday/hour/minute
	at := tr.Schedule().Start.AddDate(0, 0, 7)

	res := tr.Poll(at)
	if !res.Triggered {
		t.Fatal("expected the weekly trigger to fire")
	}

	snap := tr.Snapshot()
	mustEqual(t, snap.Balance, "5426.95") // 5320.54 * 1.02, rounded
	if snap.Weeks != 2 {
		t.Fatalf("weeks = %d, want 2", snap.Weeks)
	}
	if snap.LastUpdateKey != "2026-01-16" {
		t.Fatalf("last update key = %q, want 2026-01-16", snap.LastUpdateKey)
	}

	// Second poll at the same instant must not re-trigger
	res = tr.Poll(at)
	if res.Triggered {
		t.Fatal("trigger fired twice for the same day key")
	}
	mustEqual(t, tr.Snapshot().Balance, "5426.95")
}

func TestCompoundingRoundsEachStep(t *testing.T) {
	tr := NewTracker(Options{
		SeedCapital:      decimal.NewFromFloat(1000.00),
		BootstrapBalance: decimal.NewFromFloat(1000.00),
		BootstrapWeeks:   0,
		Schedule:         testSchedule(),
		Rates:            &stubRates{rates: []float64{0.01, 0.02, 0.005, 0.022}},
	})
	tr.Bootstrap()

	// Rounding happens after every step, not once at the end:
	// 1000.00 * 1.01  = 1010.00
	// 1010.00 * 1.02  = 1030.20
	// 1030.20 * 1.005 = 1035.351 -> 1035.35
	// 1035.35 * 1.022 = 1058.1277 -> 1058.13
	steps := []string{"1010.00", "1030.20", "1035.35", "1058.13"}
	for i, want := range steps {
		tr.applyUpdate(i + 1)
		mustEqual(t, tr.Snapshot().Balance, want)
	}

	snap := tr.Snapshot()
	if snap.Weeks != 4 {
		t.Fatalf("weeks = %d, want 4", snap.Weeks)
	}
	mustEqual(t, snap.Profit, "58.13")
}

func TestApplyUpdateIgnoresStaleWeekCounts(t *testing.T) {
	tr := newTestTracker(0.02)
	tr.Bootstrap()

	tr.applyUpdate(1) // not beyond the recorded count
	tr.applyUpdate(0)
	mustEqual(t, tr.Snapshot().Balance, "5320.54")
}

func TestSuspensionConflatesMissedWeeksIntoOneStep(t *testing.T) {
	tr := newTestTracker(0.02, 0.01)
	tr.Bootstrap()

	// Three weeks without a poll: the counter jumps forward but only a
	// single compounding step is applied.
	at := tr.Schedule().Start.AddDate(0, 0, 21)
	res := tr.Poll(at)
	if !res.Triggered {
		t.Fatal("expected trigger after suspension")
	}

	snap := tr.Snapshot()
	if snap.Weeks != 4 {
		t.Fatalf("weeks = %d, want 4", snap.Weeks)
	}
	mustEqual(t, snap.Balance, "5426.95") // exactly one 2% step
}

func TestWeeklyCompoundingAcrossDSTTransitions(t *testing.T) {
	sched := berlinSchedule(t)
	tr := NewTracker(Options{
		SeedCapital:      decimal.NewFromFloat(5000.00),
		BootstrapBalance: decimal.NewFromFloat(5320.54),
		BootstrapWeeks:   1,
		Schedule:         sched,
		Rates:            &stubRates{rates: []float64{0.02}},
	})
	tr.Bootstrap()

	factor := decimal.NewFromFloat(1.02)
	prev := tr.Snapshot()
	for at := sched.Start.AddDate(0, 0, 7); !at.After(sched.End); at = at.AddDate(0, 0, 7) {
		res := tr.Poll(at)
		if !res.Triggered {
			t.Fatalf("no trigger at %s", at)
		}

		snap := tr.Snapshot()
		if snap.Weeks != prev.Weeks+1 {
			t.Fatalf("week count at %s jumped %d -> %d, want +1", at, prev.Weeks, snap.Weeks)
		}
		want := prev.Balance.Mul(factor).Round(2)
		if !snap.Balance.Equal(want) {
			t.Fatalf("balance at %s = %s, want %s (week %d did not compound)",
				at, snap.Balance, want, snap.Weeks)
		}
		prev = snap
	}

	if prev.Weeks < 50 {
		t.Fatalf("walked only %d weeks, fixture window too short", prev.Weeks)
	}
}

func TestPollBeforeWindow(t *testing.T) {
	tr := newTestTracker(0.02)
	tr.Bootstrap()
	sched := tr.Schedule()

	res := tr.Poll(sched.Start.AddDate(0, 0, -3))
	if res.Phase != PhaseBeforeWindow {
		t.Fatalf("phase = %v, want PhaseBeforeWindow", res.Phase)
	}
	if res.Progress != 0 {
		t.Fatalf("progress = %.2f, want 0", res.Progress)
	}
	if !res.NextUpdate.Equal(sched.Start) {
		t.Fatalf("next update = %s, want window start %s", res.NextUpdate, sched.Start)
	}
	if res.Triggered {
		t.Fatal("trigger fired before the window opened")
	}
}

func TestPollAfterWindow(t *testing.T) {
	tr := newTestTracker(0.02)
	tr.Bootstrap()

	// A Friday 09:00 past the window end
	at := time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC)
	if at.Weekday() != time.Friday {
		t.Fatal("test fixture is not a Friday")
	}

	res := tr.Poll(at)
	if res.Phase != PhaseAfterWindow {
		t.Fatalf("phase = %v, want PhaseAfterWindow", res.Phase)
	}
	if res.Progress != 100 {
		t.Fatalf("progress = %.2f, want 100", res.Progress)
	}
	if !res.NextUpdate.IsZero() {
		t.Fatalf("next update = %s, want zero after window end", res.NextUpdate)
	}
	if res.Triggered {
		t.Fatal("balance update fired after the window closed")
	}
	mustEqual(t, tr.Snapshot().Balance, "5320.54")
}

func TestSnapshotProfitAndGrowth(t *testing.T) {
	tr := newTestTracker(0.02)
	tr.Bootstrap()

	snap := tr.Snapshot()
	if !snap.Profit.Equal(snap.Balance.Sub(snap.Seed)) {
		t.Fatalf("profit %s != balance %s - seed %s", snap.Profit, snap.Balance, snap.Seed)
	}

	// (5320.54 - 5000) / 5000 * 100 = 6.4108
	if snap.Growth < 6.41 || snap.Growth > 6.42 {
		t.Fatalf("growth = %.4f, want ~6.4108", snap.Growth)
	}
}

func TestUniformRateStaysInBounds(t *testing.T) {
	src := NewUniformRate(0.005, 0.022)
	for i := 0; i < 1000; i++ {
		r := src.Next()
		if r < 0.005 || r > 0.022 {
			t.Fatalf("rate %v outside [0.005, 0.022]", r)
		}
	}
}
