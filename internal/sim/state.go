// Package sim implements the simulated investment balance: a state container
// mutated only through named transitions (Bootstrap, Poll) and the pure
// schedule math that drives them.
package sim

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a read-only copy of the current simulation state.
type Snapshot struct {
	Seed          decimal.Decimal
	Balance       decimal.Decimal
	Profit        decimal.Decimal // Balance - Seed, exact
	Growth        float64         // percent of seed capital
	Weeks         int
	NextRate      float64 // fraction for the next compounding step
	LastUpdateKey string  // calendar day of the last applied update, "" if none
}

// PollResult carries the scheduling outputs of a single poll cycle.
type PollResult struct {
	Phase      Phase
	Progress   float64   // 0..100
	NextUpdate time.Time // zero once the window has closed
	Triggered  bool      // the weekly trigger condition was met this cycle
}

// Options configures a Tracker.
type Options struct {
	SeedCapital      decimal.Decimal
	BootstrapBalance decimal.Decimal
	BootstrapWeeks   int
	Schedule         Schedule
	Rates            RateSource
}

// Tracker owns the mutable simulation state for the lifetime of the view.
// It is not safe for concurrent use; the dashboard drives it from a single
// update loop.
type Tracker struct {
	seed             decimal.Decimal
	balance          decimal.Decimal
	weeks            int
	nextRate         float64
	lastKey          string
	bootstrapBalance decimal.Decimal
	bootstrapWeeks   int
	schedule         Schedule
	rates            RateSource
}

// NewTracker creates a Tracker showing the bare seed capital. Call Bootstrap
// before first render to apply the forced first update.
func NewTracker(opts Options) *Tracker {
	return &Tracker{
		seed:             opts.SeedCapital,
		balance:          opts.SeedCapital,
		bootstrapBalance: opts.BootstrapBalance,
		bootstrapWeeks:   opts.BootstrapWeeks,
		schedule:         opts.Schedule,
		rates:            opts.Rates,
	}
}

// Bootstrap applies the forced first update: the fixed bootstrap balance and
// week count, plus the first random rate draw. Safe to call once on mount.
func (t *Tracker) Bootstrap() {
	t.balance = t.bootstrapBalance
	t.weeks = t.bootstrapWeeks
	t.nextRate = t.rates.Next()
}

// Poll runs one clock-poller cycle for the given instant: it derives the
// window phase, progress and next-update timestamp, and fires the update
// engine when the trigger condition is met, recording the day key so the
// same calendar day cannot fire twice.
func (t *Tracker) Poll(now time.Time) PollResult {
	res := PollResult{
		Phase:    t.schedule.PhaseAt(now),
		Progress: t.schedule.Progress(now),
	}

	switch res.Phase {
	case PhaseBeforeWindow:
		res.NextUpdate = t.schedule.Start
	case PhaseAfterWindow:
		// Terminal state: no further scheduling action.
	default:
		res.NextUpdate = t.schedule.NextOccurrence(now)
		if key, ok := t.schedule.TriggerKey(now, t.lastKey); ok {
			t.applyUpdate(t.schedule.WeeksSince(now))
			t.lastKey = key
			res.Triggered = true
		}
	}

	return res
}

// applyUpdate is the update engine: if the wall-clock-derived week count
// exceeds the recorded one, compound the balance by the pending rate exactly
// once, adopt the new week count (which may jump by more than one after a
// suspension), and redraw the rate for the following week.
func (t *Tracker) applyUpdate(weeks int) {
	if weeks <= t.weeks {
		return
	}
	factor := decimal.NewFromFloat(1 + t.nextRate)
	t.balance = t.balance.Mul(factor).Round(2)
	t.weeks = weeks
	t.nextRate = t.rates.Next()
}

// Snapshot returns a copy of the current state for rendering.
func (t *Tracker) Snapshot() Snapshot {
	profit := t.balance.Sub(t.seed)
	growth := 0.0
	if !t.seed.IsZero() {
		growth = profit.Div(t.seed).InexactFloat64() * 100
	}
	return Snapshot{
		Seed:          t.seed,
		Balance:       t.balance,
		Profit:        profit,
		Growth:        growth,
		Weeks:         t.weeks,
		NextRate:      t.nextRate,
		LastUpdateKey: t.lastKey,
	}
}

// Schedule returns the fixed schedule the tracker was built with.
func (t *Tracker) Schedule() Schedule {
	return t.schedule
}
