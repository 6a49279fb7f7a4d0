package sim

import "time"

const dayKeyFormat = "2006-01-02"

// Phase describes where the wall clock sits relative to the active window.
// Transitions are monotone: BeforeWindow -> ActiveWindow -> AfterWindow.
type Phase int

const (
	PhaseBeforeWindow Phase = iota
	PhaseActiveWindow
	PhaseAfterWindow
)

func (p Phase) String() string {
	switch p {
	case PhaseBeforeWindow:
		return "before window"
	case PhaseActiveWindow:
		return "active"
	case PhaseAfterWindow:
		return "completed"
	}
	return "unknown"
}

// Schedule holds the fixed simulation window and the weekly trigger target.
// All comparisons normalize to Loc first.
type Schedule struct {
	Start   time.Time
	End     time.Time
	Loc     *time.Location
	Weekday time.Weekday
	Hour    int
	Minute  int
}

// PhaseAt returns the window phase for the given instant.
func (s Schedule) PhaseAt(now time.Time) Phase {
	now = now.In(s.Loc)
	switch {
	case now.Before(s.Start):
		return PhaseBeforeWindow
	case now.After(s.End):
		return PhaseAfterWindow
	}
	return PhaseActiveWindow
}

// Progress returns the elapsed fraction of the window as a percentage,
// clamped to [0, 100].
func (s Schedule) Progress(now time.Time) float64 {
	total := s.End.Sub(s.Start)
	if total <= 0 {
		return 100
	}
	pct := float64(now.In(s.Loc).Sub(s.Start)) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// NextOccurrence returns the next instant matching the target weekday and
// time-of-day. A same-day match maps to seven days ahead so the result
// always advances.
func (s Schedule) NextOccurrence(now time.Time) time.Time {
	now = now.In(s.Loc)
	days := (7 - int(now.Weekday()) + int(s.Weekday)) % 7
	if days == 0 {
		days = 7
	}
	next := now.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), s.Hour, s.Minute, 0, 0, s.Loc)
}

// WeeksSince returns the one-based count of whole calendar weeks elapsed
// since the window start, or zero before the window opens. Weeks are counted
// in calendar days of the reference zone, not fixed 168h spans, so a DST
// transition cannot shift a week boundary.
func (s Schedule) WeeksSince(now time.Time) int {
	now = now.In(s.Loc)
	if now.Before(s.Start) {
		return 0
	}
	return (epochDays(now)-epochDays(s.Start.In(s.Loc)))/7 + 1
}

// epochDays returns the calendar day number of t in its own location.
func epochDays(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// DayKey identifies the calendar day of an instant in the reference zone.
func (s Schedule) DayKey(now time.Time) string {
	return now.In(s.Loc).Format(dayKeyFormat)
}

// TriggerKey reports whether the weekly update should fire at the given
// instant: target weekday, hour and minute must all match, the instant must
// fall inside the window, and the day key must differ from the last applied
// one. On a hit it returns the new day key to record.
func (s Schedule) TriggerKey(now time.Time, lastKey string) (string, bool) {
	now = now.In(s.Loc)
	if now.Before(s.Start) || now.After(s.End) {
		return "", false
	}
	if now.Weekday() != s.Weekday || now.Hour() != s.Hour || now.Minute() != s.Minute {
		return "", false
	}
	key := now.Format(dayKeyFormat)
	if key == lastKey {
		return "", false
	}
	return key, true
}
