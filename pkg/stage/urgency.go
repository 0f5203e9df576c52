package stage

import (
	"time"

	"plantlog/entities"
)

type StatusKind string

const (
	StatusOverdue     StatusKind = "overdue"
	StatusAnytimeSoon StatusKind = "anytime_soon"
	StatusRemaining   StatusKind = "remaining"
	StatusCompleted   StatusKind = "completed"
)

// Status is the classified temporal state of a stage relative to a reference
// date. Days is meaningful only for StatusRemaining.
type Status struct {
	Kind StatusKind `json:"kind"`
	Days int        `json:"days,omitempty"`
}

// completedRank pushes terminal and undecodable stages below every live one
// inside the same stage bucket.
const completedRank = 9999

// DateOnly strips the time-of-day component; all comparisons in this package
// are calendar-date exact.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// Classify computes the status of ev as of now (date-only).
//
//	Sow:        past dMax → overdue; within [dMin, dMax] → anytime_soon;
//	            before dMin → remaining(days to dMin).
//	Soak/Strat: past end → overdue; otherwise remaining(days to end),
//	            zero meaning "ends today".
//	Sprout:     always completed.
func Classify(ev Event, now time.Time) Status {
	now = DateOnly(now)
	switch e := ev.(type) {
	case Sow:
		dMin := e.Start.AddDate(0, 0, e.Min.Days())
		dMax := e.Start.AddDate(0, 0, e.Max.Days())
		switch {
		case now.After(dMax):
			return Status{Kind: StatusOverdue}
		case !now.Before(dMin):
			return Status{Kind: StatusAnytimeSoon}
		default:
			return Status{Kind: StatusRemaining, Days: daysBetween(now, dMin)}
		}
	case Soak:
		return classifyFixed(e.Start, e.Dur, now)
	case Strat:
		return classifyFixed(e.Start, e.Dur, now)
	case Sprout:
		return Status{Kind: StatusCompleted}
	}
	return Status{Kind: StatusCompleted}
}

func classifyFixed(start time.Time, dur Duration, now time.Time) Status {
	end := start.AddDate(0, 0, dur.Days())
	if now.After(end) {
		return Status{Kind: StatusOverdue}
	}
	return Status{Kind: StatusRemaining, Days: daysBetween(now, end)}
}

// ClassifyRecord classifies a stored row. Rows that cannot be decoded
// (unknown kind, malformed date) report completed: they are never due and
// sink to the bottom of their bucket.
func ClassifyRecord(rec entities.StageEvent, now time.Time) Status {
	ev, err := FromRecord(rec)
	if err != nil {
		return Status{Kind: StatusCompleted}
	}
	return Classify(ev, now)
}

// Window returns the expected completion dates of ev: for Sow the sprouting
// window [min, max], for Soak/Strat the single end date in both values.
// ok is false for Sprout, which has no expectation.
func Window(ev Event) (min, max time.Time, ok bool) {
	switch e := ev.(type) {
	case Sow:
		return e.Start.AddDate(0, 0, e.Min.Days()), e.Start.AddDate(0, 0, e.Max.Days()), true
	case Soak:
		end := e.Start.AddDate(0, 0, e.Dur.Days())
		return end, end, true
	case Strat:
		end := e.Start.AddDate(0, 0, e.Dur.Days())
		return end, end, true
	}
	return time.Time{}, time.Time{}, false
}

// UrgencyRank is the secondary sort key: days until the next interesting
// date, clamped to zero, with completedRank for terminal or undecodable rows.
func UrgencyRank(rec entities.StageEvent, now time.Time) int {
	ev, err := FromRecord(rec)
	if err != nil {
		return completedRank
	}
	now = DateOnly(now)
	var due time.Time
	switch e := ev.(type) {
	case Sow:
		due = e.Start.AddDate(0, 0, e.Min.Days())
	case Soak:
		due = e.Start.AddDate(0, 0, e.Dur.Days())
	case Strat:
		due = e.Start.AddDate(0, 0, e.Dur.Days())
	case Sprout:
		return completedRank
	}
	d := daysBetween(now, due)
	if d < 0 {
		return 0
	}
	return d
}
