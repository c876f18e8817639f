package domain

import "time"

type ScheduleMode string

const (
	ModeAlwaysOpen   ScheduleMode = "always_open"
	ModeAlwaysClosed ScheduleMode = "always_closed"
	ModeWeekly       ScheduleMode = "weekly"
)

const minutesPerDay = 24 * 60

// WeeklyRule is one day's opening window in minutes of the local day.
// EndMinute is exclusive; EndMinute < StartMinute means the window wraps
// past midnight into the next day.
type WeeklyRule struct {
	Weekday     time.Weekday
	Enabled     bool
	StartMinute int
	EndMinute   int
}

func (r WeeklyRule) valid() bool {
	if !r.Enabled {
		return false
	}
	if r.StartMinute < 0 || r.StartMinute >= minutesPerDay {
		return false
	}
	if r.EndMinute < 0 || r.EndMinute >= minutesPerDay {
		return false
	}
	// Equal start and end is an empty window, not a 24h one.
	return r.StartMinute != r.EndMinute
}

func (r WeeklyRule) wrapsMidnight() bool {
	return r.EndMinute < r.StartMinute
}

// StoreSchedule carries everything needed to decide open/closed. It is the
// single source of that decision; no persisted "is open" flag exists apart
// from the manual override, which is one of its inputs.
type StoreSchedule struct {
	Mode ScheduleMode
	// ManualOverrideClosed forces the store closed regardless of mode.
	// It never forces a store open.
	ManualOverrideClosed bool
	// WeeklyRules holds at most one rule per day.
	WeeklyRules map[time.Weekday]WeeklyRule
}

// IsOpenAt evaluates the schedule at the given instant in the store's
// timezone. It is pure: safe to call on every listing read, concurrently,
// with no caching. Malformed or missing data degrades to closed.
//
// An overnight window belongs to the day it starts on: a Monday 18:00-02:00
// rule keeps the store open until Tuesday 01:59 even if Tuesday has no rule
// of its own.
func (s StoreSchedule) IsOpenAt(now time.Time, loc *time.Location) bool {
	if s.ManualOverrideClosed {
		return false
	}
	switch s.Mode {
	case ModeAlwaysOpen:
		return true
	case ModeAlwaysClosed:
		return false
	case ModeWeekly:
	default:
		return false
	}

	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()

	if rule, ok := s.WeeklyRules[local.Weekday()]; ok && rule.valid() {
		if rule.wrapsMidnight() {
			if minute >= rule.StartMinute {
				return true
			}
		} else if minute >= rule.StartMinute && minute < rule.EndMinute {
			return true
		}
	}

	// Tail of yesterday's overnight window.
	yesterday := (local.Weekday() + 6) % 7
	if rule, ok := s.WeeklyRules[yesterday]; ok && rule.valid() && rule.wrapsMidnight() {
		return minute < rule.EndMinute
	}

	return false
}
