package theme

import "time"

// Night window boundaries in local hours. The display inverts to the dark
// palette between nightStartHour and dayStartHour.
const (
	NightStartHour = 21
	DayStartHour   = 8
)

type Override string

const (
	OverrideInvert Override = "invert"
	OverrideNormal Override = "normal"
)

// IsNight reports whether hour24 falls in the inverted window.
func IsNight(hour24 int) bool {
	return hour24 >= NightStartHour || hour24 < DayStartHour
}

// Schedule resolves the inverted flag from the clock, honoring a manual
// override until the next boundary crossing. The original cleared the
// override only on the exact boundary minute, which left a stale override
// behind when a tick was missed; here any tick at or past an
// unacknowledged boundary clears it.
type Schedule struct {
	override       *Override
	clearedThrough time.Time
}

// State is the persisted form of a Schedule.
type State struct {
	Override       string    `json:"override,omitempty"`
	ClearedThrough time.Time `json:"cleared_through"`
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

func FromState(s State) *Schedule {
	sched := &Schedule{clearedThrough: s.ClearedThrough}
	switch Override(s.Override) {
	case OverrideInvert, OverrideNormal:
		o := Override(s.Override)
		sched.override = &o
	}
	return sched
}

func (s *Schedule) State() State {
	st := State{ClearedThrough: s.clearedThrough}
	if s.override != nil {
		st.Override = string(*s.override)
	}
	return st
}

// Resolve returns whether the theme should be inverted at now. Crossing a
// boundary since the last acknowledged one clears the override first; the
// clear fires once per boundary.
func (s *Schedule) Resolve(now time.Time) bool {
	if b := prevBoundary(now); b.After(s.clearedThrough) {
		s.override = nil
		s.clearedThrough = b
	}

	if s.override != nil {
		return *s.override == OverrideInvert
	}
	return IsNight(now.Hour())
}

// SetOverride records a manual choice. The current boundary is acknowledged
// so the override survives until the next crossing.
func (s *Schedule) SetOverride(now time.Time, o Override) {
	s.override = &o
	s.clearedThrough = prevBoundary(now)
}

// Toggle flips the resolved state via an override and returns the new
// inverted flag.
func (s *Schedule) Toggle(now time.Time) bool {
	if s.Resolve(now) {
		s.SetOverride(now, OverrideNormal)
		return false
	}
	s.SetOverride(now, OverrideInvert)
	return true
}

// HasOverride reports whether a manual choice is currently in force.
func (s *Schedule) HasOverride() bool {
	return s.override != nil
}

// prevBoundary finds the most recent 21:00 or 08:00 at or before now.
func prevBoundary(now time.Time) time.Time {
	night := time.Date(now.Year(), now.Month(), now.Day(), NightStartHour, 0, 0, 0, now.Location())
	day := time.Date(now.Year(), now.Month(), now.Day(), DayStartHour, 0, 0, 0, now.Location())

	switch {
	case !now.Before(night):
		return night
	case !now.Before(day):
		return day
	default:
		// before 08:00: yesterday's 21:00
		return night.AddDate(0, 0, -1)
	}
}
