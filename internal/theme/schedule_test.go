package theme

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 6, hour, minute, 0, 0, time.UTC)
}

func TestIsNight(t *testing.T) {
	t.Parallel()

	for h := range 24 {
		want := h >= 21 || h < 8
		if got := IsNight(h); got != want {
			t.Errorf("IsNight(%d) = %v, want %v", h, got, want)
		}
	}
}

func TestScheduleFollowsClockWithoutOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "midday", now: at(12, 0), expected: false},
		{name: "evening before boundary", now: at(20, 59), expected: false},
		{name: "night boundary", now: at(21, 0), expected: true},
		{name: "late night", now: at(23, 30), expected: true},
		{name: "early morning", now: at(7, 59), expected: true},
		{name: "day boundary", now: at(8, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSchedule()
			if got := s.Resolve(tt.now); got != tt.expected {
				t.Errorf("Resolve(%v) = %v, want %v", tt.now, got, tt.expected)
			}
		})
	}
}

func TestOverridePersistsUntilBoundary(t *testing.T) {
	t.Parallel()

	s := NewSchedule()

	// user inverts at 10:00
	s.SetOverride(at(10, 0), OverrideInvert)

	for _, tick := range []time.Time{at(10, 1), at(15, 0), at(20, 59)} {
		if !s.Resolve(tick) {
			t.Fatalf("Resolve(%v) = false, want override to hold", tick)
		}
	}

	// 21:00 crossing clears the override; schedule says night anyway
	if !s.Resolve(at(21, 0)) {
		t.Fatal("Resolve(21:00) = false, want true from schedule")
	}
	if s.HasOverride() {
		t.Fatal("override not cleared at boundary")
	}
}

func TestOverrideClearedOnMissedBoundaryMinute(t *testing.T) {
	t.Parallel()

	s := NewSchedule()
	s.SetOverride(at(10, 0), OverrideInvert)

	// no tick lands on 21:00 exactly; the 21:17 tick still clears
	if !s.Resolve(at(21, 17)) {
		t.Fatal("Resolve(21:17) = false, want true from schedule")
	}
	if s.HasOverride() {
		t.Fatal("override survived a missed boundary minute")
	}
}

func TestOverrideNormalDuringNight(t *testing.T) {
	t.Parallel()

	s := NewSchedule()

	// user forces the day palette at 22:00
	s.SetOverride(at(22, 0), OverrideNormal)

	if s.Resolve(at(23, 0)) {
		t.Fatal("Resolve(23:00) = true, want override to hold normal")
	}

	// next morning's 08:00 crossing resumes schedule authority
	next := at(8, 30).AddDate(0, 0, 1)
	if s.Resolve(next) {
		t.Fatal("Resolve(next 08:30) = true, want false from schedule")
	}
	if s.HasOverride() {
		t.Fatal("override not cleared after day boundary")
	}
}

func TestClearFiresOncePerBoundary(t *testing.T) {
	t.Parallel()

	s := NewSchedule()
	s.SetOverride(at(10, 0), OverrideInvert)

	s.Resolve(at(21, 0)) // clears

	// re-override after the clear; same boundary must not clear it again
	s.SetOverride(at(21, 5), OverrideNormal)
	if s.Resolve(at(21, 6)) {
		t.Fatal("Resolve(21:06) = true, want the fresh override to hold")
	}
	if !s.HasOverride() {
		t.Fatal("fresh override cleared by an already-acknowledged boundary")
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	s := NewSchedule()

	// midday: schedule says normal, toggle flips to invert
	if got := s.Toggle(at(12, 0)); !got {
		t.Fatal("Toggle at midday = false, want true")
	}
	if got := s.Toggle(at(12, 1)); got {
		t.Fatal("second Toggle = true, want false")
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSchedule()
	s.SetOverride(at(10, 0), OverrideInvert)

	restored := FromState(s.State())
	if !restored.HasOverride() {
		t.Fatal("override lost in round trip")
	}
	if !restored.Resolve(at(11, 0)) {
		t.Fatal("restored schedule dropped the invert override")
	}
}
