package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	go_json "github.com/goccy/go-json"

	"github.com/altay/inkdash/internal/client/openmeteo"
	"github.com/altay/inkdash/internal/clock"
	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/store"
	"github.com/altay/inkdash/internal/theme"
	"github.com/altay/inkdash/internal/worldclock"
	"github.com/altay/inkdash/internal/xslog"
)

// minuteTickCmd fires on the next minute boundary, with a small settle
// delay so the displayed minute has definitely rolled over.
func minuteTickCmd(now time.Time) tea.Cmd {
	return tea.Tick(clock.NextMinuteDelay(now), func(t time.Time) tea.Msg {
		return minuteTickMsg{now: t}
	})
}

func refreshTickCmd(domain snapshot.Domain) tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{domain: domain}
	})
}

// record stamps a freshly fetched snapshot and persists it; a failed
// write is logged and swallowed, the in-memory record still renders.
func record[T any](deps Deps, domain snapshot.Domain, data T) snapshot.Record[T] {
	now := time.Now()
	rec := snapshot.Record[T]{
		Updated:   clock.FormatTime(now.In(deps.Location), deps.Cfg.Use24h),
		UpdatedAt: now,
		Data:      data,
	}
	if err := store.Save(deps.Ctx, deps.Store, domain, data, now.In(deps.Location), deps.Cfg.Use24h); err != nil {
		deps.Logger.WarnContext(deps.Ctx, "persisting snapshot failed",
			xslog.Domain(string(domain)), xslog.Error(err))
	}
	return rec
}

func fetchWeatherCmd(deps Deps, includeHourly bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(deps.Ctx, fetchTimeout)
		defer cancel()

		w, err := deps.Fetcher.Weather(ctx, openmeteo.ForecastParams{
			Lat:           deps.Cfg.Lat,
			Lon:           deps.Cfg.Lon,
			Timezone:      deps.Cfg.Timezone,
			IncludeHourly: includeHourly,
		})
		if err != nil {
			return weatherMsg{err: err}
		}
		return weatherMsg{rec: record(deps, snapshot.DomainWeather, *w)}
	}
}

func fetchMarketsCmd(deps Deps, symbols []string, historyDays int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(deps.Ctx, fetchTimeout)
		defer cancel()

		m, err := deps.Fetcher.Markets(ctx, symbols, historyDays)
		if err != nil {
			return marketsMsg{err: err}
		}
		return marketsMsg{rec: record(deps, snapshot.DomainMarkets, *m)}
	}
}

func fetchTrafficCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(deps.Ctx, fetchTimeout)
		defer cancel()

		t, err := deps.Fetcher.Commute(ctx, deps.Cfg.CommuteFrom, deps.Cfg.CommuteTo)
		if err != nil {
			return trafficMsg{err: err}
		}
		return trafficMsg{rec: record(deps, snapshot.DomainTraffic, *t)}
	}
}

// geocodeCmd resolves a city search on the world-clock page and persists
// the result as the custom clock.
func geocodeCmd(deps Deps, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(deps.Ctx, fetchTimeout)
		defer cancel()

		result, err := deps.Fetcher.Geocode(ctx, query)
		if err != nil {
			return geocodeMsg{err: err}
		}

		city := snapshot.City{Label: result.Label, Timezone: result.Timezone}
		if raw, err := go_json.Marshal(city); err == nil {
			if err := deps.Store.PutPref(deps.Ctx, store.PrefCustomClock, string(raw)); err != nil {
				deps.Logger.WarnContext(deps.Ctx, "persisting custom clock failed", xslog.Error(err))
			}
		}
		return geocodeMsg{city: city}
	}
}

// resetCustomClockCmd clears the saved custom clock, returning the card
// to the default city.
func resetCustomClockCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if err := deps.Store.DeletePref(deps.Ctx, store.PrefCustomClock); err != nil {
			deps.Logger.WarnContext(deps.Ctx, "clearing custom clock failed", xslog.Error(err))
		}
		return geocodeMsg{city: worldclock.DefaultCustomClock}
	}
}

func saveScheduleCmd(deps Deps, state theme.State) tea.Cmd {
	return func() tea.Msg {
		raw, err := go_json.Marshal(state)
		if err != nil {
			return themeSavedMsg{err: err}
		}
		return themeSavedMsg{err: deps.Store.PutPref(deps.Ctx, store.PrefThemeSchedule, string(raw))}
	}
}

// loadCustomClock reads the saved custom world clock, falling back to the
// default card.
func loadCustomClock(deps Deps) snapshot.City {
	raw, err := deps.Store.GetPref(deps.Ctx, store.PrefCustomClock)
	if err != nil {
		return worldclock.DefaultCustomClock
	}
	var city snapshot.City
	if err := go_json.Unmarshal([]byte(raw), &city); err != nil || city.Timezone == "" {
		return worldclock.DefaultCustomClock
	}
	return city
}

// loadSchedule restores the persisted theme schedule, or a fresh one.
func loadSchedule(deps Deps) *theme.Schedule {
	raw, err := deps.Store.GetPref(deps.Ctx, store.PrefThemeSchedule)
	if err != nil {
		return theme.NewSchedule()
	}
	var state theme.State
	if err := go_json.Unmarshal([]byte(raw), &state); err != nil {
		return theme.NewSchedule()
	}
	return theme.FromState(state)
}
