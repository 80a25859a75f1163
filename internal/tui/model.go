// Package tui is the terminal rendition of the e-ink dashboard: a home
// grid of domain cards over a minute-aligned clock, with one detail page
// per card. Cached snapshots paint immediately on boot; live fetches
// replace them as they land.
package tui

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/altay/inkdash/internal/clock"
	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/store"
	"github.com/altay/inkdash/internal/theme"
	"github.com/altay/inkdash/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	dashboardPage page = iota
	weatherPage
	marketsPage
	trafficPage
	worldclockPage
)

// cardCount is the number of navigable cards on the home grid.
const cardCount = 4

// domainState tracks one data domain through Cold (nothing yet), Cached
// (painted from the local store), and Live (fetched this run). A fetch
// error never discards the last good record.
type domainState[T any] struct {
	rec     snapshot.Record[T]
	has     bool
	live    bool
	loading bool
	err     error
}

func (d *domainState[T]) apply(rec snapshot.Record[T], err error) {
	d.loading = false
	if err != nil {
		d.err = err
		return
	}
	d.rec = rec
	d.has = true
	d.live = true
	d.err = nil
}

type Model struct {
	deps  Deps
	ready bool

	viewportWidth  int
	viewportHeight int

	page  page
	focus int

	now      time.Time
	parts    clock.Parts
	loaded   string
	schedule *theme.Schedule
	theme    theme.Theme

	weather domainState[snapshot.Weather]
	markets domainState[snapshot.Markets]
	traffic domainState[snapshot.Traffic]

	customClock snapshot.City
	searching   bool
	searchBuf   string
	searchErr   error
}

func New(deps Deps) *Model {
	now := time.Now().In(deps.Location)

	m := &Model{
		deps:        deps,
		page:        dashboardPage,
		now:         now,
		parts:       clock.Now(now, deps.Location, deps.Cfg.Use24h),
		loaded:      clock.FormatTime(now, deps.Cfg.Use24h),
		schedule:    loadSchedule(deps),
		customClock: loadCustomClock(deps),
	}
	m.theme = theme.New(m.schedule.Resolve(now))

	// Cache paint joins all-settle: a missing or corrupt domain never
	// blocks the others.
	if rec, err := store.Load[snapshot.Weather](deps.Ctx, deps.Store, snapshot.DomainWeather); err == nil {
		m.weather.rec, m.weather.has = rec, true
	}
	if rec, err := store.Load[snapshot.Markets](deps.Ctx, deps.Store, snapshot.DomainMarkets); err == nil {
		m.markets.rec, m.markets.has = rec, true
	}
	if rec, err := store.Load[snapshot.Traffic](deps.Ctx, deps.Store, snapshot.DomainTraffic); err == nil {
		m.traffic.rec, m.traffic.has = rec, true
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		minuteTickCmd(m.now),
		m.fetchWeather(false),
		m.fetchMarkets(false),
		refreshTickCmd(snapshot.DomainWeather),
		refreshTickCmd(snapshot.DomainMarkets),
	}
	if m.commuteConfigured() {
		cmds = append(cmds,
			m.fetchTraffic(),
			refreshTickCmd(snapshot.DomainTraffic),
		)
	}
	return tea.Batch(cmds...)
}

func (m *Model) commuteConfigured() bool {
	return m.deps.Cfg.CommuteFrom != "" && m.deps.Cfg.CommuteTo != ""
}

func (m *Model) fetchWeather(includeHourly bool) tea.Cmd {
	m.weather.loading = true
	return fetchWeatherCmd(m.deps, includeHourly)
}

// fetchMarkets uses the home symbol set for the card and the detail set
// with close history for the detail page.
func (m *Model) fetchMarkets(detail bool) tea.Cmd {
	m.markets.loading = true
	if detail {
		return fetchMarketsCmd(m.deps, m.deps.Cfg.DetailSymbols, historyDays)
	}
	return fetchMarketsCmd(m.deps, m.deps.Cfg.Symbols, 0)
}

const historyDays = 5

func (m *Model) fetchTraffic() tea.Cmd {
	m.traffic.loading = true
	return fetchTrafficCmd(m.deps)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case minuteTickMsg:
		m.now = msg.now.In(m.deps.Location)
		m.parts = clock.Now(m.now, m.deps.Location, m.deps.Cfg.Use24h)

		var cmd tea.Cmd
		hadOverride := m.schedule.HasOverride()
		inverted := m.schedule.Resolve(m.now)
		if inverted != m.theme.Inverted() {
			m.theme = theme.New(inverted)
		}
		// A boundary crossing clears the override; persist the clear so a
		// restart does not resurrect it.
		if hadOverride && !m.schedule.HasOverride() {
			cmd = saveScheduleCmd(m.deps, m.schedule.State())
		}
		return m, tea.Batch(minuteTickCmd(m.now), cmd)

	case refreshTickMsg:
		return m, tea.Batch(m.refreshDomain(msg.domain), refreshTickCmd(msg.domain))

	case weatherMsg:
		m.weather.apply(msg.rec, msg.err)
		m.markLoaded(msg.err)

	case marketsMsg:
		m.markets.apply(msg.rec, msg.err)
		m.markLoaded(msg.err)

	case trafficMsg:
		m.traffic.apply(msg.rec, msg.err)
		m.markLoaded(msg.err)

	case geocodeMsg:
		m.searching = false
		m.searchBuf = ""
		if msg.err != nil {
			m.searchErr = msg.err
		} else {
			m.searchErr = nil
			m.customClock = msg.city
		}

	case themeSavedMsg:
		if msg.err != nil {
			m.deps.Logger.WarnContext(m.deps.Ctx, "persisting theme failed", xslog.Error(msg.err))
		}
	}

	return m, nil
}

// markLoaded advances the footer timestamp whenever a fetch lands.
func (m *Model) markLoaded(err error) {
	if err != nil {
		return
	}
	m.loaded = clock.FormatTime(time.Now().In(m.deps.Location), m.deps.Cfg.Use24h)
}

func (m *Model) refreshDomain(domain snapshot.Domain) tea.Cmd {
	switch domain {
	case snapshot.DomainWeather:
		return m.fetchWeather(m.page == weatherPage)
	case snapshot.DomainMarkets:
		return m.fetchMarkets(m.page == marketsPage)
	case snapshot.DomainTraffic:
		if m.commuteConfigured() {
			return m.fetchTraffic()
		}
	}
	return nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search prompt on the world-clock page swallows everything
	// except its own control keys.
	if m.page == worldclockPage && m.searching {
		return m.updateSearch(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "t":
		inverted := m.schedule.Toggle(m.now)
		m.theme = theme.New(inverted)
		return m, saveScheduleCmd(m.deps, m.schedule.State())

	case "r":
		return m, m.refreshCurrent()

	case "esc":
		if m.page != dashboardPage {
			m.page = dashboardPage
		}
		return m, nil
	}

	switch m.page {
	case dashboardPage:
		return m.updateDashboardKeys(msg)
	case worldclockPage:
		switch msg.String() {
		case "/":
			m.searching = true
			m.searchBuf = ""
			m.searchErr = nil
		case "x":
			return m, resetCustomClockCmd(m.deps)
		}
	}
	return m, nil
}

// refreshCurrent re-fetches whatever the visible page shows; the home
// grid refreshes every domain at once.
func (m *Model) refreshCurrent() tea.Cmd {
	switch m.page {
	case weatherPage:
		return m.fetchWeather(true)
	case marketsPage:
		return m.fetchMarkets(true)
	case trafficPage:
		if m.commuteConfigured() {
			return m.fetchTraffic()
		}
		return nil
	case worldclockPage:
		return nil
	default:
		cmds := []tea.Cmd{m.fetchWeather(false), m.fetchMarkets(false)}
		if m.commuteConfigured() {
			cmds = append(cmds, m.fetchTraffic())
		}
		return tea.Batch(cmds...)
	}
}

func (m *Model) updateDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "2", "3", "4":
		m.focus = int(msg.String()[0] - '1')
		return m.openFocused()
	case "left", "h", "up", "k":
		m.focus = (m.focus + cardCount - 1) % cardCount
	case "right", "l", "down", "j", "tab":
		m.focus = (m.focus + 1) % cardCount
	case "enter":
		return m.openFocused()
	}
	return m, nil
}

// openFocused enters the focused card's detail page and kicks off the
// richer fetch that page needs.
func (m *Model) openFocused() (tea.Model, tea.Cmd) {
	switch m.focus {
	case 0:
		m.page = marketsPage
		return m, m.fetchMarkets(true)
	case 1:
		m.page = weatherPage
		return m, m.fetchWeather(true)
	case 2:
		m.page = trafficPage
		if m.commuteConfigured() {
			return m, m.fetchTraffic()
		}
		return m, nil
	default:
		m.page = worldclockPage
		return m, nil
	}
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchBuf = ""
		return m, nil
	case "enter":
		query := m.searchBuf
		if query == "" {
			m.searching = false
			return m, nil
		}
		return m, geocodeCmd(m.deps, query)
	case "backspace":
		if len(m.searchBuf) > 0 {
			runes := []rune(m.searchBuf)
			m.searchBuf = string(runes[:len(runes)-1])
		}
		return m, nil
	case "space":
		m.searchBuf += " "
		return m, nil
	}

	if key := msg.Key(); key.Text != "" {
		m.searchBuf += key.Text
	}
	return m, nil
}

// errorLine renders a fetch failure for a detail page status line;
// credential errors read as configuration hints rather than failures.
func errorLine(err error) string {
	var msg string
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		msg = "Timed out"
	default:
		msg = err.Error()
	}
	return "Error: " + msg
}
