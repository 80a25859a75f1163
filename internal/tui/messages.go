package tui

import (
	"time"

	"github.com/altay/inkdash/internal/snapshot"
)

// refreshInterval re-arms one background fetch per domain.
const refreshInterval = 30 * time.Minute

// fetchTimeout bounds every background fetch; a hung upstream becomes an
// error message instead of a stuck card.
const fetchTimeout = 8 * time.Second

type minuteTickMsg struct {
	now time.Time
}

type refreshTickMsg struct {
	domain snapshot.Domain
}

type weatherMsg struct {
	rec snapshot.Record[snapshot.Weather]
	err error
}

type marketsMsg struct {
	rec snapshot.Record[snapshot.Markets]
	err error
}

type trafficMsg struct {
	rec snapshot.Record[snapshot.Traffic]
	err error
}

type geocodeMsg struct {
	city snapshot.City
	err  error
}

type themeSavedMsg struct {
	err error
}
