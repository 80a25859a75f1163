// Package store is the local snapshot cache: the last successfully
// rendered payload per data domain plus small preference values, surviving
// across dashboard runs.
package store

import (
	"context"
	"errors"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/altay/inkdash/internal/clock"
	"github.com/altay/inkdash/internal/snapshot"
)

var ErrNotFound = errors.New("entry not found")

// Preference keys.
const (
	PrefThemeSchedule = "theme_schedule"
	PrefWeatherCity   = "weather_city"
	PrefCustomClock   = "world_clock_custom"
)

type Store interface {
	// GetSnapshot returns the raw persisted record for a domain, or
	// ErrNotFound.
	GetSnapshot(ctx context.Context, domain snapshot.Domain) ([]byte, error)

	// PutSnapshot overwrites the domain's record unconditionally;
	// last write wins.
	PutSnapshot(ctx context.Context, domain snapshot.Domain, payload []byte) error

	GetPref(ctx context.Context, key string) (string, error)
	PutPref(ctx context.Context, key, value string) error
	DeletePref(ctx context.Context, key string) error

	Close() error
}

// Load reads and decodes a domain record. A missing key or a malformed
// payload both come back as ErrNotFound: corrupt cache entries are treated
// as empty, never surfaced to the render path.
func Load[T any](ctx context.Context, s Store, domain snapshot.Domain) (snapshot.Record[T], error) {
	var rec snapshot.Record[T]

	raw, err := s.GetSnapshot(ctx, domain)
	if err != nil {
		return rec, err
	}
	if err := go_json.Unmarshal(raw, &rec); err != nil {
		return rec, ErrNotFound
	}
	return rec, nil
}

// Save wraps the snapshot in a Record stamped with the write-time
// "updated" string and persists it.
func Save[T any](ctx context.Context, s Store, domain snapshot.Domain, data T, now time.Time, use24h bool) error {
	rec := snapshot.Record[T]{
		Updated:   clock.FormatTime(now, use24h),
		UpdatedAt: now,
		Data:      data,
	}
	raw, err := go_json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.PutSnapshot(ctx, domain, raw)
}
