package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/altay/inkdash/internal/config"
	"github.com/altay/inkdash/internal/fetch"
	"github.com/altay/inkdash/internal/store"
)

type Deps struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Cfg      config.Config
	Location *time.Location
	Store    store.Store
	Fetcher  fetch.Fetcher
}
