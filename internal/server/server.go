package server

import (
	"log/slog"
	"net/http"

	"github.com/altay/inkdash/internal/xhttp/middleware"
)

// Routes wires the proxy endpoints behind the shared middleware chain.
func Routes(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/weather", h.HandleWeather)
	mux.HandleFunc("GET /api/markets", h.HandleMarkets)
	mux.HandleFunc("GET /api/commute", h.HandleCommute)
	mux.HandleFunc("GET /api/geocode", h.HandleGeocode)
	mux.HandleFunc("GET /health", h.HandleHealth)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Logging,
		middleware.CORS,
		middleware.SecurityHeaders,
	)
}
