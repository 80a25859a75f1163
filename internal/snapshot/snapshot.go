// Package snapshot holds the normalized payloads the dashboard renders:
// one snapshot type per data domain, replaced wholesale on every
// successful fetch.
package snapshot

import "time"

// Domain identifies an independent external data source with its own
// fetch/cache/render path.
type Domain string

const (
	DomainWeather Domain = "weather"
	DomainMarkets Domain = "markets"
	DomainTraffic Domain = "traffic"
)

type Weather struct {
	Current WeatherCurrent `json:"current"`
	Daily   WeatherDaily   `json:"daily"`
	Hourly  *WeatherHourly `json:"hourly,omitempty"`
}

type WeatherCurrent struct {
	Code        int     `json:"code"`
	Temperature float64 `json:"temperature"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Text        string  `json:"text"`
}

// WeatherDaily is a 7-day strip in parallel-array form, mirroring the
// upstream forecast shape.
type WeatherDaily struct {
	Time []string  `json:"time"`
	Code []int     `json:"weather_code"`
	High []float64 `json:"temperature_2m_max"`
	Low  []float64 `json:"temperature_2m_min"`
}

type WeatherHourly struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	Precipitation []int     `json:"precipitation_probability"`
	Code          []int     `json:"weather_code"`
	WindSpeed     []float64 `json:"wind_speed_10m"`
}

type Markets struct {
	UpdatedAt  time.Time          `json:"updated_iso"`
	MarketOpen *bool              `json:"market_open,omitempty"`
	Symbols    map[string]Quote   `json:"symbols"`
	History    map[string][]Close `json:"history,omitempty"`
}

type Quote struct {
	Price         *float64 `json:"price"`
	Change        *float64 `json:"change,omitempty"`
	PercentChange *float64 `json:"percent_change,omitempty"`
}

type Close struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

type Traffic struct {
	From      Place     `json:"from"`
	To        Place     `json:"to"`
	UpdatedAt time.Time `json:"updated_iso"`
	Route     Route     `json:"route"`
}

type Place struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type Route struct {
	TravelTimeSec  float64 `json:"travel_time_sec"`
	DelaySec       float64 `json:"traffic_delay_sec"`
	DistanceMeters float64 `json:"distance_m"`
	Ratio          float64 `json:"ratio"`
}

// City is a saved world-clock entry.
type City struct {
	Label    string `json:"label"`
	Timezone string `json:"tz"`
}

// Record wraps a persisted snapshot with the human-readable updated string
// computed at write time, so cached displays show when the data was
// written rather than when it was read back.
type Record[T any] struct {
	Updated   string    `json:"updated"`
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

// StaleAfter is the age past which cached weather is annotated "(old)".
const StaleAfter = 24 * time.Hour

// Stale reports whether the record is older than the weather staleness
// threshold at the given instant.
func (r Record[T]) Stale(now time.Time) bool {
	return now.Sub(r.UpdatedAt) > StaleAfter
}
