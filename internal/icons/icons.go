// Package icons maps WMO weather codes and dashboard card categories to
// fixed glyphs and short condition text.
package icons

// Kind buckets a weather code into one of the drawable conditions.
type Kind string

const (
	KindSun   Kind = "sun"
	KindCloud Kind = "cloud"
	KindFog   Kind = "fog"
	KindRain  Kind = "rain"
	KindSnow  Kind = "snow"
	KindStorm Kind = "storm"
)

const unknown = "—"

var descriptions = map[int]string{
	0: "Clear", 1: "Mostly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Fog", 48: "Fog",
	51: "Drizzle", 53: "Drizzle", 55: "Heavy drizzle",
	61: "Rain", 63: "Rain", 65: "Heavy rain",
	71: "Snow", 73: "Snow", 75: "Heavy snow",
	80: "Showers", 81: "Showers", 82: "Showers",
	95: "Thunderstorm", 96: "Thunderstorm", 99: "Thunderstorm",
}

// Describe returns the short condition text for a weather code.
func Describe(code int) string {
	if s, ok := descriptions[code]; ok {
		return s
	}
	return unknown
}

// ForCode buckets a weather code the same way the condition glyphs do.
func ForCode(code int) Kind {
	switch {
	case code == 0 || code == 1:
		return KindSun
	case code == 2 || code == 3:
		return KindCloud
	case code == 45 || code == 48:
		return KindFog
	case code >= 51 && code <= 67:
		return KindRain
	case code >= 71 && code <= 77:
		return KindSnow
	case code >= 80 && code <= 82:
		return KindRain
	case code >= 95:
		return KindStorm
	default:
		return KindCloud
	}
}

var glyphs = map[Kind]string{
	KindSun:   "☀",
	KindCloud: "☁",
	KindFog:   "≡",
	KindRain:  "☂",
	KindSnow:  "❄",
	KindStorm: "⚡",
}

// Glyph renders the terminal glyph for a condition kind.
func Glyph(k Kind) string {
	if g, ok := glyphs[k]; ok {
		return g
	}
	return glyphs[KindCloud]
}

// Weather is the glyph for a raw weather code.
func Weather(code int) string {
	return Glyph(ForCode(code))
}

// Card glyphs for the dashboard navigation cards. Single-cell characters
// only; emoji render double-width on most terminals.
const (
	Chart = "◢"
	Week  = "▦"
	Road  = "⇄"
	Globe = "◷"
)
