package snapshot

import (
	"fmt"
	"math"
)

const placeholder = "--"

// Price renders a dollar amount with two decimals, or the placeholder for
// missing values.
func Price(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return placeholder
	}
	return fmt.Sprintf("$%.2f", *v)
}

// Percent renders a signed percentage with two decimals.
func Percent(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return placeholder
	}
	if *v >= 0 {
		return fmt.Sprintf("+%.2f%%", *v)
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// Minutes renders a duration in whole minutes from seconds.
func Minutes(sec float64) string {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return placeholder
	}
	return fmt.Sprintf("%d min", int(math.Round(sec/60)))
}

const metersPerMile = 1609.344

// DistanceMiles renders meters as miles: one decimal under 10 mi, whole
// miles above.
func DistanceMiles(meters float64) string {
	if math.IsNaN(meters) || math.IsInf(meters, 0) {
		return placeholder
	}
	mi := meters / metersPerMile
	if mi >= 10 {
		return fmt.Sprintf("%.0f mi", mi)
	}
	return fmt.Sprintf("%.1f mi", mi)
}

// Traffic severity buckets by actual/typical travel-time ratio.
// Half-open intervals: <1.20 Light, <1.50 Medium, <2.00 Heavy, else Severe.
func Status(ratio float64) string {
	switch {
	case math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0:
		return placeholder
	case ratio < 1.20:
		return "Light"
	case ratio < 1.50:
		return "Medium"
	case ratio < 2.00:
		return "Heavy"
	default:
		return "Severe"
	}
}

// FiveDayChange computes the percent change from the first close to the
// last. Nil when the series is too short or the base is zero.
func FiveDayChange(series []Close) *float64 {
	if len(series) < 2 {
		return nil
	}
	first := series[0].Close
	last := series[len(series)-1].Close
	if first == 0 {
		return nil
	}
	pct := (last - first) / first * 100
	return &pct
}

// CloseRange renders the low–high span of a close series.
func CloseRange(series []Close) string {
	if len(series) == 0 {
		return placeholder
	}
	lo, hi := series[0].Close, series[0].Close
	for _, c := range series[1:] {
		lo = math.Min(lo, c.Close)
		hi = math.Max(hi, c.Close)
	}
	return fmt.Sprintf("%s – %s", Price(&lo), Price(&hi))
}
