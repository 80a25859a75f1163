package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/altay/inkdash/internal/icons"
	"github.com/altay/inkdash/internal/snapshot"
)

const (
	currentFields = "temperature_2m,weather_code"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min"
	hourlyFields  = "temperature_2m,precipitation_probability,weather_code,wind_speed_10m"
)

type ForecastParams struct {
	Lat      float64
	Lon      float64
	Timezone string

	// IncludeHourly requests the hourly table used by the weather detail
	// page.
	IncludeHourly bool
}

type forecastCurrent struct {
	Temperature *float64 `json:"temperature_2m"`
	WeatherCode *int     `json:"weather_code"`
}

type forecastResponse struct {
	Current *forecastCurrent        `json:"current"`
	Daily   *snapshot.WeatherDaily  `json:"daily"`
	Hourly  *snapshot.WeatherHourly `json:"hourly"`
}

// Forecast fetches and normalizes one weather snapshot. A response missing
// either the current or the daily section fails: a partial body renders
// worse than a stale cache.
func (c *Client) Forecast(ctx context.Context, params ForecastParams) (*snapshot.Weather, error) {
	query := url.Values{
		"latitude":         {strconv.FormatFloat(params.Lat, 'f', -1, 64)},
		"longitude":        {strconv.FormatFloat(params.Lon, 'f', -1, 64)},
		"timezone":         {params.Timezone},
		"current":          {currentFields},
		"daily":            {dailyFields},
		"temperature_unit": {"fahrenheit"},
	}
	if params.IncludeHourly {
		query.Set("hourly", hourlyFields)
	}

	var resp forecastResponse
	if err := c.get(ctx, c.forecastURL, "/forecast", query, &resp); err != nil {
		return nil, err
	}

	if resp.Current == nil || resp.Current.Temperature == nil || resp.Current.WeatherCode == nil {
		return nil, fmt.Errorf("forecast response missing current section")
	}
	if resp.Daily == nil || len(resp.Daily.Time) == 0 ||
		len(resp.Daily.High) == 0 || len(resp.Daily.Low) == 0 {
		return nil, fmt.Errorf("forecast response missing daily section")
	}

	code := *resp.Current.WeatherCode
	w := &snapshot.Weather{
		Current: snapshot.WeatherCurrent{
			Code:        code,
			Temperature: *resp.Current.Temperature,
			High:        resp.Daily.High[0],
			Low:         resp.Daily.Low[0],
			Text:        icons.Describe(code),
		},
		Daily:  *resp.Daily,
		Hourly: resp.Hourly,
	}

	return w, nil
}
