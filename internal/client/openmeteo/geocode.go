package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GeoResult is the first geocoding match for a free-text city query.
type GeoResult struct {
	Label    string
	Timezone string
	Lat      float64
	Lon      float64
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
		Timezone  string  `json:"timezone"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Geocode resolves a city name to its location and time zone, taking the
// first result.
func (c *Client) Geocode(ctx context.Context, query string) (*GeoResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("empty city query")
	}

	params := url.Values{
		"name":     {q},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}

	var resp geocodeResponse
	if err := c.get(ctx, c.geocodingURL, "/search", params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("city not found: %q", q)
	}

	r := resp.Results[0]
	if r.Timezone == "" {
		return nil, fmt.Errorf("no timezone available for %q", q)
	}

	labelParts := make([]string, 0, 3)
	for _, part := range []string{r.Name, r.Admin1, r.Country} {
		if part != "" {
			labelParts = append(labelParts, part)
		}
	}

	return &GeoResult{
		Label:    strings.Join(labelParts, ", "),
		Timezone: r.Timezone,
		Lat:      r.Latitude,
		Lon:      r.Longitude,
	}, nil
}
