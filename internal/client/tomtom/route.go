package tomtom

import (
	"context"
	"fmt"
	"net/url"

	"github.com/altay/inkdash/internal/snapshot"
)

// Point is a routing waypoint.
type Point struct {
	Lat float64
	Lon float64
}

type routeResponse struct {
	Routes []struct {
		Summary *struct {
			LengthInMeters        float64 `json:"lengthInMeters"`
			TravelTimeInSeconds   float64 `json:"travelTimeInSeconds"`
			TrafficDelayInSeconds float64 `json:"trafficDelayInSeconds"`
		} `json:"summary"`
	} `json:"routes"`
}

// Route fetches the traffic-aware driving route between two points. The
// congestion ratio compares the live travel time against the same route
// with no delay, clamped at 1.
func (c *Client) Route(ctx context.Context, from, to Point) (*snapshot.Route, error) {
	locations := fmt.Sprintf("%f,%f:%f,%f", from.Lat, from.Lon, to.Lat, to.Lon)
	path := "/routing/1/calculateRoute/" + url.PathEscape(locations) + "/json"

	query := url.Values{
		"traffic":    {"true"},
		"travelMode": {"car"},
	}

	var resp routeResponse
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	if len(resp.Routes) == 0 || resp.Routes[0].Summary == nil {
		return nil, fmt.Errorf("route: no summary in response")
	}
	summary := resp.Routes[0].Summary

	route := &snapshot.Route{
		TravelTimeSec:  summary.TravelTimeInSeconds,
		DelaySec:       summary.TrafficDelayInSeconds,
		DistanceMeters: summary.LengthInMeters,
		Ratio:          1,
	}

	if base := route.TravelTimeSec - route.DelaySec; base > 0 {
		if ratio := route.TravelTimeSec / base; ratio > 1 {
			route.Ratio = ratio
		}
	}

	return route, nil
}
