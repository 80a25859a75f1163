package twelvedata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/altay/inkdash/internal/snapshot"
)

type timeSeriesResponse struct {
	Values []struct {
		Datetime string  `json:"datetime"`
		Close    *number `json:"close"`
	} `json:"values"`
}

// TimeSeries fetches the last n daily closes for a symbol, oldest first.
// TwelveData returns values newest first; entries without a usable close
// are skipped.
func (c *Client) TimeSeries(ctx context.Context, symbol string, n int) ([]snapshot.Close, error) {
	query := url.Values{
		"symbol":     {symbol},
		"interval":   {"1day"},
		"outputsize": {strconv.Itoa(n)},
	}

	var resp timeSeriesResponse
	if err := c.get(ctx, "/time_series", query, &resp); err != nil {
		return nil, fmt.Errorf("time series %s: %w", symbol, err)
	}

	closes := make([]snapshot.Close, 0, len(resp.Values))
	for i := len(resp.Values) - 1; i >= 0; i-- {
		v := resp.Values[i]
		if v.Datetime == "" || !v.Close.valid() {
			continue
		}
		closes = append(closes, snapshot.Close{Date: v.Datetime, Close: float64(*v.Close)})
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("time series %s: no values in response", symbol)
	}

	return closes, nil
}

// History fetches daily close history for every symbol, joining all-succeed.
func (c *Client) History(ctx context.Context, symbols []string, n int) (map[string][]snapshot.Close, error) {
	results := make([][]snapshot.Close, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		g.Go(func() error {
			closes, err := c.TimeSeries(ctx, symbol, n)
			if err != nil {
				return err
			}
			results[i] = closes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	history := make(map[string][]snapshot.Close, len(symbols))
	for i, symbol := range symbols {
		history[symbol] = results[i]
	}

	return history, nil
}
