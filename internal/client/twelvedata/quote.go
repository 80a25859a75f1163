package twelvedata

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/altay/inkdash/internal/snapshot"
)

// number tolerates TwelveData's habit of quoting numeric fields. Values
// that do not parse become NaN and are dropped during normalization.
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = number(math.NaN())
		return nil
	}
	*n = number(v)
	return nil
}

func (n *number) valid() bool {
	return n != nil && !math.IsNaN(float64(*n))
}

type quoteResponse struct {
	Symbol        string  `json:"symbol"`
	Close         *number `json:"close"`
	Price         *number `json:"price"`
	Change        *number `json:"change"`
	PercentChange *number `json:"percent_change"`
	IsMarketOpen  *bool   `json:"is_market_open"`
}

// QuoteResult is one normalized symbol quote.
type QuoteResult struct {
	Quote      snapshot.Quote
	MarketOpen *bool
}

// Quote fetches one symbol. The price comes from "close", falling back to
// "price"; a quote without a numeric price is an error.
func (c *Client) Quote(ctx context.Context, symbol string) (*QuoteResult, error) {
	var resp quoteResponse
	if err := c.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &resp); err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}

	price := resp.Close
	if !price.valid() {
		price = resp.Price
	}
	if !price.valid() {
		return nil, fmt.Errorf("quote %s: no price in response", symbol)
	}

	q := snapshot.Quote{Price: ptr(float64(*price))}
	if resp.Change.valid() {
		q.Change = ptr(float64(*resp.Change))
	}
	if resp.PercentChange.valid() {
		q.PercentChange = ptr(float64(*resp.PercentChange))
	}

	return &QuoteResult{Quote: q, MarketOpen: resp.IsMarketOpen}, nil
}

// Quotes fans out one request per symbol and joins all-succeed: a single
// failed symbol rejects the whole batch so no partial data is rendered.
func (c *Client) Quotes(ctx context.Context, symbols []string) (map[string]snapshot.Quote, *bool, error) {
	results := make([]*QuoteResult, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		g.Go(func() error {
			r, err := c.Quote(ctx, symbol)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	quotes := make(map[string]snapshot.Quote, len(symbols))
	var marketOpen *bool
	for i, symbol := range symbols {
		quotes[symbol] = results[i].Quote
		if results[i].MarketOpen != nil {
			marketOpen = results[i].MarketOpen
		}
	}

	return quotes, marketOpen, nil
}

func ptr[T any](v T) *T { return &v }
