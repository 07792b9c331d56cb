// Package yahoo implements the stockexplorer.Provider interface on top of
// the Yahoo Finance API, through the piquette/finance-go client.
package yahoo

import (
	"fmt"
	"math"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"stockexplorer"
)

// Client fetches quotes and daily history from Yahoo Finance.
type Client struct{}

// New configures the finance-go HTTP client according to cfg and returns a
// Yahoo provider.
func New(cfg stockexplorer.Config) *Client {
	finance.SetHTTPClient(newHTTPClient(cfg))
	return &Client{}
}

// Lookup validates a ticker symbol against Yahoo Finance and resolves the
// company name.
func (c *Client) Lookup(ticker string) (stockexplorer.Quote, error) {
	q, err := quote.Get(ticker)
	if err != nil {
		return stockexplorer.Quote{}, fmt.Errorf("%w: %s", stockexplorer.ErrUnknownTicker, ticker)
	}
	if q == nil || q.ShortName == "" {
		return stockexplorer.Quote{}, fmt.Errorf("%w: %s", stockexplorer.ErrUnknownTicker, ticker)
	}
	return stockexplorer.Quote{Ticker: q.Symbol, Name: q.ShortName}, nil
}

// History returns the daily bars for the ticker within r. Yahoo only returns
// actual trading days, so the series range may be narrower than r.
func (c *Client) History(ticker string, r stockexplorer.Range) (*stockexplorer.Series, error) {
	from := r.From.Time()
	// Yahoo's period2 bound is exclusive of the end day's close, so include
	// the whole last day.
	to := r.To.Add(1).Time()

	params := &chart.Params{
		Symbol:   ticker,
		Interval: datetime.OneDay,
		Start:    datetime.New(&from),
		End:      datetime.New(&to),
	}

	series := &stockexplorer.Series{Ticker: ticker}
	iter := chart.Get(params)
	for iter.Next() {
		series.Bars = append(series.Bars, fromChartBar(iter.Bar()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("cannot fetch history for %s: %w", ticker, err)
	}
	if series.Len() == 0 {
		return nil, stockexplorer.ErrNoData
	}
	return series, nil
}

// fromChartBar converts a finance-go chart bar into a domain bar.
func fromChartBar(b *finance.ChartBar) stockexplorer.Bar {
	return stockexplorer.Bar{
		Day:    stockexplorer.DateOf(time.Unix(int64(b.Timestamp), 0).UTC()),
		Open:   scrub(b.Open.InexactFloat64()),
		High:   scrub(b.High.InexactFloat64()),
		Low:    scrub(b.Low.InexactFloat64()),
		Close:  scrub(b.Close.InexactFloat64()),
		Volume: int64(b.Volume),
	}
}

// scrub handles null values in Yahoo's response, sometimes surfaced as NaN.
func scrub(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
