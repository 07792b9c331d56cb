package stockexplorer

import "errors"

// Quote identifies a tradable security at the data provider.
type Quote struct {
	Ticker string
	Name   string // company long name
}

var (
	// ErrUnknownTicker is returned by Lookup when the provider does not know
	// the requested symbol.
	ErrUnknownTicker = errors.New("ticker does not exist")

	// ErrNoData is returned by History when the requested range contains no
	// trading days.
	ErrNoData = errors.New("no data available for this date range")
)

// Provider fetches quotes and historical daily bars from a remote source.
type Provider interface {
	// Lookup validates a ticker symbol and resolves its company name.
	Lookup(ticker string) (Quote, error)

	// History returns the daily bars for the ticker within the inclusive
	// range r, restricted to actual trading days.
	History(ticker string, r Range) (*Series, error)
}
