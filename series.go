package stockexplorer

import "fmt"

// Bar is a single daily price bar.
type Bar struct {
	Day    Date
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series holds the daily bars fetched for one ticker over one date range,
// in chronological order.
type Series struct {
	Ticker string
	Name   string // company long name, when known
	Bars   []Bar
}

// Len returns the number of trading days in the series.
func (s *Series) Len() int { return len(s.Bars) }

// First returns the earliest bar of the series.
func (s *Series) First() Bar { return s.Bars[0] }

// Last returns the latest bar of the series.
func (s *Series) Last() Bar { return s.Bars[len(s.Bars)-1] }

// Range returns the actual trading-day range covered by the series.
func (s *Series) Range() Range { return Range{From: s.First().Day, To: s.Last().Day} }

// Column identifies one of the daily bar fields that can be plotted.
// The numeric values match the graph menu numbering.
type Column int

const (
	ColumnOpen Column = iota + 1
	ColumnClose
	ColumnHigh
	ColumnLow
	ColumnVolume
)

// Label returns the display name of the column.
func (c Column) Label() string {
	switch c {
	case ColumnOpen:
		return "Opening Price"
	case ColumnClose:
		return "Closing Price"
	case ColumnHigh:
		return "High Price"
	case ColumnLow:
		return "Low Price"
	case ColumnVolume:
		return "Volume"
	}
	return "Unknown"
}

// Slug returns the column name usable in file names, e.g. "opening_price".
func (c Column) Slug() string {
	switch c {
	case ColumnOpen:
		return "opening_price"
	case ColumnClose:
		return "closing_price"
	case ColumnHigh:
		return "high_price"
	case ColumnLow:
		return "low_price"
	case ColumnVolume:
		return "volume"
	}
	return "unknown"
}

// Values extracts the column from every bar of the series.
func (c Column) Values(s *Series) []float64 {
	values := make([]float64, 0, s.Len())
	for _, b := range s.Bars {
		switch c {
		case ColumnOpen:
			values = append(values, b.Open)
		case ColumnClose:
			values = append(values, b.Close)
		case ColumnHigh:
			values = append(values, b.High)
		case ColumnLow:
			values = append(values, b.Low)
		case ColumnVolume:
			values = append(values, float64(b.Volume))
		}
	}
	return values
}

// ParseColumn returns the column named by str, accepting the short names
// used on the command line: open, close, high, low, volume.
func ParseColumn(str string) (Column, error) {
	switch str {
	case "open":
		return ColumnOpen, nil
	case "close":
		return ColumnClose, nil
	case "high":
		return ColumnHigh, nil
	case "low":
		return ColumnLow, nil
	case "volume":
		return ColumnVolume, nil
	}
	return 0, fmt.Errorf("unknown column %q: want open, close, high, low or volume", str)
}
