package stockexplorer

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// tradingDaysPerYear is the conventional factor used to annualize daily
// volatility.
const tradingDaysPerYear = 252

// Titles are the display labels of the fourteen summary statistics, in the
// order they are printed and exported.
var Titles = [...]string{
	"Company",
	"Date Range",
	"Total Trading Days",
	"Opening Price",
	"Closing Price",
	"Average Closing Price",
	"Highest Closing Price",
	"Highest Intraday Price",
	"Lowest Closing Price",
	"Lowest Intraday Price",
	"Daily Price Volatility",
	"Annualized Price Volatility",
	"Total Return (%)",
	"Average Daily Volume",
}

// Summary holds the fourteen pre-formatted display statistics for one ticker
// over one date range, plus the raw keys needed to refetch the series.
type Summary struct {
	Ticker string
	From   Date
	To     Date

	Company              string
	DateRange            string
	TradingDays          string
	OpeningPrice         string
	ClosingPrice         string
	AverageClose         string
	HighestClose         string
	HighestIntraday      string
	LowestClose          string
	LowestIntraday       string
	DailyVolatility      string
	AnnualizedVolatility string
	TotalReturn          string
	AverageVolume        string
}

// Fields returns the fourteen display values in the same order as Titles.
func (s *Summary) Fields() []string {
	return []string{
		s.Company,
		s.DateRange,
		s.TradingDays,
		s.OpeningPrice,
		s.ClosingPrice,
		s.AverageClose,
		s.HighestClose,
		s.HighestIntraday,
		s.LowestClose,
		s.LowestIntraday,
		s.DailyVolatility,
		s.AnnualizedVolatility,
		s.TotalReturn,
		s.AverageVolume,
	}
}

// Summarize computes the summary statistics over a fetched series.
// It returns nil when the series holds no bars.
func Summarize(s *Series) *Summary {
	if s == nil || s.Len() == 0 {
		return nil
	}

	first, last := s.First(), s.Last()
	r := s.Range()
	closes := ColumnClose.Values(s)
	highs := ColumnHigh.Values(s)
	lows := ColumnLow.Values(s)

	returns := pctChanges(closes)
	vol := sampleStd(returns)

	var totalVolume int64
	for _, b := range s.Bars {
		totalVolume += b.Volume
	}
	avgVolume := int64(math.Round(float64(totalVolume) / float64(s.Len())))

	totalReturn := 0.0
	if first.Open != 0 {
		totalReturn = (last.Close - first.Open) / first.Open * 100
	}

	return &Summary{
		Ticker: s.Ticker,
		From:   r.From,
		To:     r.To,

		Company:              fmt.Sprintf("%s (%s)", s.Ticker, s.Name),
		DateRange:            r.String(),
		TradingDays:          group(int64(s.Len())),
		OpeningPrice:         usd(first.Open),
		ClosingPrice:         usd(last.Close),
		AverageClose:         usd(mean(closes)),
		HighestClose:         usd(maxOf(closes)),
		HighestIntraday:      usd(maxOf(highs)),
		LowestClose:          usd(minOf(closes)),
		LowestIntraday:       usd(minOf(lows)),
		DailyVolatility:      printer.Sprintf("%.6f", vol),
		AnnualizedVolatility: printer.Sprintf("%.6f", vol*math.Sqrt(tradingDaysPerYear)),
		TotalReturn:          printer.Sprintf("%.4f", totalReturn) + "%",
		AverageVolume:        group(avgVolume),
	}
}

// pctChanges returns the day-over-day percentage changes of the values.
// Entries whose previous value is zero (scrubbed nulls) are skipped.
func pctChanges(values []float64) []float64 {
	changes := make([]float64, 0, len(values))
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}
		changes = append(changes, (values[i]-prev)/prev)
	}
	return changes
}

// sampleStd returns the sample standard deviation (n-1 denominator) of the
// values, or 0 when there are fewer than two of them.
func sampleStd(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

var printer = message.NewPrinter(language.English)

// usd formats a price as a dollar amount with cents and thousands grouping.
func usd(v float64) string {
	cur := money.New(0, money.USD).Currency()
	dec := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// group formats an integer with thousands separators.
func group(n int64) string { return printer.Sprintf("%d", n) }
