package stockexplorer

import (
	"math"
	"testing"
	"time"
)

// testSeries returns a fixed five-day series whose statistics reduce to
// exact reference values: the daily returns are +0.1, -0.1, +0.1 and 0,
// so the sample standard deviation is sqrt(11/1200).
func testSeries() *Series {
	return &Series{
		Ticker: "TEST",
		Name:   "Test Corp",
		Bars: []Bar{
			{Day: NewDate(2024, time.January, 2), Open: 95, High: 101, Low: 94, Close: 100, Volume: 1500},
			{Day: NewDate(2024, time.January, 3), Open: 100, High: 112, Low: 99, Close: 110, Volume: 2500},
			{Day: NewDate(2024, time.January, 4), Open: 109, High: 111, Low: 95, Close: 99, Volume: 2000},
			{Day: NewDate(2024, time.January, 5), Open: 100, High: 110, Low: 98, Close: 108.9, Volume: 2000},
			{Day: NewDate(2024, time.January, 8), Open: 109, High: 110, Low: 107, Close: 108.9, Volume: 2000},
		},
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(testSeries())
	if sum == nil {
		t.Fatal("Summarize() = nil, want a summary")
	}

	testCases := []struct {
		name string
		got  string
		want string
	}{
		{"Company", sum.Company, "TEST (Test Corp)"},
		{"DateRange", sum.DateRange, "2024-01-02 to 2024-01-08"},
		{"TradingDays", sum.TradingDays, "5"},
		{"OpeningPrice", sum.OpeningPrice, "$95.00"},
		{"ClosingPrice", sum.ClosingPrice, "$108.90"},
		{"AverageClose", sum.AverageClose, "$105.36"},
		{"HighestClose", sum.HighestClose, "$110.00"},
		{"HighestIntraday", sum.HighestIntraday, "$112.00"},
		{"LowestClose", sum.LowestClose, "$99.00"},
		{"LowestIntraday", sum.LowestIntraday, "$94.00"},
		{"DailyVolatility", sum.DailyVolatility, "0.095743"},
		{"AnnualizedVolatility", sum.AnnualizedVolatility, "1.519868"},
		{"TotalReturn", sum.TotalReturn, "14.6316%"},
		{"AverageVolume", sum.AverageVolume, "2,000"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("Summarize().%s = %q, want %q", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestSummarizeKeys(t *testing.T) {
	sum := Summarize(testSeries())
	if got, want := sum.Ticker, "TEST"; got != want {
		t.Errorf("Summarize().Ticker = %q, want %q", got, want)
	}
	if got, want := sum.From, NewDate(2024, time.January, 2); got != want {
		t.Errorf("Summarize().From = %v, want %v", got, want)
	}
	if got, want := sum.To, NewDate(2024, time.January, 8); got != want {
		t.Errorf("Summarize().To = %v, want %v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(&Series{Ticker: "TEST"}); got != nil {
		t.Errorf("Summarize(empty) = %v, want nil", got)
	}
	if got := Summarize(nil); got != nil {
		t.Errorf("Summarize(nil) = %v, want nil", got)
	}
}

func TestFieldsMatchTitles(t *testing.T) {
	sum := Summarize(testSeries())
	if got, want := len(sum.Fields()), len(Titles); got != want {
		t.Errorf("len(Fields()) = %d, want %d", got, want)
	}
}

func TestSampleStd(t *testing.T) {
	testCases := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "empty", in: nil, want: 0},
		{name: "single value", in: []float64{0.5}, want: 0},
		{name: "constant", in: []float64{2, 2, 2}, want: 0},
		{name: "two values", in: []float64{1, 3}, want: math.Sqrt2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sampleStd(tc.in); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("sampleStd(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPctChanges(t *testing.T) {
	got := pctChanges([]float64{100, 110, 99})
	want := []float64{0.1, -0.1}
	if len(got) != len(want) {
		t.Fatalf("pctChanges() = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("pctChanges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPctChangesSkipsZeroPrevious(t *testing.T) {
	got := pctChanges([]float64{100, 0, 50})
	want := []float64{-1}
	if len(got) != 1 || math.Abs(got[0]-want[0]) > 1e-12 {
		t.Errorf("pctChanges() = %v, want %v", got, want)
	}
}

func TestUSD(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{95, "$95.00"},
		{1234567.891, "$1,234,567.89"},
	}
	for _, tc := range testCases {
		if got := usd(tc.in); got != tc.want {
			t.Errorf("usd(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGroup(t *testing.T) {
	if got, want := group(1234567), "1,234,567"; got != want {
		t.Errorf("group(1234567) = %q, want %q", got, want)
	}
	if got, want := group(42), "42"; got != want {
		t.Errorf("group(42) = %q, want %q", got, want)
	}
}
