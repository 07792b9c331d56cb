package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"stockexplorer"
	"stockexplorer/renderer"
)

// analyzeCmd implements the one-shot "analyze" command.
type analyzeCmd struct {
	ticker string
	from   string
	to     string
	output string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a single stock over a date range" }
func (*analyzeCmd) Usage() string {
	return `analyze -t <ticker> -from <YYYY-MM-DD> -to <YYYY-MM-DD> [-o <file.csv>]

  Fetches the daily history of the ticker over the date range, computes the
  summary statistics and prints them. With -o, the summary is also appended
  to the given CSV file.

Usage Examples:
$ sdx analyze -t AAPL -from 2024-01-02 -to 2024-03-01
$ sdx analyze -t MSFT -from 2024-01-02 -to 2024-03-01 -o my_stocks.csv
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "stock ticker symbol")
	f.StringVar(&c.from, "from", "", "start date (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "end date (YYYY-MM-DD)")
	f.StringVar(&c.output, "o", "", "append the summary to this CSV file")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, status := fetchSeries(c.ticker, c.from, c.to)
	if series == nil {
		return status
	}
	sum := stockexplorer.Summarize(series)

	printMarkdown(renderer.Summary(sum))

	if c.output != "" {
		path := stockexplorer.CleanFilename(c.output)
		err := stockexplorer.AppendSummary(path, sum)
		if errors.Is(err, stockexplorer.ErrDuplicateRow) {
			fmt.Fprintf(os.Stderr, "Stock data for %s from %s is already saved in %s.\n", sum.Company, sum.DateRange, path)
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving to %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Data saved to %s\n", path)
	}
	return subcommands.ExitSuccess
}

// fetchSeries validates the shared ticker and date-range flags and fetches
// the series. On failure it prints the reason and returns a nil series with
// the exit status to report.
func fetchSeries(ticker, from, to string) (*stockexplorer.Series, subcommands.ExitStatus) {
	if ticker == "" || from == "" || to == "" {
		fmt.Fprintln(os.Stderr, "-t, -from and -to are required")
		return nil, subcommands.ExitUsageError
	}
	start, err := stockexplorer.ParseDate(from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	end, err := stockexplorer.ParseDate(to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	if !start.Before(end) {
		fmt.Fprintln(os.Stderr, "Start date must occur before end date")
		return nil, subcommands.ExitUsageError
	}
	today := stockexplorer.Today()
	if start.After(today) || end.After(today) {
		fmt.Fprintln(os.Stderr, "Date(s) entered cannot be in the future.")
		return nil, subcommands.ExitUsageError
	}

	cfg := LoadConfig()
	provider := NewProvider(cfg)

	symbol := strings.ToUpper(ticker)
	q, err := provider.Lookup(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	series, err := provider.History(symbol, stockexplorer.Range{From: start, To: end})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	series.Name = q.Name

	return series, subcommands.ExitSuccess
}
