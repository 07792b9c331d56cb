package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockexplorer"
	"stockexplorer/renderer"
)

// chartCmd implements the one-shot "chart" command.
type chartCmd struct {
	ticker string
	from   string
	to     string
	column string
	html   string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot one statistic of a stock over a date range" }
func (*chartCmd) Usage() string {
	return `chart -t <ticker> -from <YYYY-MM-DD> -to <YYYY-MM-DD> [-col <column>] [-html <file>]

  Fetches the daily history of the ticker and plots the selected column
  (open, close, high, low or volume) as a terminal chart. With -html, a
  self-contained HTML chart file is written instead.

Usage Examples:
$ sdx chart -t AAPL -from 2024-01-02 -to 2024-03-01
$ sdx chart -t AAPL -from 2024-01-02 -to 2024-03-01 -col volume -html aapl.html
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "stock ticker symbol")
	f.StringVar(&c.from, "from", "", "start date (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "end date (YYYY-MM-DD)")
	f.StringVar(&c.column, "col", "close", "column to plot: open, close, high, low or volume")
	f.StringVar(&c.html, "html", "", "write an HTML chart to this file instead of the terminal")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	col, err := stockexplorer.ParseColumn(c.column)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	series, status := fetchSeries(c.ticker, c.from, c.to)
	if series == nil {
		return status
	}

	if c.html == "" {
		fmt.Println(renderer.AsciiChart(series, col))
		return subcommands.ExitSuccess
	}

	file, err := os.Create(c.html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.html, err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if err := renderer.HTMLChart(file, series, col); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart saved to %s\n", c.html)
	return subcommands.ExitSuccess
}
