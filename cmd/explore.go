package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"stockexplorer"
	"stockexplorer/renderer"
)

// exploreCmd implements the interactive menu, the default mode of the tool.
type exploreCmd struct{}

func (*exploreCmd) Name() string     { return "explore" }
func (*exploreCmd) Synopsis() string { return "run the interactive Stock Data Explorer menu" }
func (*exploreCmd) Usage() string {
	return `explore

  Runs the interactive numbered menus: analyze stocks over a date range,
  list and save the analyzed stocks, and view graphs. This is the default
  when sdx is started without arguments.
`
}

func (c *exploreCmd) SetFlags(f *flag.FlagSet) {}

func (c *exploreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := LoadConfig()
	e := &explorer{
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		provider: NewProvider(cfg),
		session:  stockexplorer.NewSession(),
		chartDir: cfg.ChartDir,
		display:  printMarkdown,
	}
	e.run()
	return subcommands.ExitSuccess
}

// explorer drives the numbered menus over a line-based reader. Keeping the
// reader and writer as fields makes the whole menu flow testable.
type explorer struct {
	in       *bufio.Scanner
	out      io.Writer
	provider stockexplorer.Provider
	session  *stockexplorer.Session
	chartDir string
	display  func(markdown string)

	done bool // set when the user confirms exit, or on EOF
}

func (e *explorer) printf(format string, args ...any) { fmt.Fprintf(e.out, format, args...) }

// readLine prompts and returns the trimmed next input line. EOF terminates
// the explorer.
func (e *explorer) readLine(prompt string) string {
	e.printf("%s", prompt)
	if !e.in.Scan() {
		e.done = true
		return ""
	}
	return strings.TrimSpace(e.in.Text())
}

// readChoice re-prompts until the user enters a number within [lo, hi].
func (e *explorer) readChoice(prompt string, lo, hi int) int {
	for !e.done {
		line := e.readLine(prompt)
		if e.done {
			break
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			e.printf("Invalid input, please try again.\n")
			continue
		}
		if n < lo || n > hi {
			e.printf("Invalid input, please choose between %d and %d\n", lo, hi)
			continue
		}
		return n
	}
	return 0
}

// run loops on the main menu until the user exits.
func (e *explorer) run() {
	for !e.done {
		e.printf("-------------------------\n")
		e.printf("Welcome to Stock Data Explorer!\n")
		e.printf("\nMenu:\n1. Analyze a Stock\n2. Access All Analyzed Stocks\n3. User Guide\n4. Exit\n---------------\n")

		choice := e.readChoice("What would you like to do? (1, 2, 3, 4): ", 1, 4)
		if e.done {
			return
		}
		e.printf("--------------------------\n")

		switch choice {
		case 1:
			e.analysisMenu()
		case 2:
			e.accessMenu()
		case 3:
			e.showGuide()
		case 4:
			e.confirmExit()
		}
	}
}

// analysisMenu analyzes a stock and loops on the per-stock follow-up menu.
func (e *explorer) analysisMenu() {
	sum := e.analyzeStock()
	if sum == nil {
		return
	}
	for !e.done {
		e.printf("\n----------------------------------\n\n")
		e.printf("Stock Analysis Menu:\n1. Save Data to CSV\n2. Analyze Another Stock\n3. Return to Main Menu\n4. Exit\n")

		choice := e.readChoice("What would you like to do? (1, 2, 3, or 4): ", 1, 4)
		if e.done {
			return
		}
		switch choice {
		case 1:
			e.saveOne(sum)
		case 2:
			e.printf("\n")
			if s := e.analyzeStock(); s != nil {
				sum = s
			}
		case 3:
			return
		case 4:
			e.confirmExit()
		}
	}
}

// analyzeStock prompts for a ticker and a date range, re-prompting until both
// validate and data is found, then prints the summary and stores it in the
// session.
func (e *explorer) analyzeStock() *stockexplorer.Summary {
	for !e.done {
		ticker := strings.ToUpper(e.readLine("Please enter a stock ticker: "))
		if e.done {
			return nil
		}
		q, err := e.provider.Lookup(ticker)
		if err != nil {
			e.printf("Entered ticker does not exist.\n")
			continue
		}

		start, ok := e.readDate("Please enter a start date(YYYY-MM-DD): ")
		if !ok {
			continue
		}
		end, ok := e.readDate("Please enter an end date(YYYY-MM-DD): ")
		if !ok {
			continue
		}

		e.printf("\n.....Validating.....\n\n")

		if !start.Before(end) {
			e.printf("Start date must occur before end date\n")
			continue
		}
		today := stockexplorer.Today()
		if start.After(today) || end.After(today) {
			e.printf("Date(s) entered cannot be in the future.\n")
			continue
		}

		e.printf("-----------------------------\n")
		series, err := e.provider.History(ticker, stockexplorer.Range{From: start, To: end})
		if errors.Is(err, stockexplorer.ErrNoData) {
			e.printf("There is no data available for this date range.\nPlease try again with another set of dates.\n-----------------------------\n")
			continue
		}
		if err != nil {
			e.printf("Could not fetch data: %v\n", err)
			continue
		}
		series.Name = q.Name

		sum := stockexplorer.Summarize(series)
		e.printf("Company: %s (%s)\n", q.Ticker, q.Name)
		e.printf("Valid Date Range: %s\n", sum.DateRange)
		e.printf("----------------------------------\n\n")
		e.printf("--\n**Note**:\nIf either the start or end date occurs on a day when the market was closed, the soonest succeeding day was chosen.\n--\n\n")
		e.display(renderer.Summary(sum))

		e.session.Add(sum)
		return sum
	}
	return nil
}

// readDate prompts for a single date. An unparseable date prints a message
// and reports failure, restarting the analysis prompts.
func (e *explorer) readDate(prompt string) (stockexplorer.Date, bool) {
	line := e.readLine(prompt)
	if e.done {
		return stockexplorer.Date{}, false
	}
	d, err := stockexplorer.ParseDate(line)
	if err != nil {
		e.printf("Invalid date format or invalid calendar date.\n")
		return stockexplorer.Date{}, false
	}
	return d, true
}

// saveOne appends the summary to its canonical per-stock CSV file.
func (e *explorer) saveOne(sum *stockexplorer.Summary) {
	path := stockexplorer.SummaryFilename(sum)
	err := stockexplorer.AppendSummary(path, sum)
	if errors.Is(err, stockexplorer.ErrDuplicateRow) {
		e.printf("\n--\nStock data for %s from %s is already saved in %s.\n--\n", sum.Company, sum.DateRange, path)
		return
	}
	if err != nil {
		e.printf("Could not save: %v\n", err)
		return
	}
	e.printf("\n.....Saving.....\n\nData saved to %s\n", path)
}

// accessMenu loops on the stock access menu over the session store.
func (e *explorer) accessMenu() {
	if e.session.Len() == 0 {
		e.printf("\n**You must first analyze one or more stocks before you can access them.**\n\n")
		return
	}
	for !e.done {
		e.printf("\nStock Access Menu:\n1. List All Analyzed Stocks\n2. Save All Analyzed Stocks to CSV\n3. View Graphs of Individual Analyzed Stocks\n4. Return to Main Menu\n5. Exit\n---------------\n")

		choice := e.readChoice("What would you like to do? (1, 2, 3, 4, or 5): ", 1, 5)
		if e.done {
			return
		}
		switch choice {
		case 1:
			e.display(renderer.Summaries(e.session.All()))
		case 2:
			e.saveAll()
		case 3:
			if e.viewGraph() {
				return
			}
		case 4:
			return
		case 5:
			e.confirmExit()
		}
	}
}

// saveAll exports every session summary to a user-named CSV file.
func (e *explorer) saveAll() {
	name := ""
	for name == "" && !e.done {
		name = e.readLine("Please enter a filename: ")
	}
	if e.done {
		return
	}
	path := stockexplorer.CleanFilename(name)
	if err := stockexplorer.ExportAll(path, e.session.All()); err != nil {
		e.printf("Could not save: %v\n", err)
		return
	}
	e.printf("\n.....Saving.....\n\nData saved to %s\n", path)
}

// viewGraph lets the user pick an analyzed stock and a statistic to chart.
// It reports whether the user asked to return to the main menu.
func (e *explorer) viewGraph() bool {
	all := e.session.All()
	n := len(all)

	e.printf("---------------\nBelow are all of the stocks you have analyzed:\n")
	for i, s := range all {
		e.printf("%d. %s ~ %s\n", i+1, s.Company, s.DateRange)
	}
	e.printf("%d. Return to Stock Access Menu\n%d. Return to Main Menu\n%d. Exit\n\n", n+1, n+2, n+3)

	var sum *stockexplorer.Summary
	for sum == nil {
		num := e.readChoice("Which stock would you like to view? (Enter the Number): ", 1, n+3)
		if e.done {
			return false
		}
		switch num {
		case n + 1:
			return false
		case n + 2:
			return true
		case n + 3:
			e.confirmExit()
			if e.done {
				return false
			}
		default:
			sum = all[num-1]
		}
	}

	series, err := e.provider.History(sum.Ticker, stockexplorer.Range{From: sum.From, To: sum.To})
	if err != nil {
		e.printf("Could not fetch data: %v\n", err)
		return false
	}

	e.printf("\n.....Retrieving Stock.....\n\n")
	e.printf("Available Statistics for %s from %s\n", sum.Company, sum.DateRange)
	e.printf("1. Daily Opening Price\n2. Daily Closing Price\n3. Highest Intraday Price\n4. Lowest Intraday Price\n5. Daily Volume\n")

	stat := e.readChoice("Which statistic do you want to graph? (1, 2, 3, 4, or 5): ", 1, 5)
	if e.done {
		return false
	}
	col := stockexplorer.Column(stat)

	e.printf("\n.....Graphing.....\n\n")
	e.printf("%s\n", renderer.AsciiChart(series, col))

	if strings.EqualFold(e.readLine("Save chart to an HTML file? [y/N]: "), "y") {
		e.writeChart(series, col)
	}
	return false
}

// writeChart writes the HTML chart file into the configured chart directory.
func (e *explorer) writeChart(series *stockexplorer.Series, col stockexplorer.Column) {
	r := series.Range()
	name := fmt.Sprintf("%s_%s_%s_%s.html", series.Ticker, col.Slug(), r.From, r.To)
	path := filepath.Join(e.chartDir, name)

	f, err := os.Create(path)
	if err != nil {
		e.printf("Could not save chart: %v\n", err)
		return
	}
	defer f.Close()
	if err := renderer.HTMLChart(f, series, col); err != nil {
		e.printf("Could not save chart: %v\n", err)
		return
	}
	e.printf("Chart saved to %s\n", path)
}

// showGuide displays the embedded user guide.
func (e *explorer) showGuide() {
	md, err := topicContent("guide")
	if err != nil {
		e.printf("Error reading guide: %v\n", err)
		return
	}
	e.display(md)
}

// confirmExit prompts for certainty over leaving. Only y or n are accepted.
func (e *explorer) confirmExit() {
	answer := strings.ToLower(e.readLine("Are you sure you wish to exit? All analyzed stocks will be lost [y/N]: "))
	for !e.done {
		switch answer {
		case "y":
			e.printf("\n.....Exiting.....\n\n")
			e.done = true
			return
		case "n":
			return
		default:
			answer = strings.ToLower(e.readLine("Invalid input. Please try again: "))
		}
	}
}
