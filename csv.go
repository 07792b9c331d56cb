package stockexplorer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// This file handles the CSV export format: one row per summary, with
// snake_case headers derived from the display titles.

// ErrDuplicateRow is returned when a summary for the same date range is
// already present in the target file.
var ErrDuplicateRow = errors.New("summary already saved for this date range")

// CSVHeader returns the snake_case column names derived from Titles, e.g.
// "average_closing_price".
func CSVHeader() []string {
	header := make([]string, len(Titles))
	for i, title := range Titles {
		header[i] = strings.ReplaceAll(strings.ToLower(title), " ", "_")
	}
	return header
}

// dateRangeColumn is the index of the "date_range" column used as row key.
const dateRangeColumn = 1

// SummaryFilename returns the canonical per-stock file name, e.g.
// "AAPL_2024-01-02_to_2024-03-01.csv".
func SummaryFilename(s *Summary) string {
	return fmt.Sprintf("%s_%s.csv", s.Ticker, strings.ReplaceAll(s.DateRange, " ", "_"))
}

// CleanFilename normalizes a user-entered export file name: spaces become
// underscores and the ".csv" extension is appended when missing.
func CleanFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	return name
}

// AppendSummary appends the summary as one row to the file at path, writing
// the header first when the file does not exist yet. A row with the same
// date_range already present in the file blocks the append with
// ErrDuplicateRow.
func AppendSummary(path string, sum *Summary) error {
	rows, exists, err := readRows(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) > dateRangeColumn && row[dateRangeColumn] == sum.DateRange {
			return fmt.Errorf("%w: %s in %s", ErrDuplicateRow, sum.DateRange, path)
		}
	}
	return appendRows(path, !exists, [][]string{sum.Fields()})
}

// ExportAll appends every summary to the file at path, writing the header
// first when the file does not exist yet.
func ExportAll(path string, sums []*Summary) error {
	_, exists, err := readRows(path)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(sums))
	for _, sum := range sums {
		rows = append(rows, sum.Fields())
	}
	return appendRows(path, !exists, rows)
}

// readRows reads the existing data rows of the file, reporting whether it
// exists. The header row is not returned.
func readRows(path string) (rows [][]string, exists bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err == io.EOF {
		return nil, true, nil
	} else if err != nil {
		return nil, true, fmt.Errorf("cannot read CSV header of %q: %w", path, err)
	}
	rows, err = r.ReadAll()
	if err != nil {
		return nil, true, fmt.Errorf("cannot read CSV rows of %q: %w", path, err)
	}
	return rows, true, nil
}

// appendRows appends rows to the file, optionally preceded by the header.
func appendRows(path string, withHeader bool, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if withHeader {
		if err := w.Write(CSVHeader()); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
