package cmd

import (
	"fmt"
	"testing"

	"github.com/google/subcommands"

	"stockexplorer"
)

func TestFetchSeriesFlagValidation(t *testing.T) {
	future := fmt.Sprint(stockexplorer.Today().Add(10))
	tests := []struct {
		name             string
		ticker, from, to string
	}{
		{"missing ticker", "", "2024-01-02", "2024-03-01"},
		{"missing from", "AAPL", "", "2024-03-01"},
		{"missing to", "AAPL", "2024-01-02", ""},
		{"bad start date", "AAPL", "01/02/2024", "2024-03-01"},
		{"bad end date", "AAPL", "2024-01-02", "2024-02-30"},
		{"start after end", "AAPL", "2024-03-01", "2024-01-02"},
		{"future date", "AAPL", "2024-01-02", future},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			series, status := fetchSeries(tc.ticker, tc.from, tc.to)
			if series != nil {
				t.Errorf("fetchSeries() returned a series, want nil")
			}
			if status != subcommands.ExitUsageError {
				t.Errorf("fetchSeries() status = %v, want ExitUsageError", status)
			}
		})
	}
}
