// Package renderer turns domain structs into markdown strings for terminal
// display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"stockexplorer"
)

// Summary renders the fourteen statistics of a single stock as a markdown
// table.
func Summary(s *stockexplorer.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(s.Company)

	table := md.TableSet{
		Header: []string{
			md.Bold("Statistic"),
			md.Bold("Value"),
		},
	}
	fields := s.Fields()
	for i, title := range stockexplorer.Titles {
		table.Rows = append(table.Rows, []string{title, fields[i]})
	}
	doc.Table(table)

	return doc.String()
}

// Summaries renders every analyzed stock with its statistics.
func Summaries(list []*stockexplorer.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("All Analyzed Stocks")
	for _, s := range list {
		doc.H2(fmt.Sprintf("%s ~ %s", s.Company, s.DateRange))

		table := md.TableSet{
			Header: []string{
				md.Bold("Statistic"),
				md.Bold("Value"),
			},
		}
		fields := s.Fields()
		// Skip company and date range, they are already in the heading.
		for i := 2; i < len(stockexplorer.Titles); i++ {
			table.Rows = append(table.Rows, []string{stockexplorer.Titles[i], fields[i]})
		}
		doc.Table(table)
	}

	return doc.String()
}
