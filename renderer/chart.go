package renderer

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/guptarohit/asciigraph"

	"stockexplorer"
)

// AsciiChart renders the selected column of the series as a terminal chart.
func AsciiChart(s *stockexplorer.Series, col stockexplorer.Column) string {
	caption := fmt.Sprintf("%s %s from %s", s.Ticker, col.Label(), s.Range())
	return asciigraph.Plot(col.Values(s),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}

// HTMLChart writes a self-contained HTML chart of the selected column:
// a line chart for prices, a bar chart for volume.
func HTMLChart(w io.Writer, s *stockexplorer.Series, col stockexplorer.Column) error {
	title := fmt.Sprintf("%s %s from %s", s.Ticker, col.Label(), s.Range())
	days := make([]string, 0, s.Len())
	for _, b := range s.Bars {
		days = append(days, b.Day.String())
	}
	values := col.Values(s)

	if col == stockexplorer.ColumnVolume {
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: title}),
			charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "Volume"}),
		)
		data := make([]opts.BarData, 0, len(values))
		for _, v := range values {
			data = append(data, opts.BarData{Value: v})
		}
		bar.SetXAxis(days).AddSeries(col.Label(), data)
		return bar.Render(w)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price ($)"}),
	)
	data := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		data = append(data, opts.LineData{Value: v})
	}
	line.SetXAxis(days).AddSeries(col.Label(), data)
	return line.Render(w)
}
