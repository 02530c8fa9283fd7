// Package charts renders the dashboard charts as a standalone HTML page.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rohits-web03/quickdrop/internal/stats"
)

const (
	PageTitle = "QuickDrop Dashboard"

	// UntypedLabel names the bucket of transfers that carried no file type.
	UntypedLabel = "(none)"
)

// Render writes the file type pie, the transfers line and the outcome bar
// chart for r to w.
func Render(w io.Writer, r stats.Report) error {
	page := components.NewPage()
	page.PageTitle = PageTitle
	page.AddCharts(
		FileTypePie(r),
		TimelineLine(r),
		OutcomeBar(r),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}
	return nil
}

func FileTypePie(r stats.Report) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: PageTitle}),
		charts.WithTitleOpts(opts.Title{
			Title: "Transfers by file type",
			Subtitle: fmt.Sprintf("%d transfers, %s total, %s%% successful",
				r.Summary.TotalTransfers, stats.FormatBytes(r.Summary.TotalSize), r.Summary.SuccessRatePercent()),
		}),
	)

	data := make([]opts.PieData, 0, len(r.FileTypes))
	for _, tc := range r.FileTypes {
		data = append(data, opts.PieData{Name: TypeLabel(tc.FileType), Value: tc.Count})
	}
	pie.AddSeries("File types", data)
	return pie
}

func TimelineLine(r stats.Report) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Transfers over time",
			Subtitle: fmt.Sprintf("Most active: %s (%d)", r.Summary.MostActiveDevice, r.Summary.MostActiveCount),
		}),
	)

	dates := make([]string, 0, len(r.Timeline))
	data := make([]opts.LineData, 0, len(r.Timeline))
	for _, dc := range r.Timeline {
		dates = append(dates, dc.Date)
		data = append(data, opts.LineData{Value: dc.Count})
	}
	line.SetXAxis(dates).
		AddSeries("Transfers", data).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

func OutcomeBar(r stats.Report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Successful vs failed transfers"}),
	)

	dates := make([]string, 0, len(r.Outcomes))
	ok := make([]opts.BarData, 0, len(r.Outcomes))
	failed := make([]opts.BarData, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		dates = append(dates, o.Date)
		ok = append(ok, opts.BarData{Value: o.Successful})
		failed = append(failed, opts.BarData{Value: o.Failed})
	}
	bar.SetXAxis(dates).
		AddSeries("Successful", ok).
		AddSeries("Failed", failed)
	return bar
}

// TypeLabel is the display name of a file type bucket.
func TypeLabel(fileType string) string {
	if fileType == "" {
		return UntypedLabel
	}
	return fileType
}
