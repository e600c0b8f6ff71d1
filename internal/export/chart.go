package export

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cloud-ru/mcp-financing-go/pkg/utils"
)

// ChartExporter формирует HTML-страницу с годовой диаграммой выплат и остатка долга
type ChartExporter struct{}

func NewChartExporter() *ChartExporter { return &ChartExporter{} }

func (e *ChartExporter) Format() string { return "html" }

func (e *ChartExporter) Export(ctx context.Context, snap Snapshot) (*Document, error) {
	if err := validate(snap); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	points := snap.Result.YearlyData
	years := make([]string, 0, len(points))
	interest := make([]opts.BarData, 0, len(points))
	principal := make([]opts.BarData, 0, len(points))
	remaining := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		years = append(years, strconv.Itoa(p.Year))
		interest = append(interest, opts.BarData{Value: utils.Round2(p.Interest)})
		principal = append(principal, opts.BarData{Value: utils.Round2(p.Principal)})
		remaining = append(remaining, opts.LineData{Value: utils.Round2(p.RemainingDebt)})
	}

	subtitle := "Loan " + money(snap.Result.LoanAmount)
	if snap.Metadata.CustomerName != "" {
		subtitle = snap.Metadata.CustomerName + " · " + subtitle
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Financing overview"}),
		charts.WithTitleOpts(opts.Title{Title: "Yearly repayment", Subtitle: subtitle}),
	)
	bar.SetXAxis(years).
		AddSeries("Interest", interest, charts.WithBarChartOpts(opts.BarChart{Stack: "payments"})).
		AddSeries("Principal", principal, charts.WithBarChartOpts(opts.BarChart{Stack: "payments"}))

	line := charts.NewLine()
	line.SetXAxis(years).AddSeries("Remaining debt", remaining)
	bar.Overlap(line)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return newDocument(snap, e.Format(), "html", "text/html; charset=utf-8", buf.Bytes()), nil
}
