package output

import (
	"fmt"
	"time"

	"github.com/vsinha/oee/pkg/application/services/reporting"
)

// ChartSpec names and labels one chart.
type ChartSpec struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
}

// ChartRenderer draws data series. Implementations decide the target
// (image files, a window, a test recorder); callers only supply data.
type ChartRenderer interface {
	Histogram(chart ChartSpec, h reporting.Histogram) error
	Bar(chart ChartSpec, labels []string, values []float64) error
	Heatmap(chart ChartSpec, m reporting.CorrelationMatrix) error
	TimeSeries(chart ChartSpec, dates []time.Time, values []float64) error
	Scatter(chart ChartSpec, s reporting.Scatter) error
}

// Chart specs in render order.
var (
	DefectHistogramChart = ChartSpec{Name: "defect_histogram", Title: "Histogram - Defect Quantity", XLabel: "Defect Quantity", YLabel: "Frequency"}
	ParetoChart          = ChartSpec{Name: "pareto_defects", Title: "Pareto - Defect by Day", XLabel: "Date", YLabel: "Defect Quantity"}
	CorrelationChart     = ChartSpec{Name: "correlation_matrix", Title: "Correlation Matrix"}
	CycleTimeChart       = ChartSpec{Name: "cycle_time_trend", Title: "Cycle Time Trend", XLabel: "Date", YLabel: "Cycle Time"}
	LeadTimeChart        = ChartSpec{Name: "lead_time_trend", Title: "Lead Time Trend", XLabel: "Date", YLabel: "Lead Time"}
	CostScatterChart     = ChartSpec{Name: "oee_vs_cost", Title: "OEE vs Cost per Good Unit", XLabel: "OEE", YLabel: "Cost per Good Unit"}
)

// RenderCharts draws every chart of a report, stopping at the first failure.
func RenderCharts(r ChartRenderer, report *reporting.Report) error {
	steps := []struct {
		chart  ChartSpec
		render func() error
	}{
		{DefectHistogramChart, func() error { return r.Histogram(DefectHistogramChart, report.Histogram) }},
		{ParetoChart, func() error { return r.Bar(ParetoChart, report.Pareto.Labels(), report.Pareto.Values()) }},
		{CorrelationChart, func() error { return r.Heatmap(CorrelationChart, report.Correlation) }},
		{CycleTimeChart, func() error { return r.TimeSeries(CycleTimeChart, report.Trend.Dates, report.Trend.CycleTime) }},
		{LeadTimeChart, func() error { return r.TimeSeries(LeadTimeChart, report.Trend.Dates, report.Trend.LeadTime) }},
		{CostScatterChart, func() error { return r.Scatter(CostScatterChart, report.CostScatter) }},
	}

	for _, step := range steps {
		if err := step.render(); err != nil {
			return fmt.Errorf("render %s: %w", step.chart.Name, err)
		}
	}
	return nil
}
