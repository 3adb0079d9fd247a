package output

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vsinha/oee/pkg/application/services/reporting"
)

var (
	barColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineColor  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	pointColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	nanColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// PlotRenderer writes each chart as a PNG file under Dir
type PlotRenderer struct {
	Dir    string
	Width  vg.Length
	Height vg.Length

	logger  *zap.Logger
	written []string
}

// Verify interface compliance
var _ ChartRenderer = (*PlotRenderer)(nil)

// NewPlotRenderer creates a PNG renderer; width and height are in inches.
func NewPlotRenderer(dir string, width, height float64, logger *zap.Logger) *PlotRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlotRenderer{
		Dir:    dir,
		Width:  vg.Length(width) * vg.Inch,
		Height: vg.Length(height) * vg.Inch,
		logger: logger,
	}
}

// Written returns the paths of the charts saved so far.
func (pr *PlotRenderer) Written() []string {
	return append([]string(nil), pr.written...)
}

// Histogram draws pre-binned counts as adjoining bars.
func (pr *PlotRenderer) Histogram(chart ChartSpec, h reporting.Histogram) error {
	p := pr.newPlot(chart)

	bins := make([]plotter.HistogramBin, len(h.Counts))
	for i, c := range h.Counts {
		bins[i] = plotter.HistogramBin{Min: h.Edges[i], Max: h.Edges[i+1], Weight: c}
	}
	width := 0.0
	if len(h.Edges) > 1 {
		width = h.Edges[1] - h.Edges[0]
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     width,
		FillColor: barColor,
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(hist)

	return pr.save(p, chart)
}

// Bar draws one bar per label in the given order. Non-finite values are
// drawn as zero-height bars.
func (pr *PlotRenderer) Bar(chart ChartSpec, labels []string, values []float64) error {
	if len(labels) != len(values) {
		return fmt.Errorf("bar chart has %d labels for %d values", len(labels), len(values))
	}
	p := pr.newPlot(chart)

	vals := make(plotter.Values, len(values))
	skipped := 0
	for i, v := range values {
		if isFinite(v) {
			vals[i] = v
		} else {
			skipped++
		}
	}
	pr.logSkipped(chart, skipped)

	if len(vals) > 0 {
		bars, err := plotter.NewBarChart(vals, vg.Points(8))
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		bars.Color = barColor
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		p.NominalX(labels...)
	}
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return pr.save(p, chart)
}

// Heatmap draws the correlation matrix with the first column at the top
// left and each cell annotated with its coefficient.
func (pr *PlotRenderer) Heatmap(chart ChartSpec, m reporting.CorrelationMatrix) error {
	p := pr.newPlot(chart)
	n := len(m.Columns)
	if n == 0 {
		return pr.save(p, chart)
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)

	hm := plotter.NewHeatMap(correlationGrid{m: m}, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = nanColor
	p.Add(hm)

	xys := make(plotter.XYs, 0, n*n)
	text := make([]string, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(n - 1 - r)})
			text = append(text, reporting.FormatNumber(m.Values[r][c], 2))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return fmt.Errorf("heatmap labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	reversed := make([]string, n)
	for i, col := range m.Columns {
		reversed[n-1-i] = col
	}
	p.NominalX(m.Columns...)
	p.NominalY(reversed...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	return pr.save(p, chart)
}

// TimeSeries draws values against dates in the given order. Points with a
// missing date or non-finite value are left out of the line.
func (pr *PlotRenderer) TimeSeries(chart ChartSpec, dates []time.Time, values []float64) error {
	if len(dates) != len(values) {
		return fmt.Errorf("time series has %d dates for %d values", len(dates), len(values))
	}
	p := pr.newPlot(chart)
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	xys := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if dates[i].IsZero() || !isFinite(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(dates[i].Unix()), Y: v})
	}
	pr.logSkipped(chart, len(values)-len(xys))

	if len(xys) > 0 {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("line: %w", err)
		}
		line.Color = lineColor
		line.Width = vg.Points(1.5)
		p.Add(line)
	}
	p.Add(plotter.NewGrid())

	return pr.save(p, chart)
}

// Scatter draws unaggregated (x, y) points, skipping non-finite pairs.
func (pr *PlotRenderer) Scatter(chart ChartSpec, s reporting.Scatter) error {
	p := pr.newPlot(chart)

	xys := make(plotter.XYs, 0, len(s.Points))
	for _, pt := range s.Points {
		if isFinite(pt.X) && isFinite(pt.Y) {
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
	}
	pr.logSkipped(chart, len(s.Points)-len(xys))

	if len(xys) > 0 {
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		scatter.GlyphStyle.Color = pointColor
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}
	p.Add(plotter.NewGrid())

	return pr.save(p, chart)
}

func (pr *PlotRenderer) newPlot(chart ChartSpec) *plot.Plot {
	p := plot.New()
	p.Title.Text = chart.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	return p
}

func (pr *PlotRenderer) save(p *plot.Plot, chart ChartSpec) error {
	if err := os.MkdirAll(pr.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create charts directory: %w", err)
	}
	path := filepath.Join(pr.Dir, chart.Name+".png")
	if err := p.Save(pr.Width, pr.Height, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	pr.written = append(pr.written, path)
	pr.logger.Debug("chart written", zap.String("chart", chart.Name), zap.String("path", path))
	return nil
}

func (pr *PlotRenderer) logSkipped(chart ChartSpec, skipped int) {
	if skipped > 0 {
		pr.logger.Warn("non-finite points not drawn",
			zap.String("chart", chart.Name), zap.Int("points", skipped))
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// correlationGrid adapts a correlation matrix to plotter.GridXYZ with row 0
// drawn at the top.
type correlationGrid struct {
	m reporting.CorrelationMatrix
}

func (g correlationGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g correlationGrid) Z(c, r int) float64 {
	n := len(g.m.Columns)
	return g.m.Values[n-1-r][c]
}

func (g correlationGrid) X(c int) float64 {
	return float64(c)
}

func (g correlationGrid) Y(r int) float64 {
	return float64(r)
}
