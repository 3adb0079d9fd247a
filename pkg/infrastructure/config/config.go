package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultChartsDir      = "charts"
	DefaultHistogramBins  = 15
	DefaultDowntimeFactor = 0.8
	DefaultChartWidth     = 8.0
	DefaultChartHeight    = 5.0
	DefaultFormat         = "text"
)

// DefaultCorrelationColumns are correlated when the file names none.
var DefaultCorrelationColumns = []string{
	entities.ColOEE,
	entities.ColDowntime,
	entities.ColDefectQuantity,
	entities.ColMaterialCost,
	entities.ColLaborCost,
}

// Config is the analysis configuration. Fields map 1:1 to the YAML file;
// command-line flags override them.
type Config struct {
	// Input is the production log (.xlsx or .csv).
	Input string `yaml:"input"`

	// ChartsDir receives the rendered PNG charts.
	ChartsDir string `yaml:"charts_dir"`

	// Format selects console rendering: text | json.
	Format string `yaml:"format"`

	// HistogramBins is the number of equal-width defect bins.
	HistogramBins int `yaml:"histogram_bins"`

	// DowntimeFactor scales downtime in the optimization scenario.
	DowntimeFactor float64 `yaml:"downtime_factor"`

	// CorrelationColumns are the columns of the correlation heatmap.
	CorrelationColumns []string `yaml:"correlation_columns"`

	// CSVDelimiter overrides ',' for CSV input.
	CSVDelimiter string `yaml:"csv_delimiter"`

	Chart ChartConfig `yaml:"chart"`
}

// ChartConfig sizes rendered charts, in inches.
type ChartConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the YAML config file at path, applying defaults
// for any missing fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses raw YAML bytes into a Config and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants that defaults cannot repair.
func (c *Config) Validate() error {
	if c.HistogramBins < 1 {
		return fmt.Errorf("histogram_bins must be at least 1, got %d", c.HistogramBins)
	}
	if c.DowntimeFactor <= 0 || c.DowntimeFactor > 1 {
		return fmt.Errorf("downtime_factor must be in (0, 1], got %g", c.DowntimeFactor)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	if len([]rune(c.CSVDelimiter)) > 1 {
		return fmt.Errorf("csv_delimiter must be a single character, got %q", c.CSVDelimiter)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.Chart.Width, c.Chart.Height)
	}
	return nil
}

// Delimiter returns the CSV delimiter rune, or zero for the default.
func (c *Config) Delimiter() rune {
	for _, r := range c.CSVDelimiter {
		return r
	}
	return 0
}

func (c *Config) applyDefaults() {
	if c.ChartsDir == "" {
		c.ChartsDir = DefaultChartsDir
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.HistogramBins == 0 {
		c.HistogramBins = DefaultHistogramBins
	}
	if c.DowntimeFactor == 0 {
		c.DowntimeFactor = DefaultDowntimeFactor
	}
	if len(c.CorrelationColumns) == 0 {
		c.CorrelationColumns = append([]string(nil), DefaultCorrelationColumns...)
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = DefaultChartWidth
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = DefaultChartHeight
	}
}
