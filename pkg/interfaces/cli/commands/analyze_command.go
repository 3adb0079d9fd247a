package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/vsinha/oee/pkg/application/services/orchestration"
	"github.com/vsinha/oee/pkg/application/services/reporting"
	"github.com/vsinha/oee/pkg/application/services/scenario"
	"github.com/vsinha/oee/pkg/infrastructure/config"
	"github.com/vsinha/oee/pkg/infrastructure/logging"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/loader"
	"github.com/vsinha/oee/pkg/interfaces/cli/output"
)

// Config holds configuration for the analyze command. Empty fields fall
// back to the YAML config file, then to built-in defaults.
type Config struct {
	Input      string
	ConfigFile string
	ChartsDir  string
	Format     string
	NoCharts   bool
	Verbose    bool
	Help       bool

	// Stdout receives the report; nil means os.Stdout.
	Stdout io.Writer
	// Logger overrides the logger built from Verbose.
	Logger *zap.Logger
}

// AnalyzeCommand runs one OEE analysis over a production log
type AnalyzeCommand struct {
	config   Config
	settings *config.Config
	out      io.Writer
}

// NewAnalyzeCommand creates a new analyze command with the given configuration
func NewAnalyzeCommand(config Config) *AnalyzeCommand {
	out := config.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &AnalyzeCommand{config: config, out: out}
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	settings, err := c.resolveSettings()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	c.settings = settings

	logger := c.config.Logger
	if logger == nil {
		logger, err = logging.New(c.config.Verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	c.progress("🏭 OEE Analysis CLI\n")
	c.progress("Input file: %s\n", settings.Input)
	c.progress("Output format: %s\n\n", settings.Format)

	source, err := loader.ForPath(settings.Input, settings.Delimiter())
	if err != nil {
		return err
	}

	orchestrator := orchestration.NewAnalysisOrchestrator(
		source,
		reporting.NewService(reporting.Config{
			HistogramBins:      settings.HistogramBins,
			CorrelationColumns: settings.CorrelationColumns,
		}, logging.Named(logger, "reporting")),
		scenario.NewSimulator(settings.DowntimeFactor, logging.Named(logger, "scenario")),
		logging.Named(logger, "orchestrator"),
	)

	c.progress("📂 Loading production log...\n")
	result, err := orchestrator.Run(settings.Input)
	if err != nil {
		return err
	}
	c.progress("✅ Analysis completed in %v\n\n", result.Elapsed)

	var charts []string
	if !c.config.NoCharts {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.progress("📊 Rendering charts to %s...\n\n", settings.ChartsDir)
		renderer := output.NewPlotRenderer(
			settings.ChartsDir,
			settings.Chart.Width,
			settings.Chart.Height,
			logging.Named(logger, "charts"),
		)
		if err := output.RenderCharts(renderer, result.Report); err != nil {
			return fmt.Errorf("error rendering charts: %w", err)
		}
		charts = renderer.Written()
	}

	outputConfig := output.Config{
		Format:  settings.Format,
		Verbose: c.config.Verbose,
		Charts:  charts,
	}
	if err := output.Generate(c.out, result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	c.progress("\n🏁 OEE analysis complete!\n")
	return nil
}

// resolveSettings layers command-line values over the config file
func (c *AnalyzeCommand) resolveSettings() (*config.Config, error) {
	settings := config.Default()
	if c.config.ConfigFile != "" {
		loaded, err := config.Load(c.config.ConfigFile)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if c.config.Input != "" {
		settings.Input = c.config.Input
	}
	if c.config.ChartsDir != "" {
		settings.ChartsDir = c.config.ChartsDir
	}
	if c.config.Format != "" {
		settings.Format = c.config.Format
	}

	if settings.Input == "" {
		return nil, fmt.Errorf("no input file given; pass a path or set input in the config file")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// progress prints verbose progress lines in text mode only, so JSON
// output stays a single document whichever layer chose the format.
func (c *AnalyzeCommand) progress(format string, args ...any) {
	if !c.config.Verbose || c.settings == nil || c.settings.Format == "json" {
		return
	}
	fmt.Fprintf(c.out, format, args...)
}

// showHelp displays the help message
func (c *AnalyzeCommand) showHelp() {
	fmt.Fprintf(c.out, `OEE Analysis CLI - Overall Equipment Effectiveness for production logs

USAGE:
    oee [options] <production.xlsx|production.csv>
    oee generate [options]                 # Write a synthetic production workbook

OPTIONS:
    -input <file>       Production log (.xlsx or .csv); may also be given as argument
    -config <file>      YAML configuration file (optional)
    -charts <dir>       Directory for PNG charts (default: charts)
    -format <fmt>       Console format: text, json (default: text)
    -no-charts          Skip chart rendering
    -verbose            Enable verbose output
    -help               Show this help message

REQUIRED COLUMNS:
    Date, Planned_Production_Time, Downtime, Ideal_Cycle_Time, Total_Output,
    Defect_Quantity, Material_Cost, Labor_Cost, Overhead_Cost

CONFIG FILE:
    input: data/production.xlsx
    charts_dir: charts
    format: text
    histogram_bins: 15
    downtime_factor: 0.8
    correlation_columns: [OEE, Downtime, Defect_Quantity, Material_Cost, Labor_Cost]
    csv_delimiter: ","
    chart:
      width: 8
      height: 5

CHARTS:
    defect_histogram.png, pareto_defects.png, correlation_matrix.png,
    cycle_time_trend.png, lead_time_trend.png, oee_vs_cost.png

EXAMPLES:
    # Analyze a workbook
    oee data/production.xlsx

    # JSON summary without charts
    oee -format json -no-charts data/production.csv

    # Use a config file and a custom chart directory
    oee -config oee.yaml -charts out/charts -verbose

    # Generate 60 days of sample data
    oee generate -output data/sample.xlsx -days 60 -seed 42
`)
}
