package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// GenerateSheet is the sheet name of generated workbooks.
const GenerateSheet = "Production"

// GenerateConfig holds configuration for sample workbook generation
type GenerateConfig struct {
	Output  string    // Workbook path to write
	Days    int       // Number of daily rows
	Start   time.Time // First production day; zero means 2024-01-01
	Seed    int64     // Random seed for reproducible generation
	Help    bool      // Show help
	Verbose bool      // Verbose output
	Stdout  io.Writer // nil means os.Stdout
}

// GenerateCommand writes a synthetic daily production log
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
	out    io.Writer
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if config.Start.IsZero() {
		config.Start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	out := config.Stdout
	if out == nil {
		out = os.Stdout
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
		out:    out,
	}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}
	if cmd.config.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if cmd.config.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", cmd.config.Days)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "🔧 Generating %d production days from %s\n",
			cmd.config.Days, cmd.config.Start.Format("2006-01-02"))
		fmt.Fprintf(cmd.out, "📁 Output file: %s\n", cmd.config.Output)
		fmt.Fprintf(cmd.out, "🎲 Random seed: %d\n", cmd.config.Seed)
	}

	if dir := filepath.Dir(cmd.config.Output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GenerateSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, 0, len(entities.RequiredColumns()))
	for _, col := range entities.RequiredColumns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(GenerateSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for day := 0; day < cmd.config.Days; day++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := cmd.generateDay(day)
		cell, err := excelize.CoordinatesToCellName(1, day+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(GenerateSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write day %d: %w", day+1, err)
		}
	}

	if err := f.SaveAs(cmd.config.Output); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "✅ Workbook generated successfully: %s\n", cmd.config.Output)
	}
	return nil
}

// generateDay produces one row in RequiredColumns order. Output is bounded
// by the operating time so that Performance stays at or below one.
func (cmd *GenerateCommand) generateDay(day int) []interface{} {
	planned := 480.0
	downtime := float64(10 + cmd.rand.Intn(111))
	idealCycle := cmd.money(0.8 + 0.4*cmd.rand.Float64())

	capacity := (planned - downtime) / idealCycle
	output := float64(int(capacity * (0.75 + 0.25*cmd.rand.Float64())))
	defects := float64(cmd.rand.Intn(int(output*0.05) + 1))

	material := cmd.money(80 + 60*cmd.rand.Float64())
	labor := cmd.money(40 + 30*cmd.rand.Float64())
	overhead := cmd.money(15 + 15*cmd.rand.Float64())

	return []interface{}{
		cmd.config.Start.AddDate(0, 0, day),
		planned,
		downtime,
		idealCycle,
		output,
		defects,
		material,
		labor,
		overhead,
	}
}

func (cmd *GenerateCommand) money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// printHelp displays help information for the generate command
func (cmd *GenerateCommand) printHelp() {
	fmt.Fprintf(cmd.out, `OEE Sample Generator - write a synthetic daily production workbook

USAGE:
    oee generate -output <file.xlsx> [options]

OPTIONS:
    -output <file>  Workbook to write (required)
    -days <n>       Number of production days (default: 30)
    -start <date>   First production day, YYYY-MM-DD (default: 2024-01-01)
    -seed <n>       Random seed for reproducible generation (default: current time)
    -verbose        Enable verbose output
    -help           Show this help message

EXAMPLES:
    oee generate -output data/sample.xlsx
    oee generate -output data/quarter.xlsx -days 90 -seed 7 -verbose
`)
}
