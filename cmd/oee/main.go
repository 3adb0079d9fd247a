package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vsinha/oee/pkg/interfaces/cli/commands"
)

func main() {
	ctx := context.Background()

	if len(os.Args) > 1 && os.Args[1] == "generate" {
		if err := runGenerate(ctx, os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Command line flags
	var (
		input      = flag.String("input", "", "Production log (.xlsx or .csv)")
		configFile = flag.String("config", "", "YAML configuration file (optional)")
		chartsDir  = flag.String("charts", "", "Directory for PNG charts (default: charts)")
		format     = flag.String("format", "", "Console format: text, json (default: text)")
		noCharts   = flag.Bool("no-charts", false, "Skip chart rendering")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *input == "" && flag.NArg() > 0 {
		*input = flag.Arg(0)
	}

	// Create command configuration
	config := commands.Config{
		Input:      *input,
		ConfigFile: *configFile,
		ChartsDir:  *chartsDir,
		Format:     *format,
		NoCharts:   *noCharts,
		Verbose:    *verbose,
		Help:       *help,
	}

	// Create and execute command
	cmd := commands.NewAnalyzeCommand(config)
	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		output  = fs.String("output", "", "Workbook to write")
		days    = fs.Int("days", 30, "Number of production days")
		start   = fs.String("start", "2024-01-01", "First production day (YYYY-MM-DD)")
		seed    = fs.Int64("seed", 0, "Random seed (0 = current time)")
		verbose = fs.Bool("verbose", false, "Enable verbose output")
		help    = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", *start, err)
	}

	cmd := commands.NewGenerateCommand(commands.GenerateConfig{
		Output:  *output,
		Days:    *days,
		Start:   startDate,
		Seed:    *seed,
		Verbose: *verbose,
		Help:    *help,
	})
	return cmd.Execute(ctx)
}
