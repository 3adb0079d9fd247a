package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/vsinha/oee/pkg/application/dto"
	"github.com/vsinha/oee/pkg/application/services/reporting"
	"github.com/vsinha/oee/pkg/domain/entities"
)

// Config holds configuration for console output generation
type Config struct {
	Format  string
	Verbose bool
	Charts  []string
}

// Generate writes the analysis result to w in the configured format
func Generate(w io.Writer, result *dto.AnalysisResult, config Config) error {
	switch config.Format {
	case "", "text":
		return generateTextOutput(w, result, config)
	case "json":
		return generateJSONOutput(w, result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates the human-readable console report
func generateTextOutput(w io.Writer, result *dto.AnalysisResult, config Config) error {
	var out strings.Builder

	out.WriteString("Preview Data:\n")
	writePreview(&out, result.Columns, result.Preview)
	out.WriteString("\n")

	report := result.Report
	fmt.Fprintf(&out, "Average OEE Before Optimization: %s %%\n",
		reporting.FormatNumber(report.AverageOEEPercent, 2))
	fmt.Fprintf(&out, "Average Cycle Time: %s minutes/unit\n",
		reporting.FormatNumber(report.Trend.AverageCycleTime, 4))
	fmt.Fprintf(&out, "Average Lead Time: %s minutes per day\n",
		reporting.FormatNumber(report.Trend.AverageLeadTime, 2))
	fmt.Fprintf(&out, "OEE After Optimization: %s %%\n",
		reporting.FormatNumber(result.Scenario.AverageOEEPercent, 2))

	out.WriteString("\n***** PRODUCTION INSIGHTS *****\n")
	for _, line := range report.Insights {
		out.WriteString(line)
		out.WriteString("\n")
	}

	if config.Verbose {
		out.WriteString("\n")
		fmt.Fprintf(&out, "Rows analyzed: %d\n", result.Table.Len())
		fmt.Fprintf(&out, "Analysis time: %v\n", result.Elapsed)
		for _, path := range config.Charts {
			fmt.Fprintf(&out, "Chart: %s\n", path)
		}
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func writePreview(out *strings.Builder, columns []string, records []entities.ProductionRecord) {
	widths := make([]int, len(columns))
	cells := make([][]string, len(records))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for r := range records {
		cells[r] = make([]string, len(columns))
		for c, col := range columns {
			cells[r][c] = previewCell(&records[r], col)
			if len(cells[r][c]) > widths[c] {
				widths[c] = len(cells[r][c])
			}
		}
	}

	for c, col := range columns {
		fmt.Fprintf(out, "%-*s  ", widths[c], col)
	}
	out.WriteString("\n")
	for r := range cells {
		for c := range columns {
			fmt.Fprintf(out, "%-*s  ", widths[c], cells[r][c])
		}
		out.WriteString("\n")
	}
}

func previewCell(r *entities.ProductionRecord, column string) string {
	if column == entities.ColDate {
		return reporting.DateLabel(*r)
	}
	if v, ok := r.Attributes[column]; ok {
		return v
	}
	v, err := r.Value(column)
	if err != nil {
		return ""
	}
	return reporting.FormatNumber(v, 4)
}

// jsonFloat encodes NaN as null and infinities as strings, which
// encoding/json rejects for plain float64.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte("null"), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(v)
}

func jsonFloats(vs []float64) []jsonFloat {
	out := make([]jsonFloat, len(vs))
	for i, v := range vs {
		out[i] = jsonFloat(v)
	}
	return out
}

type jsonParetoEntry struct {
	Label          string    `json:"label"`
	Row            int       `json:"row"`
	DefectQuantity jsonFloat `json:"defect_quantity"`
	CumPercent     jsonFloat `json:"cum_percent"`
}

type jsonReport struct {
	Metadata struct {
		Source      string   `json:"source"`
		GeneratedAt string   `json:"generated_at"`
		Rows        int      `json:"rows"`
		Columns     []string `json:"columns"`
		Charts      []string `json:"charts,omitempty"`
	} `json:"metadata"`
	Summary struct {
		AverageOEEPercent          jsonFloat `json:"average_oee_percent"`
		AverageCycleTime           jsonFloat `json:"average_cycle_time"`
		AverageLeadTime            jsonFloat `json:"average_lead_time"`
		OptimizedAverageOEEPercent jsonFloat `json:"optimized_average_oee_percent"`
		DowntimeFactor             float64   `json:"downtime_factor"`
		CorrOEEDowntime            jsonFloat `json:"corr_oee_downtime"`
		CorrOEECost                jsonFloat `json:"corr_oee_cost"`
		Tier                       string    `json:"tier"`
	} `json:"summary"`
	Histogram struct {
		Edges    []jsonFloat `json:"edges"`
		Counts   []jsonFloat `json:"counts"`
		Excluded int         `json:"excluded"`
	} `json:"defect_histogram"`
	Pareto      []jsonParetoEntry `json:"pareto"`
	Correlation struct {
		Columns []string      `json:"columns"`
		Values  [][]jsonFloat `json:"values"`
	} `json:"correlation"`
	Insights []string `json:"insights"`
}

// generateJSONOutput writes the summary and views as JSON
func generateJSONOutput(w io.Writer, result *dto.AnalysisResult, config Config) error {
	report := result.Report

	var jr jsonReport
	jr.Metadata.Source = result.Source
	jr.Metadata.GeneratedAt = time.Now().Format(time.RFC3339)
	jr.Metadata.Rows = result.Table.Len()
	jr.Metadata.Columns = result.Table.Columns
	jr.Metadata.Charts = config.Charts

	jr.Summary.AverageOEEPercent = jsonFloat(report.AverageOEEPercent)
	jr.Summary.AverageCycleTime = jsonFloat(report.Trend.AverageCycleTime)
	jr.Summary.AverageLeadTime = jsonFloat(report.Trend.AverageLeadTime)
	jr.Summary.OptimizedAverageOEEPercent = jsonFloat(result.Scenario.AverageOEEPercent)
	jr.Summary.DowntimeFactor = result.Scenario.DowntimeFactor
	jr.Summary.CorrOEEDowntime = jsonFloat(reporting.Round(report.CorrOEEDowntime, 2))
	jr.Summary.CorrOEECost = jsonFloat(reporting.Round(report.CorrOEECost, 2))
	jr.Summary.Tier = reporting.OEETier(report.AverageOEE)

	jr.Histogram.Edges = jsonFloats(report.Histogram.Edges)
	jr.Histogram.Counts = jsonFloats(report.Histogram.Counts)
	jr.Histogram.Excluded = report.Histogram.Excluded

	jr.Pareto = make([]jsonParetoEntry, len(report.Pareto.Entries))
	for i, e := range report.Pareto.Entries {
		jr.Pareto[i] = jsonParetoEntry{
			Label:          e.Label,
			Row:            e.Row,
			DefectQuantity: jsonFloat(e.DefectQuantity),
			CumPercent:     jsonFloat(e.CumPercent),
		}
	}

	jr.Correlation.Columns = report.Correlation.Columns
	jr.Correlation.Values = make([][]jsonFloat, len(report.Correlation.Values))
	for i, row := range report.Correlation.Values {
		jr.Correlation.Values[i] = jsonFloats(row)
	}
	jr.Insights = report.Insights

	jsonBytes, err := json.MarshalIndent(jr, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", jsonBytes)
	return err
}
