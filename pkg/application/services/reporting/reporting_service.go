package reporting

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// ErrNotDerived is returned when a report is requested for a raw table.
var ErrNotDerived = errors.New("table has not been derived")

// Config controls the reporting views
type Config struct {
	HistogramBins      int
	CorrelationColumns []string
}

// Report bundles every view over one derived table
type Report struct {
	AverageOEE        float64           `json:"average_oee"`
	AverageOEEPercent float64           `json:"average_oee_percent"`
	Histogram         Histogram         `json:"defect_histogram"`
	Pareto            ParetoSummary     `json:"pareto"`
	Correlation       CorrelationMatrix `json:"correlation"`
	Trend             Trend             `json:"trend"`
	CostScatter       Scatter           `json:"cost_scatter"`
	CorrOEEDowntime   float64           `json:"corr_oee_downtime"`
	CorrOEECost       float64           `json:"corr_oee_cost"`
	Insights          []string          `json:"insights"`
}

// Service computes reports over derived production tables
type Service struct {
	config Config
	logger *zap.Logger
}

// NewService creates a reporting service. Zero config values fall back to defaults.
func NewService(config Config, logger *zap.Logger) *Service {
	if config.HistogramBins == 0 {
		config.HistogramBins = DefaultHistogramBins
	}
	if len(config.CorrelationColumns) == 0 {
		config.CorrelationColumns = DefaultCorrelationColumns
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{config: config, logger: logger}
}

// Build computes every view. The table is only read.
func (s *Service) Build(t *entities.Table) (*Report, error) {
	if !t.Derived {
		return nil, ErrNotDerived
	}

	oee, err := t.Column(entities.ColOEE)
	if err != nil {
		return nil, err
	}
	report := &Report{AverageOEE: Mean(oee)}
	report.AverageOEEPercent = Percent(report.AverageOEE, 2)

	report.Histogram, err = DefectHistogram(t, s.config.HistogramBins)
	if err != nil {
		return nil, fmt.Errorf("defect histogram: %w", err)
	}
	if report.Histogram.Excluded > 0 {
		s.logger.Warn("defect values without a histogram bin",
			zap.Int("excluded", report.Histogram.Excluded))
	}

	report.Pareto = Pareto(t)

	report.Correlation, err = NewCorrelationMatrix(t, s.config.CorrelationColumns)
	if err != nil {
		return nil, err
	}

	report.Trend = CycleLeadTrend(t)
	report.CostScatter = CostScatter(t)

	report.CorrOEEDowntime, err = ColumnCorrelation(t, entities.ColOEE, entities.ColDowntime)
	if err != nil {
		return nil, err
	}
	report.CorrOEECost, err = ColumnCorrelation(t, entities.ColOEE, entities.ColCostPerGoodUnit)
	if err != nil {
		return nil, err
	}

	report.Insights = Insights(InsightInputs{
		AverageOEE:      report.AverageOEE,
		CorrOEEDowntime: report.CorrOEEDowntime,
		CorrOEECost:     report.CorrOEECost,
	})

	s.logger.Debug("report built",
		zap.Int("rows", t.Len()),
		zap.Float64("average_oee", report.AverageOEE),
		zap.Int("histogram_bins", len(report.Histogram.Counts)))

	return report, nil
}
