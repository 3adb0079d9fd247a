package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/oee/pkg/application/services/reporting"
	"github.com/vsinha/oee/pkg/domain/entities"
)

// DefaultDowntimeFactor scales downtime by 0.8, a 20% reduction.
const DefaultDowntimeFactor = 0.8

// Result is the outcome of a downtime-reduction scenario
type Result struct {
	DowntimeFactor    float64         `json:"downtime_factor"`
	AverageOEE        float64         `json:"average_oee"`
	AverageOEEPercent float64         `json:"average_oee_percent"`
	Table             *entities.Table `json:"-"`
}

// Simulator replays part of the metric chain against a perturbed copy of a
// derived table
type Simulator struct {
	factor float64
	logger *zap.Logger
}

// NewSimulator creates a simulator that scales downtime by factor.
func NewSimulator(factor float64, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{factor: factor, logger: logger}
}

// Run clones t, scales Downtime and recomputes Operating_Time,
// Availability and OEE on the clone. Performance and Quality are carried
// over from the original derivation and not recomputed, even though
// Performance depends on Operating_Time. The input table is not modified.
func (s *Simulator) Run(t *entities.Table) (*Result, error) {
	if !t.Derived {
		return nil, fmt.Errorf("scenario: %w", reporting.ErrNotDerived)
	}

	optimized := t.Clone()
	for i := range optimized.Records {
		r := &optimized.Records[i]
		r.Downtime *= s.factor
		r.OperatingTime = r.PlannedProductionTime - r.Downtime
		r.Availability = r.OperatingTime / r.PlannedProductionTime
		r.OEE = r.Availability * r.Performance * r.Quality
	}

	oee, err := optimized.Column(entities.ColOEE)
	if err != nil {
		return nil, err
	}
	result := &Result{
		DowntimeFactor: s.factor,
		AverageOEE:     reporting.Mean(oee),
		Table:          optimized,
	}
	result.AverageOEEPercent = reporting.Percent(result.AverageOEE, 2)

	s.logger.Debug("downtime scenario simulated",
		zap.Float64("factor", s.factor),
		zap.Float64("average_oee", result.AverageOEE))

	return result, nil
}
