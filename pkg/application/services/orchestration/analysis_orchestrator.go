package orchestration

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/oee/pkg/application/dto"
	"github.com/vsinha/oee/pkg/application/services/reporting"
	"github.com/vsinha/oee/pkg/application/services/scenario"
	"github.com/vsinha/oee/pkg/domain/repositories"
	"github.com/vsinha/oee/pkg/domain/services"
)

// AnalysisOrchestrator runs the batch pipeline: load, derive, report, simulate.
// Each stage receives the previous stage's output and nothing is shared
// between runs.
type AnalysisOrchestrator struct {
	source    repositories.TableSource
	reporter  *reporting.Service
	simulator *scenario.Simulator
	logger    *zap.Logger
}

// NewAnalysisOrchestrator creates a new analysis orchestrator
func NewAnalysisOrchestrator(
	source repositories.TableSource,
	reporter *reporting.Service,
	simulator *scenario.Simulator,
	logger *zap.Logger,
) *AnalysisOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisOrchestrator{
		source:    source,
		reporter:  reporter,
		simulator: simulator,
		logger:    logger,
	}
}

// Run analyzes the production log at path. The first failing stage aborts
// the run.
func (ao *AnalysisOrchestrator) Run(path string) (*dto.AnalysisResult, error) {
	start := time.Now()

	raw, err := ao.source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load production log: %w", err)
	}
	ao.logger.Info("production log loaded",
		zap.String("path", path),
		zap.Int("rows", raw.Len()),
		zap.Strings("columns", raw.Columns))

	preview := raw.Records
	if len(preview) > dto.PreviewRows {
		preview = preview[:dto.PreviewRows]
	}

	derived := services.DeriveTable(raw)
	ao.logger.Debug("metrics derived", zap.Int("columns", len(derived.Columns)))

	report, err := ao.reporter.Build(derived)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	optimized, err := ao.simulator.Run(derived)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate scenario: %w", err)
	}

	return &dto.AnalysisResult{
		Source:   path,
		LoadedAt: start,
		Columns:  raw.Columns,
		Preview:  preview,
		Table:    derived,
		Report:   report,
		Scenario: optimized,
		Elapsed:  time.Since(start),
	}, nil
}
