package dto

import (
	"time"

	"github.com/vsinha/oee/pkg/application/services/reporting"
	"github.com/vsinha/oee/pkg/application/services/scenario"
	"github.com/vsinha/oee/pkg/domain/entities"
)

// PreviewRows is the number of loaded rows echoed before analysis.
const PreviewRows = 5

// AnalysisResult contains the complete output of one analysis run
type AnalysisResult struct {
	Source   string
	LoadedAt time.Time
	Columns  []string
	Preview  []entities.ProductionRecord
	Table    *entities.Table
	Report   *reporting.Report
	Scenario *scenario.Result
	Elapsed  time.Duration
}
