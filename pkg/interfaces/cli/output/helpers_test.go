package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vsinha/oee/pkg/application/dto"
	"github.com/vsinha/oee/pkg/application/services/reporting"
	"github.com/vsinha/oee/pkg/application/services/scenario"
	"github.com/vsinha/oee/pkg/domain/entities"
	"github.com/vsinha/oee/pkg/domain/services"
)

func sampleTable(days int) *entities.Table {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tbl := &entities.Table{Columns: append(entities.RequiredColumns(), "Shift")}
	for i := 0; i < days; i++ {
		tbl.Records = append(tbl.Records, entities.ProductionRecord{
			Date:                  start.AddDate(0, 0, i),
			PlannedProductionTime: 480,
			Downtime:              float64(30 + 15*(i%4)),
			IdealCycleTime:        1.0,
			TotalOutput:           float64(400 - 12*(i%5)),
			DefectQuantity:        float64(4 + 3*(i%3)),
			MaterialCost:          100 + float64(5*(i%4)),
			LaborCost:             55,
			OverheadCost:          20,
			Attributes:            map[string]string{"Shift": "A"},
		})
	}
	return tbl
}

func sampleResult(t *testing.T, days int) *dto.AnalysisResult {
	t.Helper()
	raw := sampleTable(days)
	derived := services.DeriveTable(raw)

	report, err := reporting.NewService(reporting.Config{}, nil).Build(derived)
	require.NoError(t, err)
	sim, err := scenario.NewSimulator(scenario.DefaultDowntimeFactor, nil).Run(derived)
	require.NoError(t, err)

	preview := raw.Records
	if len(preview) > dto.PreviewRows {
		preview = preview[:dto.PreviewRows]
	}
	return &dto.AnalysisResult{
		Source:   "plant.xlsx",
		LoadedAt: time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC),
		Columns:  raw.Columns,
		Preview:  preview,
		Table:    derived,
		Report:   report,
		Scenario: sim,
	}
}
