package reporting

import (
	"time"

	"github.com/vsinha/oee/pkg/domain/entities"
	"github.com/vsinha/oee/pkg/domain/services"
)

// buildTable derives a table from (downtime, output, defects, material) tuples
// on consecutive days starting 2024-01-01.
func buildTable(rows ...[4]float64) *entities.Table {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tbl := &entities.Table{Columns: entities.RequiredColumns()}
	for i, r := range rows {
		tbl.Records = append(tbl.Records, entities.ProductionRecord{
			Date:                  start.AddDate(0, 0, i),
			PlannedProductionTime: 480,
			Downtime:              r[0],
			IdealCycleTime:        1.0,
			TotalOutput:           r[1],
			DefectQuantity:        r[2],
			MaterialCost:          r[3],
			LaborCost:             50 + float64(i),
			OverheadCost:          20,
		})
	}
	return services.DeriveTable(tbl)
}

func weekTable() *entities.Table {
	return buildTable(
		[4]float64{60, 350, 10, 100},
		[4]float64{30, 400, 4, 95},
		[4]float64{90, 320, 18, 120},
		[4]float64{45, 380, 10, 98},
		[4]float64{120, 300, 25, 130},
		[4]float64{15, 430, 2, 90},
		[4]float64{75, 340, 10, 110},
	)
}
