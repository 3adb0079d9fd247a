package testing

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// ReferenceDay is the first day of every generated production log.
var ReferenceDay = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// BuildReferenceRecord builds the single worked example row:
// 480 min planned, 60 min down, 1.0 min ideal cycle, 350 units, 10 defects.
// Its OEE is 70.83 % before and 72.86 % after a 0.8 downtime reduction.
func BuildReferenceRecord() entities.ProductionRecord {
	return entities.ProductionRecord{
		Date:                  ReferenceDay,
		PlannedProductionTime: 480,
		Downtime:              60,
		IdealCycleTime:        1.0,
		TotalOutput:           350,
		DefectQuantity:        10,
		MaterialCost:          100,
		LaborCost:             50,
		OverheadCost:          20,
	}
}

// BuildReferenceTable wraps BuildReferenceRecord in a raw table.
func BuildReferenceTable() *entities.Table {
	return &entities.Table{
		Columns: entities.RequiredColumns(),
		Records: []entities.ProductionRecord{BuildReferenceRecord()},
	}
}

// BuildProductionLog builds a raw log of consecutive days. Downtime grows
// and output shrinks day over day, so OEE falls as downtime rises. Each row
// carries a Shift attribute.
func BuildProductionLog(days int) *entities.Table {
	tbl := &entities.Table{Columns: append(entities.RequiredColumns(), "Shift")}
	for i := 0; i < days; i++ {
		shift := "A"
		if i%2 == 1 {
			shift = "B"
		}
		tbl.Records = append(tbl.Records, entities.ProductionRecord{
			Date:                  ReferenceDay.AddDate(0, 0, i),
			PlannedProductionTime: 480,
			Downtime:              float64(20 + 10*i),
			IdealCycleTime:        1.0,
			TotalOutput:           float64(420 - 10*i),
			DefectQuantity:        float64(5 + i),
			MaterialCost:          100 + float64(3*i),
			LaborCost:             50,
			OverheadCost:          20,
			Attributes:            map[string]string{"Shift": shift},
		})
	}
	return tbl
}

// Rows renders a raw table as header plus string cells, dates as
// YYYY-MM-DD and nulls as empty cells.
func Rows(tbl *entities.Table) [][]string {
	rows := [][]string{append([]string(nil), tbl.Columns...)}
	for i := range tbl.Records {
		r := &tbl.Records[i]
		row := make([]string, len(tbl.Columns))
		for c, col := range tbl.Columns {
			row[c] = cellText(r, col)
		}
		rows = append(rows, row)
	}
	return rows
}

func cellText(r *entities.ProductionRecord, col string) string {
	if col == entities.ColDate {
		if r.Date.IsZero() {
			return ""
		}
		return r.Date.Format("2006-01-02")
	}
	if v, ok := r.Attributes[col]; ok {
		return v
	}
	v, err := r.Value(col)
	if err != nil || math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes a raw table to path as comma separated values.
func WriteCSV(path string, tbl *entities.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(Rows(tbl)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteWorkbook writes a raw table to the first sheet of a new workbook.
// Numeric cells are stored as numbers and dates as text.
func WriteWorkbook(path string, tbl *entities.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range Rows(tbl) {
		values := make([]interface{}, len(row))
		for c, text := range row {
			if v, err := strconv.ParseFloat(text, 64); err == nil && r > 0 {
				values[c] = v
			} else {
				values[c] = text
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	return f.SaveAs(path)
}
