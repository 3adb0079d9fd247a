package services

import "github.com/vsinha/oee/pkg/domain/entities"

// Derive computes the derived metrics of a single record from its raw fields.
// Each step reads only columns computed by earlier steps. Zero denominators
// yield IEEE-754 Inf or NaN and are not treated as errors.
func Derive(r entities.ProductionRecord) entities.ProductionRecord {
	out := r.Clone()

	out.OperatingTime = out.PlannedProductionTime - out.Downtime
	out.Availability = out.OperatingTime / out.PlannedProductionTime
	out.Performance = (out.IdealCycleTime * out.TotalOutput) / out.OperatingTime
	out.GoodOutput = out.TotalOutput - out.DefectQuantity
	out.Quality = out.GoodOutput / out.TotalOutput
	out.OEE = out.Availability * out.Performance * out.Quality

	out.CycleTime = out.OperatingTime / out.TotalOutput
	// Kept as written rather than reduced to OperatingTime: the product
	// differs from OperatingTime when TotalOutput is 0 or Inf.
	out.LeadTime = out.CycleTime * out.TotalOutput

	out.TotalCost = out.MaterialCost + out.LaborCost + out.OverheadCost
	out.CostPerGoodUnit = out.TotalCost / out.GoodOutput

	return out
}

// DeriveTable returns a new table with every record derived. The input
// table is left untouched.
func DeriveTable(t *entities.Table) *entities.Table {
	out := &entities.Table{
		Columns: make([]string, 0, len(t.Columns)+len(entities.DerivedColumns)),
		Records: make([]entities.ProductionRecord, len(t.Records)),
		Derived: true,
	}
	out.Columns = append(out.Columns, t.Columns...)
	for _, col := range entities.DerivedColumns {
		if !t.HasColumn(col) {
			out.Columns = append(out.Columns, col)
		}
	}

	for i, r := range t.Records {
		out.Records[i] = Derive(r)
	}
	return out
}
