package entities

import (
	"fmt"
	"math"
	"time"
)

// ProductionRecord is one observation (a plant-day or shift) from the
// production log together with the metrics derived from it.
//
// Numeric nulls are NaN. Derived fields are zero until the record has been
// run through the metric deriver.
type ProductionRecord struct {
	Date time.Time

	PlannedProductionTime float64
	Downtime              float64
	IdealCycleTime        float64
	TotalOutput           float64
	DefectQuantity        float64
	MaterialCost          float64
	LaborCost             float64
	OverheadCost          float64

	OperatingTime   float64
	Availability    float64
	Performance     float64
	GoodOutput      float64
	Quality         float64
	OEE             float64
	CycleTime       float64
	LeadTime        float64
	TotalCost       float64
	CostPerGoodUnit float64

	// Attributes holds pass-through text columns keyed by header name.
	Attributes map[string]string
	// Measures holds numeric columns outside the known schema.
	Measures map[string]float64
}

// Value returns the numeric value of a named column (raw, derived or extra measure).
func (r *ProductionRecord) Value(column string) (float64, error) {
	switch column {
	case ColPlannedProductionTime:
		return r.PlannedProductionTime, nil
	case ColDowntime:
		return r.Downtime, nil
	case ColIdealCycleTime:
		return r.IdealCycleTime, nil
	case ColTotalOutput:
		return r.TotalOutput, nil
	case ColDefectQuantity:
		return r.DefectQuantity, nil
	case ColMaterialCost:
		return r.MaterialCost, nil
	case ColLaborCost:
		return r.LaborCost, nil
	case ColOverheadCost:
		return r.OverheadCost, nil
	case ColOperatingTime:
		return r.OperatingTime, nil
	case ColAvailability:
		return r.Availability, nil
	case ColPerformance:
		return r.Performance, nil
	case ColGoodOutput:
		return r.GoodOutput, nil
	case ColQuality:
		return r.Quality, nil
	case ColOEE:
		return r.OEE, nil
	case ColCycleTime:
		return r.CycleTime, nil
	case ColLeadTime:
		return r.LeadTime, nil
	case ColTotalCost:
		return r.TotalCost, nil
	case ColCostPerGoodUnit:
		return r.CostPerGoodUnit, nil
	}
	if v, ok := r.Measures[column]; ok {
		return v, nil
	}
	return math.NaN(), fmt.Errorf("unknown numeric column: %s", column)
}

// SetRaw assigns a raw numeric input column. Unknown names are stored as extra measures.
func (r *ProductionRecord) SetRaw(column string, v float64) {
	switch column {
	case ColPlannedProductionTime:
		r.PlannedProductionTime = v
	case ColDowntime:
		r.Downtime = v
	case ColIdealCycleTime:
		r.IdealCycleTime = v
	case ColTotalOutput:
		r.TotalOutput = v
	case ColDefectQuantity:
		r.DefectQuantity = v
	case ColMaterialCost:
		r.MaterialCost = v
	case ColLaborCost:
		r.LaborCost = v
	case ColOverheadCost:
		r.OverheadCost = v
	default:
		if r.Measures == nil {
			r.Measures = make(map[string]float64)
		}
		r.Measures[column] = v
	}
}

// Clone returns a deep copy of the record.
func (r ProductionRecord) Clone() ProductionRecord {
	c := r
	if r.Attributes != nil {
		c.Attributes = make(map[string]string, len(r.Attributes))
		for k, v := range r.Attributes {
			c.Attributes[k] = v
		}
	}
	if r.Measures != nil {
		c.Measures = make(map[string]float64, len(r.Measures))
		for k, v := range r.Measures {
			c.Measures[k] = v
		}
	}
	return c
}
