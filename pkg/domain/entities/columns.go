package entities

// Column names as they appear in the production workbook header.
const (
	ColDate                  = "Date"
	ColPlannedProductionTime = "Planned_Production_Time"
	ColDowntime              = "Downtime"
	ColIdealCycleTime        = "Ideal_Cycle_Time"
	ColTotalOutput           = "Total_Output"
	ColDefectQuantity        = "Defect_Quantity"
	ColMaterialCost          = "Material_Cost"
	ColLaborCost             = "Labor_Cost"
	ColOverheadCost          = "Overhead_Cost"
)

// Derived column names, in derivation order.
const (
	ColOperatingTime   = "Operating_Time"
	ColAvailability    = "Availability"
	ColPerformance     = "Performance"
	ColGoodOutput      = "Good_Output"
	ColQuality         = "Quality"
	ColOEE             = "OEE"
	ColCycleTime       = "Cycle_Time"
	ColLeadTime        = "Lead_Time"
	ColTotalCost       = "Total_Cost"
	ColCostPerGoodUnit = "Cost_per_Good_Unit"
)

// RawNumericColumns lists the numeric input columns every production log must carry.
var RawNumericColumns = []string{
	ColPlannedProductionTime,
	ColDowntime,
	ColIdealCycleTime,
	ColTotalOutput,
	ColDefectQuantity,
	ColMaterialCost,
	ColLaborCost,
	ColOverheadCost,
}

// DerivedColumns lists the computed columns in the order they are derived.
var DerivedColumns = []string{
	ColOperatingTime,
	ColAvailability,
	ColPerformance,
	ColGoodOutput,
	ColQuality,
	ColOEE,
	ColCycleTime,
	ColLeadTime,
	ColTotalCost,
	ColCostPerGoodUnit,
}

// RequiredColumns returns the date column followed by the raw numeric columns.
func RequiredColumns() []string {
	cols := make([]string, 0, len(RawNumericColumns)+1)
	cols = append(cols, ColDate)
	return append(cols, RawNumericColumns...)
}
