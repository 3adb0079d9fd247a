package reporting

import "fmt"

// OEE tier thresholds. Comparisons are strict, so a boundary value falls
// to the lower tier.
const (
	WorldClassThreshold = 0.80
	AcceptableThreshold = 0.60

	// StrongNegativeCorrelation triggers the downtime and cost insights.
	StrongNegativeCorrelation = -0.5
)

const (
	TierWorldClass = "World Class (>80%)"
	TierAcceptable = "Acceptable but improvement needed"
	TierLow        = "Low efficiency - urgent improvement required"

	InsightDowntime = "Downtime strongly reduces OEE"
	InsightCost     = "Higher OEE significantly reduces production cost"
)

// InsightInputs are the aggregates the insight lines are computed from.
type InsightInputs struct {
	AverageOEE      float64
	CorrOEEDowntime float64
	CorrOEECost     float64
}

// OEETier classifies a mean OEE fraction. A null mean is classified low.
func OEETier(meanOEE float64) string {
	switch {
	case meanOEE > WorldClassThreshold:
		return TierWorldClass
	case meanOEE > AcceptableThreshold:
		return TierAcceptable
	default:
		return TierLow
	}
}

// Insights renders the insight lines in print order.
func Insights(in InsightInputs) []string {
	lines := []string{
		"OEE Level: " + OEETier(in.AverageOEE),
		fmt.Sprintf("Correlation OEE vs Downtime: %s", FormatNumber(in.CorrOEEDowntime, 2)),
	}
	if in.CorrOEEDowntime < StrongNegativeCorrelation {
		lines = append(lines, InsightDowntime)
	}

	lines = append(lines, fmt.Sprintf("Correlation OEE vs Cost per Unit: %s", FormatNumber(in.CorrOEECost, 2)))
	if in.CorrOEECost < StrongNegativeCorrelation {
		lines = append(lines, InsightCost)
	}
	return lines
}
