package reporting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOEETier_Boundaries(t *testing.T) {
	testCases := []struct {
		mean float64
		want string
	}{
		{0.95, TierWorldClass},
		{0.8000001, TierWorldClass},
		{0.80, TierAcceptable},
		{0.70, TierAcceptable},
		{0.60, TierLow},
		{0.10, TierLow},
		{math.NaN(), TierLow},
		{math.Inf(1), TierWorldClass},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, OEETier(tc.mean), "mean %v", tc.mean)
	}
}

func TestInsights(t *testing.T) {
	lines := Insights(InsightInputs{AverageOEE: 0.7083, CorrOEEDowntime: -0.8249, CorrOEECost: -0.31})
	assert.Equal(t, []string{
		"OEE Level: Acceptable but improvement needed",
		"Correlation OEE vs Downtime: -0.82",
		"Downtime strongly reduces OEE",
		"Correlation OEE vs Cost per Unit: -0.31",
	}, lines)

	lines = Insights(InsightInputs{AverageOEE: 0.85, CorrOEEDowntime: -0.5, CorrOEECost: -0.91})
	assert.Equal(t, []string{
		"OEE Level: World Class (>80%)",
		"Correlation OEE vs Downtime: -0.5",
		"Correlation OEE vs Cost per Unit: -0.91",
		"Higher OEE significantly reduces production cost",
	}, lines)

	lines = Insights(InsightInputs{AverageOEE: math.NaN(), CorrOEEDowntime: math.NaN(), CorrOEECost: math.NaN()})
	assert.Equal(t, []string{
		"OEE Level: Low efficiency - urgent improvement required",
		"Correlation OEE vs Downtime: nan",
		"Correlation OEE vs Cost per Unit: nan",
	}, lines)
}
