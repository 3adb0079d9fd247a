package reporting

import (
	"time"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// Trend holds the per-row cycle and lead time series in row order.
type Trend struct {
	Dates     []time.Time `json:"dates"`
	CycleTime []float64   `json:"cycle_time"`
	LeadTime  []float64   `json:"lead_time"`

	AverageCycleTime float64 `json:"average_cycle_time"`
	AverageLeadTime  float64 `json:"average_lead_time"`
}

// CycleLeadTrend extracts cycle and lead time against date without
// re-sorting. Averages are rounded to 4 and 2 places respectively.
func CycleLeadTrend(t *entities.Table) Trend {
	tr := Trend{
		Dates:     make([]time.Time, t.Len()),
		CycleTime: make([]float64, t.Len()),
		LeadTime:  make([]float64, t.Len()),
	}
	for i, r := range t.Records {
		tr.Dates[i] = r.Date
		tr.CycleTime[i] = r.CycleTime
		tr.LeadTime[i] = r.LeadTime
	}
	tr.AverageCycleTime = Round(Mean(tr.CycleTime), 4)
	tr.AverageLeadTime = Round(Mean(tr.LeadTime), 2)
	return tr
}
