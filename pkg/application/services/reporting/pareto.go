package reporting

import (
	"math"
	"sort"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// ParetoEntry is one row of the Pareto summary.
type ParetoEntry struct {
	Label          string  `json:"label"`
	Row            int     `json:"row"`
	DefectQuantity float64 `json:"defect_quantity"`
	CumPercent     float64 `json:"cum_percent"`
}

// ParetoSummary ranks rows by defect quantity with a running share of the total.
type ParetoSummary struct {
	Entries []ParetoEntry `json:"entries"`
	Total   float64       `json:"total"`
}

// Pareto sorts rows by Defect_Quantity descending (stable, nulls last) and
// computes the cumulative percentage of the total defect count. Null rows
// keep a null cumulative value and do not advance the running sum.
func Pareto(t *entities.Table) ParetoSummary {
	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		x := t.Records[order[a]].DefectQuantity
		y := t.Records[order[b]].DefectQuantity
		if math.IsNaN(x) {
			return false
		}
		if math.IsNaN(y) {
			return true
		}
		return x > y
	})

	total := 0.0
	for _, r := range t.Records {
		if !math.IsNaN(r.DefectQuantity) {
			total += r.DefectQuantity
		}
	}

	summary := ParetoSummary{Entries: make([]ParetoEntry, len(order)), Total: total}
	running := 0.0
	for i, idx := range order {
		r := t.Records[idx]
		cum := math.NaN()
		if !math.IsNaN(r.DefectQuantity) {
			running += r.DefectQuantity
			cum = running / total * 100
		}
		summary.Entries[i] = ParetoEntry{
			Label:          DateLabel(r),
			Row:            idx,
			DefectQuantity: r.DefectQuantity,
			CumPercent:     cum,
		}
	}
	return summary
}

// Labels returns the entry labels in ranked order.
func (p ParetoSummary) Labels() []string {
	labels := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		labels[i] = e.Label
	}
	return labels
}

// Values returns the defect quantities in ranked order.
func (p ParetoSummary) Values() []float64 {
	values := make([]float64, len(p.Entries))
	for i, e := range p.Entries {
		values[i] = e.DefectQuantity
	}
	return values
}

// DateLabel renders a record's date as text. A missing date renders as NaT.
func DateLabel(r entities.ProductionRecord) string {
	if r.Date.IsZero() {
		return "NaT"
	}
	if r.Date.Hour() == 0 && r.Date.Minute() == 0 && r.Date.Second() == 0 && r.Date.Nanosecond() == 0 {
		return r.Date.Format("2006-01-02")
	}
	return r.Date.Format("2006-01-02 15:04:05")
}
