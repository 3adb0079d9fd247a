package entities

import "math"

// Table is the in-memory production log. Columns keeps the input header
// order (derived columns are appended after derivation); Records keeps row order.
type Table struct {
	Columns []string
	Records []ProductionRecord
	Derived bool
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Clone returns an independent deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		Columns: append([]string(nil), t.Columns...),
		Records: make([]ProductionRecord, len(t.Records)),
		Derived: t.Derived,
	}
	for i, r := range t.Records {
		c.Records[i] = r.Clone()
	}
	return c
}

// Column extracts a numeric column in row order. Unknown columns yield an error.
func (t *Table) Column(name string) ([]float64, error) {
	values := make([]float64, len(t.Records))
	for i := range t.Records {
		v, err := t.Records[i].Value(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// IsNull reports whether v represents a missing value.
func IsNull(v float64) bool {
	return math.IsNaN(v)
}
