package tabular

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/oee/pkg/domain/entities"
)

var header = []string{
	"Date", "Line", "Planned_Production_Time", "Downtime", "Ideal_Cycle_Time",
	"Total_Output", "Defect_Quantity", "Material_Cost", "Labor_Cost", "Overhead_Cost", "Crew",
}

func TestBuild_CoercesColumns(t *testing.T) {
	rows := [][]string{
		header,
		{"2024-01-01", "L1", "480", "60", "1.0", "350", "10", "100", "50", "20", "4"},
		{"45293", "L2", "480", "", "1.0", "360", "12", "110", "55", "20", ""},
	}

	tbl, err := Build("sample.csv", rows)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, header, tbl.Columns)

	first := tbl.Records[0]
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 480.0, first.PlannedProductionTime)
	assert.Equal(t, 20.0, first.OverheadCost)
	assert.Equal(t, "L1", first.Attributes["Line"])
	assert.Equal(t, 4.0, first.Measures["Crew"])

	second := tbl.Records[1]
	assert.True(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Equal(second.Date), "Excel serial date, got %v", second.Date)
	assert.True(t, math.IsNaN(second.Downtime), "empty numeric cell is null")
	assert.True(t, math.IsNaN(second.Measures["Crew"]))
}

func TestBuild_RaggedRowsArePadded(t *testing.T) {
	rows := [][]string{
		header,
		{"2024-01-01", "L1", "480", "60", "1.0", "350", "10", "100", "50", "20"},
	}
	tbl, err := Build("ragged.xlsx", rows)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tbl.Records[0].Measures["Crew"]))
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		rows      [][]string
		loadError bool
		column    string
		row       int
	}{
		{name: "empty file", rows: nil, loadError: true},
		{name: "header only", rows: [][]string{header}, loadError: true},
		{
			name:      "missing column",
			rows:      [][]string{{"Date", "Downtime"}, {"2024-01-01", "5"}},
			loadError: true,
		},
		{
			name:      "duplicate column",
			rows:      [][]string{append(append([]string{}, header...), "Downtime")},
			loadError: true,
		},
		{
			name: "row wider than header",
			rows: [][]string{
				header,
				{"2024-01-01", "L1", "480", "60", "1.0", "350", "10", "100", "50", "20", "4", "extra"},
			},
			loadError: true,
		},
		{
			name: "bad date",
			rows: [][]string{
				header,
				{"2024-01-01", "L1", "480", "60", "1.0", "350", "10", "100", "50", "20", "4"},
				{"not a date", "L1", "480", "60", "1.0", "350", "10", "100", "50", "20", "4"},
			},
			column: "Date",
			row:    3,
		},
		{
			name: "text in required numeric column",
			rows: [][]string{
				header,
				{"2024-01-01", "L1", "480", "sixty", "1.0", "350", "10", "100", "50", "20", "4"},
			},
			column: "Downtime",
			row:    2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build("input.xlsx", tc.rows)
			require.Error(t, err)

			if tc.loadError {
				var le *entities.LoadError
				assert.True(t, errors.As(err, &le), "expected LoadError, got %T", err)
				return
			}
			var pe *entities.ParseError
			require.True(t, errors.As(err, &pe), "expected ParseError, got %T", err)
			assert.Equal(t, tc.column, pe.Column)
			assert.Equal(t, tc.row, pe.Row)
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2024-03-15", "03/15/2024", "2024/03/15", "15-03-2024", "45366"} {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s parsed as %v", raw, got)
	}

	got, err := ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDate("yesterday")
	assert.Error(t, err)
}
