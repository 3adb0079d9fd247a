package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/oee/pkg/domain/entities"
	"github.com/vsinha/oee/pkg/domain/services"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/xlsx"
)

func generateWorkbook(t *testing.T, days int, seed int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "production.xlsx")
	cmd := NewGenerateCommand(GenerateConfig{Output: path, Days: days, Seed: seed, Stdout: &bytes.Buffer{}})
	require.NoError(t, cmd.Execute(context.Background()))
	return path
}

func TestGenerateCommand_WritesLoadableWorkbook(t *testing.T) {
	path := generateWorkbook(t, 20, 42)

	tbl, err := xlsx.NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, tbl.Len())
	assert.Equal(t, entities.RequiredColumns(), tbl.Columns)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range tbl.Records {
		assert.True(t, r.Date.Equal(start.AddDate(0, 0, i)), "row %d date %v", i, r.Date)
		assert.Equal(t, 480.0, r.PlannedProductionTime)
		assert.GreaterOrEqual(t, r.Downtime, 10.0)
		assert.LessOrEqual(t, r.Downtime, 120.0)
		assert.LessOrEqual(t, r.DefectQuantity, r.TotalOutput)
	}

	derived := services.DeriveTable(tbl)
	for i, r := range derived.Records {
		assert.Greater(t, r.OEE, 0.0, "row %d", i)
		assert.LessOrEqual(t, r.OEE, 1.0, "row %d", i)
	}
}

func TestGenerateCommand_SeedIsReproducible(t *testing.T) {
	a, err := xlsx.NewLoader().Load(generateWorkbook(t, 10, 7))
	require.NoError(t, err)
	b, err := xlsx.NewLoader().Load(generateWorkbook(t, 10, 7))
	require.NoError(t, err)

	for i := range a.Records {
		assert.Equal(t, a.Records[i].Downtime, b.Records[i].Downtime)
		assert.Equal(t, a.Records[i].TotalOutput, b.Records[i].TotalOutput)
		assert.Equal(t, a.Records[i].MaterialCost, b.Records[i].MaterialCost)
	}
}

func TestGenerateCommand_Validation(t *testing.T) {
	tests := []struct {
		name   string
		config GenerateConfig
	}{
		{"missing output", GenerateConfig{Days: 5}},
		{"zero days", GenerateConfig{Output: filepath.Join(t.TempDir(), "x.xlsx")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Stdout = &bytes.Buffer{}
			assert.Error(t, NewGenerateCommand(tt.config).Execute(context.Background()))
		})
	}
}

func TestGenerateCommand_Help(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewGenerateCommand(GenerateConfig{Help: true, Stdout: &buf}).Execute(context.Background()))
	assert.Contains(t, buf.String(), "oee generate -output")
}
