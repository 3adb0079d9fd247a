package loader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/oee/pkg/domain/entities"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/xlsx"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"workbook", "data/production.xlsx", false},
		{"upper case extension", "PRODUCTION.XLSX", false},
		{"csv", "production.csv", false},
		{"legacy workbook", "production.xls", true},
		{"no extension", "production", true},
		{"json", "production.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ForPath(tt.path, 0)
			if tt.wantErr {
				var loadErr *entities.LoadError
				require.Error(t, err)
				assert.True(t, errors.As(err, &loadErr))
				assert.Nil(t, src)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, src)
		})
	}
}

func TestForPathTypes(t *testing.T) {
	src, err := ForPath("a.xlsx", 0)
	require.NoError(t, err)
	assert.IsType(t, &xlsx.Loader{}, src)

	src, err = ForPath("a.csv", ';')
	require.NoError(t, err)
	l, ok := src.(*csv.Loader)
	require.True(t, ok)
	assert.Equal(t, ';', l.Comma)
}
