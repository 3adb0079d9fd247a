// Package loader picks the table source for a production log by its file
// extension.
package loader

import (
	"path/filepath"
	"strings"

	"github.com/vsinha/oee/pkg/domain/entities"
	"github.com/vsinha/oee/pkg/domain/repositories"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/xlsx"
)

// ForPath returns the source able to read path. comma is the CSV field
// delimiter; zero means ','.
func ForPath(path string, comma rune) (repositories.TableSource, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return xlsx.NewLoader(), nil
	case ".csv", ".txt":
		l := csv.NewLoader()
		l.Comma = comma
		return l, nil
	case ".xls":
		return nil, &entities.LoadError{Path: path, Reason: "legacy .xls workbooks are not supported, save as .xlsx"}
	default:
		return nil, &entities.LoadError{Path: path, Reason: "unsupported file extension " + ext}
	}
}
