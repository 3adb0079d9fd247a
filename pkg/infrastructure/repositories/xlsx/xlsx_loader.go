package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/vsinha/oee/pkg/domain/entities"
	"github.com/vsinha/oee/pkg/domain/repositories"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/tabular"
)

// Loader reads the production log from the first sheet of an Excel workbook
type Loader struct{}

// NewLoader creates a new workbook loader
func NewLoader() *Loader {
	return &Loader{}
}

// Verify interface compliance
var _ repositories.TableSource = (*Loader)(nil)

// Load reads the first sheet of the workbook at path. Cells are read raw so
// that dates arrive as Excel serial numbers regardless of display format.
func (l *Loader) Load(path string) (*entities.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &entities.LoadError{Path: path, Reason: "open workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &entities.LoadError{Path: path, Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &entities.LoadError{Path: path, Reason: "read sheet " + sheets[0], Err: err}
	}

	return tabular.Build(path, rows)
}
