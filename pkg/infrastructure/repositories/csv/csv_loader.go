package csv

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/vsinha/oee/pkg/domain/entities"
	"github.com/vsinha/oee/pkg/domain/repositories"
	"github.com/vsinha/oee/pkg/infrastructure/repositories/tabular"
)

// Loader handles loading the production log from a CSV file
type Loader struct {
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// Verify interface compliance
var _ repositories.TableSource = (*Loader)(nil)

// Load loads production records from a CSV file with a header row
func (l *Loader) Load(filename string) (*entities.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &entities.LoadError{Path: filename, Reason: "open file", Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if l.Comma != 0 {
		reader.Comma = l.Comma
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &entities.LoadError{Path: filename, Reason: "read CSV", Err: err}
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = trimBOM(records[0][0])
	}

	return tabular.Build(filename, records)
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
