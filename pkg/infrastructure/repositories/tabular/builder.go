package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// dateLayouts are tried in order before falling back to Excel serial dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2-Jan-2006",
}

// Build turns a raw cell grid (header row first) into a production table.
// The date column is coerced to time.Time, numeric-like columns to float64
// (empty cells become NaN) and remaining columns pass through as text.
// source names the input in errors.
func Build(source string, rows [][]string) (*entities.Table, error) {
	if len(rows) == 0 {
		return nil, &entities.LoadError{Path: source, Reason: "file has no header row"}
	}

	header := make([]string, len(rows[0]))
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &entities.LoadError{Path: source, Reason: fmt.Sprintf("header cell %d is empty", i+1)}
		}
		if _, dup := index[name]; dup {
			return nil, &entities.LoadError{Path: source, Reason: fmt.Sprintf("duplicate column %s", name)}
		}
		header[i] = name
		index[name] = i
	}

	var missing []string
	for _, col := range entities.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &entities.LoadError{
			Path:   source,
			Reason: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")),
		}
	}

	body := rows[1:]
	if len(body) == 0 {
		return nil, &entities.LoadError{Path: source, Reason: "file has no data rows"}
	}
	for i, row := range body {
		if len(row) > len(header) {
			for _, extra := range row[len(header):] {
				if strings.TrimSpace(extra) != "" {
					return nil, &entities.LoadError{
						Path:   source,
						Reason: fmt.Sprintf("row %d has %d cells, header has %d", i+2, len(row), len(header)),
					}
				}
			}
		}
	}

	numeric := make([]bool, len(header))
	for c, name := range header {
		if name == entities.ColDate {
			continue
		}
		numeric[c] = isNumericColumn(body, c)
		if !numeric[c] && isRequiredNumeric(name) {
			row, value := firstNonNumeric(body, c)
			_, err := strconv.ParseFloat(value, 64)
			return nil, &entities.ParseError{Row: row + 2, Column: name, Value: value, Err: err}
		}
	}

	table := &entities.Table{
		Columns: header,
		Records: make([]entities.ProductionRecord, len(body)),
	}

	for i, row := range body {
		rec := &table.Records[i]
		for c, name := range header {
			raw := cell(row, c)
			switch {
			case name == entities.ColDate:
				date, err := ParseDate(raw)
				if err != nil {
					return nil, &entities.ParseError{Row: i + 2, Column: name, Value: raw, Err: err}
				}
				rec.Date = date
			case numeric[c]:
				rec.SetRaw(name, parseNumber(raw))
			default:
				if rec.Attributes == nil {
					rec.Attributes = make(map[string]string)
				}
				rec.Attributes[name] = raw
			}
		}
	}

	return table, nil
}

// ParseDate parses a date cell. Empty cells yield the zero time (null).
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date format")
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC().Round(time.Second), nil
}

func isRequiredNumeric(name string) bool {
	for _, col := range entities.RawNumericColumns {
		if col == name {
			return true
		}
	}
	return false
}

func isNumericColumn(body [][]string, c int) bool {
	row, _ := firstNonNumeric(body, c)
	return row < 0
}

// firstNonNumeric returns the body index and value of the first non-empty
// cell in column c that does not parse as a float, or -1.
func firstNonNumeric(body [][]string, c int) (int, string) {
	for i, row := range body {
		raw := strings.TrimSpace(cell(row, c))
		if raw == "" {
			continue
		}
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return i, raw
		}
	}
	return -1, ""
}

func parseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func cell(row []string, c int) string {
	if c < len(row) {
		return row[c]
	}
	return ""
}
