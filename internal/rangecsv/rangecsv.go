// Package rangecsv loads preference-range tables from CSV files with the
// fixed column order: reference, acceptable_min, acceptable_max,
// optimal_min, optimal_max.
//
// The loader owns the header boundary: a first row whose second column is
// not numeric is treated as a header and excluded, and every remaining row
// reaches the aggregator — data rows are never silently dropped.
package rangecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hsicurve/suitability"
)

const columns = 5

// Load parses a preference table from r.
func Load(r io.Reader) (suitability.RangeTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("rangecsv: read: %w", err)
	}

	table := make(suitability.RangeTable, 0, len(records))
	for i, record := range records {
		if len(record) != columns {
			return nil, fmt.Errorf("rangecsv: row %d: want %d columns, got %d", i+1, columns, len(record))
		}
		if i == 0 && isHeader(record) {
			continue
		}

		var vals [4]float64
		for j := 1; j < columns; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("rangecsv: row %d, column %d: %w", i+1, j+1, err)
			}
			vals[j-1] = v
		}

		table = append(table, suitability.PreferenceRow{
			Reference:     strings.TrimSpace(record[0]),
			AcceptableMin: vals[0],
			AcceptableMax: vals[1],
			OptimalMin:    vals[2],
			OptimalMax:    vals[3],
		})
	}

	return table, nil
}

// LoadFile parses a preference table from the CSV file at path.
func LoadFile(path string) (suitability.RangeTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rangecsv: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// isHeader reports whether a first row looks like a header: its second
// column does not parse as a number.
func isHeader(record []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)

	return err != nil
}
