package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/chartui/chartgeom"
)

// ReadCSV reads a dataset from CSV data.
func ReadCSV(r io.Reader) (chartgeom.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return chartgeom.Dataset{}, fmt.Errorf("failed reading CSV data: %w", err)
	}
	return fromRows(rows)
}
