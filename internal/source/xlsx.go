package source

import (
	"fmt"

	"github.com/chartui/chartgeom"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a dataset from a sheet of an Excel workbook. An empty sheet
// name selects the first sheet.
func ReadXLSX(path, sheet string) (chartgeom.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return chartgeom.Dataset{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return chartgeom.Dataset{}, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	// GetRows drops trailing empty cells, which fromRows treats as missing.
	rows, err := f.GetRows(sheet)
	if err != nil {
		return chartgeom.Dataset{}, fmt.Errorf("failed reading sheet %q: %w", sheet, err)
	}
	return fromRows(rows)
}
