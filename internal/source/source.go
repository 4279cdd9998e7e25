// Package source loads chart datasets from tabular files.
//
// Tables are laid out with one row per label: the first row names the series,
// the first column holds the labels, and every other cell is a sample. Empty
// cells are missing samples.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chartui/chartgeom"
)

// Options configures [Load].
type Options struct {
	// Sheet is the worksheet to read from .xlsx files. Empty means the first
	// sheet.
	Sheet string
}

// Load reads a dataset from a .csv or .xlsx file.
func Load(path string, opts Options) (chartgeom.Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return chartgeom.Dataset{}, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path, opts.Sheet)
	default:
		return chartgeom.Dataset{}, fmt.Errorf("unsupported file type %q", ext)
	}
}

// fromRows builds a dataset from a table. Rows may be shorter than the header;
// the missing cells are missing samples.
func fromRows(rows [][]string) (chartgeom.Dataset, error) {
	if len(rows) == 0 {
		return chartgeom.Dataset{}, fmt.Errorf("no header row")
	}
	header := rows[0]
	if len(header) < 2 {
		return chartgeom.Dataset{}, fmt.Errorf("header has no series columns")
	}

	labels := make([]string, 0, len(rows)-1)
	series := make([]chartgeom.NamedSeries, len(header)-1)
	for j := range series {
		series[j].Label = strings.TrimSpace(header[j+1])
		series[j].Values = make(chartgeom.Series, 0, len(rows)-1)
	}
	for i, row := range rows[1:] {
		var label string
		if len(row) > 0 {
			label = strings.TrimSpace(row[0])
		}
		labels = append(labels, label)
		for j := range series {
			v, err := parseCell(row, j+1)
			if err != nil {
				// Row numbers are 1-based and include the header.
				return chartgeom.Dataset{}, fmt.Errorf("row %d, column %d: %w", i+2, j+2, err)
			}
			series[j].Values = append(series[j].Values, v)
		}
	}
	return chartgeom.NewDataset(labels, series...)
}

func parseCell(row []string, col int) (chartgeom.Value, error) {
	if col >= len(row) {
		return chartgeom.None(), nil
	}
	cell := strings.TrimSpace(row[col])
	if cell == "" {
		return chartgeom.None(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return chartgeom.Value{}, fmt.Errorf("parsing %q: %w", cell, err)
	}
	return chartgeom.Some(v), nil
}
