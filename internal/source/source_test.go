package source

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chartui/chartgeom"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestReadCSV(t *testing.T) {
	const data = `month, sales, costs
Jan, 10, 4
Feb, , 5
Mar, 100
`
	ds, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	want := chartgeom.Dataset{
		Labels: []string{"Jan", "Feb", "Mar"},
		Series: []chartgeom.NamedSeries{
			{Label: "sales", Values: chartgeom.Series{chartgeom.Some(10), chartgeom.None(), chartgeom.Some(100)}},
			{Label: "costs", Values: chartgeom.Series{chartgeom.Some(4), chartgeom.Some(5), chartgeom.None()}},
		},
	}
	diff(t, want, ds)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no series", "label\nA\n"},
		{"bad number", "label,a\nx,twelve\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.data)); err == nil {
				t.Errorf("expected error for %q", tt.data)
			}
		})
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	cells := map[string]any{
		"A1": "label", "B1": "a", "C1": "b",
		"A2": "x", "B2": 1.5, "C2": 2,
		"A3": "y", "C3": -3,
	}
	for cell, v := range cells {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test file: %v", err)
	}

	for _, name := range []string{sheet, ""} {
		ds, err := Load(path, Options{Sheet: name})
		if err != nil {
			t.Fatal(err)
		}
		want := chartgeom.Dataset{
			Labels: []string{"x", "y"},
			Series: []chartgeom.NamedSeries{
				{Label: "a", Values: chartgeom.Series{chartgeom.Some(1.5), chartgeom.None()}},
				{Label: "b", Values: chartgeom.Series{chartgeom.Some(2), chartgeom.Some(-3)}},
			},
		}
		diff(t, want, ds)
	}

	if _, err := Load(path, Options{Sheet: "missing"}); err == nil {
		t.Error("expected error for missing sheet")
	}
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("data.json", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, chartgeom.ErrInvalidInput) {
		t.Errorf("unsupported file type reported as invalid dataset: %v", err)
	}
}
