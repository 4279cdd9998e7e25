package chartgeom

import (
	"errors"
	"testing"
)

func TestNewDatasetMismatch(t *testing.T) {
	_, err := NewDataset([]string{"a", "b", "c"},
		NamedSeries{"ok", SeriesOf(1, 2, 3)},
		NamedSeries{"short", SeriesOf(1, 2)},
	)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got error %v, want %v", err, ErrInvalidInput)
	}
	var ierr *InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("got error of type %T, want *InputError", err)
	}
	if ierr.Field != "dataset" {
		t.Errorf("got field %q, want %q", ierr.Field, "dataset")
	}
}

func TestDataset(t *testing.T) {
	ds, err := NewDataset([]string{"a", "b"},
		NamedSeries{"x", Series{Some(10), None()}},
		NamedSeries{"y", SeriesOf(-5, 45)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if n := ds.Len(); n != 2 {
		t.Errorf("got length %d, want 2", n)
	}
	diff(t, Series{Some(10), None(), Some(-5), Some(45)}, ds.Values())

	b, err := ds.Bounds(DefaultAxisOptions())
	if err != nil {
		t.Fatal(err)
	}
	// Magnitude 50 across both signs.
	diff(t, AxisBounds{-10, 50, 10, 6}, b)

	diff(t, ptr(-5.0), ds.GlobalOffset())

	empty, err := NewDataset(nil)
	if err != nil {
		t.Fatal(err)
	}
	if off := empty.GlobalOffset(); off != nil {
		t.Errorf("got offset %v for an empty dataset, want nil", *off)
	}
}
