package chartgeom

import (
	"testing"
)

func TestLayoutBars(t *testing.T) {
	ds, err := NewDataset([]string{"a", "b"},
		NamedSeries{"s1", SeriesOf(10, -5)},
		NamedSeries{"s2", Series{None(), Some(20)}},
	)
	if err != nil {
		t.Fatal(err)
	}
	bounds := AxisBounds{Min: -10, Max: 20, Gap: 5, TickCount: 6}

	// Groups of 150, 50 apart; bars of 45, 10 apart; 5 per unit of value with
	// the zero line at 50.
	want := []BarSlot{
		{Group: 0, Series: 0, Rect: Rect{25, 50, 70, 100}, Value: 10},
		{Group: 0, Series: 1, Rect: Rect{80, 50, 125, 50}, Value: 0},
		{Group: 1, Series: 0, Rect: Rect{175, 25, 220, 50}, Value: -5},
		{Group: 1, Series: 1, Rect: Rect{230, 50, 275, 150}, Value: 20},
	}
	got := LayoutBars(ds, bounds, Sz(300, 150))
	diff(t, want, got, approx)

	for _, slot := range got {
		if slot.Rect.X0 < 0 || slot.Rect.X1 > 300 {
			t.Errorf("bar %v extends past the plot", slot)
		}
	}
}

func TestLayoutBarsEmpty(t *testing.T) {
	ds, err := NewDataset([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if got := LayoutBars(ds, DefaultBounds(), Sz(100, 100)); got != nil {
		t.Errorf("got %v for a dataset without series", got)
	}
	if got := LayoutBars(Dataset{}, DefaultBounds(), Sz(100, 100)); got != nil {
		t.Errorf("got %v for an empty dataset", got)
	}
}

func TestBarIndexAtX(t *testing.T) {
	tests := []struct {
		x      float64
		width  float64
		groups int
		want   int
	}{
		{0, 300, 2, 0},
		{149.9, 300, 2, 0},
		{150, 300, 2, 1},
		{-10, 300, 2, 0},
		{1000, 300, 2, 1},
		{10, 300, 0, -1},
		{10, 0, 3, 0},
	}
	for _, tt := range tests {
		if got := BarIndexAtX(tt.x, tt.width, tt.groups); got != tt.want {
			t.Errorf("BarIndexAtX(%v, %v, %d) = %d, want %d", tt.x, tt.width, tt.groups, got, tt.want)
		}
	}
}
