package chartgeom

import (
	"testing"
)

func TestSeriesRuns(t *testing.T) {
	tests := []struct {
		name   string
		values Series
		want   []Run
	}{
		{"empty", nil, nil},
		{"all missing", Series{None(), None()}, nil},
		{"all present", SeriesOf(1, 2, 3), []Run{{0, 3}}},
		{"gaps", Series{None(), Some(1), Some(2), None(), Some(5)}, []Run{{1, 3}, {4, 5}}},
		{"alternating", Series{Some(1), None(), Some(2), None(), Some(3)}, []Run{{0, 1}, {2, 3}, {4, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.values.Runs())
		})
	}
}

func TestSeriesAggregates(t *testing.T) {
	s := Series{None(), Some(4), Some(-2), None(), Some(7)}
	if n := s.Count(); n != 3 {
		t.Errorf("got %d present samples, want 3", n)
	}
	lo, hi, ok := s.MinMax()
	diff(t, []any{-2.0, 7.0, true}, []any{lo, hi, ok})

	if _, _, ok := (Series{None()}).MinMax(); ok {
		t.Error("MinMax of a series without samples reported ok")
	}

	var idx []int
	for i := range s.Present() {
		idx = append(idx, i)
	}
	diff(t, []int{1, 2, 4}, idx)
}
