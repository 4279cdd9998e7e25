package chartgeom

import (
	"iter"
	"math"
)

// Value is one sample of a series. Samples that aren't Valid are missing: they
// break lines, never get interpolated and add nothing to pie charts.
type Value struct {
	V     float64
	Valid bool
}

// Some returns a present sample.
func Some(v float64) Value { return Value{V: v, Valid: true} }

// None returns a missing sample.
func None() Value { return Value{} }

// Series is an ordered sequence of optional samples, one chart trace.
type Series []Value

// SeriesOf returns a series without missing samples.
func SeriesOf(vs ...float64) Series {
	s := make(Series, len(vs))
	for i, v := range vs {
		s[i] = Some(v)
	}
	return s
}

// Present iterates over the indices and values of the series' present samples.
func (s Series) Present() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range s {
			if !v.Valid {
				continue
			}
			if !yield(i, v.V) {
				return
			}
		}
	}
}

// Count returns the number of present samples.
func (s Series) Count() int {
	var n int
	for range s.Present() {
		n++
	}
	return n
}

// MinMax returns the smallest and largest present sample. ok is false if the
// series has none.
func (s Series) MinMax() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.Present() {
		lo = min(lo, v)
		hi = max(hi, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Run is a maximal run of present samples, [Start, End) in series indices.
// Every run of a line chart is drawn as its own subpath.
type Run struct {
	Start, End int
}

func (r Run) Len() int { return r.End - r.Start }

// Runs splits the series at its missing samples. A series of length n has at
// most ⌈n/2⌉ runs.
func (s Series) Runs() []Run {
	var out []Run
	start := -1
	for i, v := range s {
		switch {
		case v.Valid && start < 0:
			start = i
		case !v.Valid && start >= 0:
			out = append(out, Run{start, i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, Run{start, len(s)})
	}
	return out
}
