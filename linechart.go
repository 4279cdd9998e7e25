package chartgeom

import (
	"iter"
	"math"
)

// LineOptions configures [BuildPath] and [PointsOf].
//
// Points are computed in chart space: x grows to the right from the first
// sample, y grows upwards from the offset. Use [ViewTransform] to map the
// result into a y-down view.
type LineOptions struct {
	// StepX is the horizontal distance between consecutive samples.
	StepX float64
	// ValueScale is the vertical length of one unit of value.
	ValueScale float64
	// Smooth draws quadratic curves instead of straight lines.
	Smooth bool
	// Closed closes every run down to Baseline, for area charts.
	Closed bool
	// Baseline is the y coordinate closed runs are closed along.
	Baseline float64
	// Offset is the value drawn at y = 0. Nil uses the minimum of the series
	// itself. Charts drawing several series on one scale should pass the
	// minimum across all of them.
	Offset *float64
}

// NewLineOptions returns options that fit count samples spanning the values
// [lo, hi] into size, with lo at the bottom edge.
func NewLineOptions(size Size, count int, lo, hi float64) LineOptions {
	return LineOptions{
		StepX:      Step(size.Width, count),
		ValueScale: ValueScale(size.Height, lo, hi),
		Offset:     &lo,
	}
}

func (opts LineOptions) offset(values Series) float64 {
	if opts.Offset != nil {
		return *opts.Offset
	}
	lo, _, _ := values.MinMax()
	return lo
}

func (opts LineOptions) point(i int, v, offset float64) Point {
	return Pt(float64(i)*opts.StepX, (v-offset)*opts.ValueScale)
}

// Step returns the horizontal distance between count samples spread over
// width, with the first sample at 0 and the last at width.
func Step(width float64, count int) float64 {
	if count < 2 {
		return 0
	}
	return width / float64(count-1)
}

// ValueScale returns the vertical scale that maps [lo, hi] onto height. A flat
// range has a scale of 0 and is drawn along the bottom edge.
func ValueScale(height, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return height / (hi - lo)
}

// NearestIndex returns the index of the sample closest to x, clamped to
// [0, count−1]. It returns -1 if count is zero.
func NearestIndex(x, step float64, count int) int {
	if count <= 0 {
		return -1
	}
	if step <= 0 {
		return 0
	}
	i := int(math.Round(x / step))
	return min(max(i, 0), count-1)
}

// PointsOf returns the positions of the present samples, keyed by their index
// in values. Charts draw markers at these points.
func PointsOf(values Series, opts LineOptions) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		offset := opts.offset(values)
		for i, v := range values.Present() {
			if !yield(i, opts.point(i, v, offset)) {
				return
			}
		}
	}
}

// BuildPath returns the line through the present samples of values.
//
// Every run of present samples becomes its own subpath; missing samples are
// never bridged. A series with fewer than two present samples produces an
// empty path. A run of a single sample between missing ones produces a lone
// MoveTo, or nothing when drawing a closed area.
//
// Smooth lines replace each straight step from P1 to P2 by two quadratic curves
// that meet at the step's midpoint and are tangent to the horizontal at P1 and
// P2, so the line has no overshoot above or below the samples.
func BuildPath(values Series, opts LineOptions) BezPath {
	if values.Count() < 2 {
		return nil
	}
	offset := opts.offset(values)
	pt := func(i int) Point {
		return opts.point(i, values[i].V, offset)
	}

	var p BezPath
	for _, r := range values.Runs() {
		if r.Len() == 1 {
			if !opts.Closed {
				p.MoveTo(pt(r.Start))
			}
			continue
		}

		first := pt(r.Start)
		p.MoveTo(first)
		prev := first
		for i := r.Start + 1; i < r.End; i++ {
			next := pt(i)
			if opts.Smooth {
				mid := prev.Midpoint(next)
				p.QuadTo(controlPoint(mid, prev), mid)
				p.QuadTo(controlPoint(mid, next), next)
			} else {
				p.LineTo(next)
			}
			prev = next
		}
		if opts.Closed {
			p.LineTo(Pt(prev.X, opts.Baseline))
			p.LineTo(Pt(first.X, opts.Baseline))
			p.ClosePath()
		}
	}
	return p
}

// controlPoint returns the control point of a quadratic curve from a to b that
// leaves b horizontally: the midpoint of a and b, moved vertically onto b.
func controlPoint(a, b Point) Point {
	c := a.Midpoint(b)
	dy := math.Abs(b.Y - c.Y)
	switch {
	case a.Y < b.Y:
		c.Y += dy
	case a.Y > b.Y:
		c.Y -= dy
	}
	return c
}
