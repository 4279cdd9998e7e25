package chartgeom

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// PointAtX returns the point on the infinite extension of l whose x coordinate is
// x. The result is meaningless for vertical lines.
func (l Line) PointAtX(x float64) Point {
	k := (l.P1.Y - l.P0.Y) / (l.P1.X - l.P0.X)
	return Point{X: x, Y: l.P0.Y + (x-l.P0.X)*k}
}

// LengthTo returns the distance from the line's start to the point at x. It is
// used for the last, partial step when measuring a path up to x.
func (l Line) LengthTo(x float64) float64 {
	if l.P0.X == l.P1.X {
		return 0
	}
	return l.P0.Distance(l.PointAtX(x))
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
