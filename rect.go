package chartgeom

import "math"

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the right and
// down (for positive sizes) from the origin. Width and height are ensured to be
// non-negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// InscribedCircle returns the largest circle centered in r. Pie charts are drawn
// into this circle.
func (r Rect) InscribedCircle() Circle {
	return Circle{
		Center: r.Center(),
		Radius: 0.5 * min(math.Abs(r.Width()), math.Abs(r.Height())),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Transform returns the rectangle spanned by r's corners after applying aff.
// The result is only the image of r for transforms without rotation or skew,
// such as [ViewTransform].
func (r Rect) Transform(aff Affine) Rect {
	return NewRectFromPoints(Pt(r.X0, r.Y0).Transform(aff), Pt(r.X1, r.Y1).Transform(aff))
}

// Path returns the outline of the rectangle, starting at the origin and going
// through X1 first.
func (r Rect) Path() BezPath {
	return BezPath{
		MoveTo(Pt(r.X0, r.Y0)),
		LineTo(Pt(r.X1, r.Y0)),
		LineTo(Pt(r.X1, r.Y1)),
		LineTo(Pt(r.X0, r.Y1)),
		ClosePath(),
	}
}
