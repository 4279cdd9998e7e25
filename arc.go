package chartgeom

import (
	"iter"
	"math"
)

// Arc is a circular arc. Angles are in radians; positive sweeps go from
// positive x towards positive y, which is clockwise in a y-down space.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// Cubics approximates the arc with cubic Béziers, to within tolerance.
func (a Arc) Cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		if a.SweepAngle == 0 {
			return
		}
		scaledError := math.Abs(a.Radius) / tolerance
		// Number of subdivisions per circle based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := VecFromAngle(angle0).Mul(a.Radius)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(VecFromAngle(angle0 + math.Pi/2).Mul(a.Radius * armLen))
			p3 := VecFromAngle(angle1).Mul(a.Radius)
			p2 := p3.Sub(VecFromAngle(angle1 + math.Pi/2).Mul(a.Radius * armLen))

			if !yield(CubicBez{
				a.Center.Translate(p0),
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			}) {
				return
			}
			angle0 = angle1
			p0 = p3
		}
	}
}

// StartPoint returns the point the arc starts at.
func (a Arc) StartPoint() Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle).Mul(a.Radius))
}

// EndPoint returns the point the arc ends at.
func (a Arc) EndPoint() Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle + a.SweepAngle).Mul(a.Radius))
}

// Path returns the arc as an open path.
func (a Arc) Path(tolerance float64) BezPath {
	p := BezPath{MoveTo(a.StartPoint())}
	for c := range a.Cubics(tolerance) {
		p.CubicTo(c.P1, c.P2, c.P3)
	}
	return p
}
