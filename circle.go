package chartgeom

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies within the circle, including its boundary.
func (c Circle) Contains(pt Point) bool {
	return pt.DistanceSquared(c.Center) <= c.Radius*c.Radius
}

// Arc returns the arc of the circle starting at startAngle and sweeping
// sweepAngle, both in degrees.
func (c Circle) Arc(startAngle, sweepAngle float64) Arc {
	return Arc{
		Center:     c.Center,
		Radius:     c.Radius,
		StartAngle: startAngle * math.Pi / 180,
		SweepAngle: sweepAngle * math.Pi / 180,
	}
}
