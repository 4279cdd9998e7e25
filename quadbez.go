package chartgeom

var _ ParametricCurve = QuadBez{}

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1, returning a cubic Bézier segment that exactly
// represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Eval evaluates the curve in Bernstein form,
// (1−t)²·P0 + 2(1−t)t·P1 + t²·P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(2 * mt * t)
	c := Vec2(q.P2).Mul(t * t)
	return Point(a.Add(b).Add(c))
}

// Arclen returns the length of the curve approximated by [FlattenSteps] lines.
func (q QuadBez) Arclen() float64 {
	var sum float64
	for l := range flatSteps(q, FlattenSteps) {
		sum += l.Length()
	}
	return sum
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
