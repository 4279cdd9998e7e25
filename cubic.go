package chartgeom

var _ ParametricCurve = CubicBez{}

type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve in Bernstein form,
// (1−t)³·P0 + 3(1−t)²t·P1 + 3(1−t)t²·P2 + t³·P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(3 * mt * mt * t)
	d := Vec2(c.P2).Mul(3 * mt * t * t)
	e := Vec2(c.P3).Mul(t * t * t)
	return Point(a.Add(b).Add(d).Add(e))
}

// Arclen returns the length of the curve approximated by [FlattenSteps] lines.
func (c CubicBez) Arclen() float64 {
	var sum float64
	for l := range flatSteps(c, FlattenSteps) {
		sum += l.Length()
	}
	return sum
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
