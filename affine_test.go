package chartgeom

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Scale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}

	if inv := (Affine{1, 2, 2, 4, 0, 0}).Invert(); !math.IsNaN(inv.N0) {
		t.Error("inverting a singular transform didn't produce NaN")
	}
}

func TestViewTransform(t *testing.T) {
	const epsilon = 1e-9
	plot := Rect{10, 20, 110, 220}
	aff := ViewTransform(plot)

	// The chart's origin is the plot's bottom left corner.
	assertNear(t, Pt(0, 0).Transform(aff), Pt(10, 220), epsilon)
	assertNear(t, Pt(100, 200).Transform(aff), Pt(110, 20), epsilon)
	assertNear(t, Pt(50, 50).Transform(aff), Pt(60, 170), epsilon)

	diff(t, Rect{10, 170, 60, 220}, Rect{0, 0, 50, 50}.Transform(aff))

	// Touches map back into chart space.
	assertNear(t, Pt(60, 170).Transform(aff.Invert()), Pt(50, 50), epsilon)
}
