package chartgeom

import (
	"math"
	"slices"
	"testing"
)

func TestCircleContains(t *testing.T) {
	c := Circle{Pt(5, 5), 5}
	for _, tt := range []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(10, 5), true},
		{Pt(5, 0), true},
		{Pt(9, 9), false},
		{Pt(10.01, 5), false},
	} {
		if got := c.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestInscribedCircle(t *testing.T) {
	diff(t, Circle{Pt(100, 50), 50}, Rect{0, 0, 200, 100}.InscribedCircle())
	diff(t, Circle{Pt(5, 20), 5}, Rect{0, 0, 10, 40}.InscribedCircle())
}

func TestArcCubics(t *testing.T) {
	const epsilon = 1e-9
	arc := Circle{Pt(0, 0), 10}.Arc(90, 180)
	cubics := slices.Collect(arc.Cubics(0.01))
	if len(cubics) < 2 {
		t.Fatalf("got %d cubics for a half circle", len(cubics))
	}
	assertNear(t, cubics[0].P0, Pt(0, 10), epsilon)
	assertNear(t, cubics[len(cubics)-1].P3, Pt(0, -10), epsilon)
	assertNear(t, arc.StartPoint(), Pt(0, 10), epsilon)
	assertNear(t, arc.EndPoint(), Pt(0, -10), epsilon)
	for i := 1; i < len(cubics); i++ {
		assertNear(t, cubics[i].P0, cubics[i-1].P3, epsilon)
	}

	// The midpoints of the cubics stay within the tolerance of the circle.
	for _, c := range cubics {
		if d := c.Eval(0.5).Distance(Pt(0, 0)); math.Abs(d-10) > 0.01 {
			t.Errorf("cubic %v strays %v from the circle", c, math.Abs(d-10))
		}
	}

	if n := len(slices.Collect(Circle{Pt(0, 0), 10}.Arc(30, 0).Cubics(0.01))); n != 0 {
		t.Errorf("got %d cubics for an empty arc, want 0", n)
	}
}
