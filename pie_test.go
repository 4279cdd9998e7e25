package chartgeom

import (
	"math"
	"testing"
)

func TestComputeSlices(t *testing.T) {
	tests := []struct {
		name   string
		values Series
		want   []Wedge
	}{
		{
			"scenario",
			SeriesOf(1, 1, 2),
			[]Wedge{{0, 90, 1, 0}, {90, 180, 1, 1}, {180, 360, 2, 2}},
		},
		{
			"missing samples",
			Series{Some(1), None(), Some(3)},
			[]Wedge{{0, 90, 1, 0}, {90, 360, 3, 2}},
		},
		{
			"zero sum",
			SeriesOf(0, 0),
			[]Wedge{{0, 0, 0, 0}, {0, 0, 0, 1}},
		},
		{"empty", nil, nil},
		{
			"negative last",
			SeriesOf(3, -1),
			[]Wedge{{0, 360, 3, 0}, {360, 360, -1, 1}},
		},
		{
			"negatives count as zero",
			SeriesOf(-1, 2, -3, 2),
			[]Wedge{{0, 0, -1, 0}, {0, 180, 2, 1}, {180, 180, -3, 2}, {180, 360, 2, 3}},
		},
		{
			"all negative",
			SeriesOf(-1, -2),
			[]Wedge{{0, 0, -1, 0}, {0, 0, -2, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, ComputeSlices(tt.values), approx)
		})
	}
}

func TestComputeSlicesClosure(t *testing.T) {
	for _, values := range []Series{
		SeriesOf(1),
		SeriesOf(0.1, 0.2, 0.3, 0.4),
		SeriesOf(3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5),
		{None(), Some(1e-9), Some(7), None(), Some(1e9)},
		SeriesOf(0.1, 0.2, 0.3, -0.4, 0),
		SeriesOf(5, -5),
	} {
		wedges := ComputeSlices(values)
		if len(wedges) != values.Count() {
			t.Errorf("got %d wedges for %d samples", len(wedges), values.Count())
		}
		prev := 0.0
		for _, w := range wedges {
			if w.StartAngle != prev {
				t.Errorf("wedge %v doesn't start at the previous wedge's end %v", w, prev)
			}
			if w.Sweep() < 0 {
				t.Errorf("wedge %v has a negative sweep", w)
			}
			prev = w.EndAngle
		}
		if prev != 360 {
			t.Errorf("last wedge of %v ends at %v, want 360", values, prev)
		}
	}
}

func TestHitTest(t *testing.T) {
	wedges := ComputeSlices(SeriesOf(1, 1, 2))
	bounds := Rect{0, 0, 200, 100}
	center := Pt(100, 50)

	at := func(deg, r float64) Point {
		return center.Translate(VecFromAngle(deg * math.Pi / 180).Mul(r))
	}

	for i, w := range wedges {
		for deg := w.StartAngle + 0.5; deg < w.EndAngle; deg += 0.5 {
			for _, r := range []float64{1, 25, 49.9} {
				idx, res := HitTest(wedges, at(deg, r), bounds)
				if res != HitWedge || idx != i {
					t.Fatalf("point at %v° and radius %v: got (%d, %s), want (%d, %s)", deg, r, idx, res, i, HitWedge)
				}
			}
		}
	}

	tests := []struct {
		name string
		pt   Point
		idx  int
		res  HitResult
	}{
		{"beyond radius", at(45, 50.5), -1, HitOutside},
		{"corner of bounds", Pt(1, 1), -1, HitOutside},
		{"on boundary", Pt(150, 50), -1, HitMiss},
		{"just inside radius", at(45, 49.9999), 0, HitWedge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, res := HitTest(wedges, tt.pt, bounds)
			if idx != tt.idx || res != tt.res {
				t.Errorf("got (%d, %s), want (%d, %s)", idx, res, tt.idx, tt.res)
			}
		})
	}

	if idx, res := HitTest(nil, center.Translate(Vec(1, 1)), bounds); idx != -1 || res != HitMiss {
		t.Errorf("empty pie: got (%d, %s), want (-1, %s)", idx, res, HitMiss)
	}
}

func TestWedgePath(t *testing.T) {
	const epsilon = 1e-9
	circle := Circle{Pt(100, 50), 50}
	w := Wedge{StartAngle: 0, EndAngle: 90, Value: 1}
	p := w.Path(circle, 0.1)

	if len(p) < 4 {
		t.Fatalf("got path %v, want at least a move, a line, a curve and a close", p)
	}
	diff(t, MoveTo(circle.Center), p[0])
	diff(t, LineTo(Pt(150, 50)), p[1], approx)
	diff(t, ClosePath(), p[len(p)-1])
	end, _ := p[len(p)-2].EndPoint()
	assertNear(t, end, Pt(100, 100), epsilon)

	// Every point of the arc is on the circle.
	for _, el := range p[2 : len(p)-1] {
		pt, _ := el.EndPoint()
		if d := pt.Distance(circle.Center); math.Abs(d-50) > 1e-9 {
			t.Errorf("arc point %s is %v away from the center", pt, d)
		}
	}

	diff(t, 90.0, w.Sweep())
	diff(t, 45.0, w.Mid())
}

func TestHitResultString(t *testing.T) {
	diff(t, []string{"outside", "miss", "wedge", "HitResult(7)"},
		[]string{HitOutside.String(), HitMiss.String(), HitWedge.String(), HitResult(7).String()})
}
