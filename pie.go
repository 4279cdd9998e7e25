package chartgeom

import "fmt"

// Wedge is the slice of a pie chart representing one sample. Angles are in
// degrees, clockwise from three o'clock in a y-down view.
type Wedge struct {
	StartAngle float64
	EndAngle   float64
	Value      float64
	// Index is the index of the sample in the series the wedge was computed
	// from. Missing samples have no wedge, so it may differ from the wedge's
	// own position.
	Index int
}

// Sweep returns the angle covered by the wedge.
func (w Wedge) Sweep() float64 { return w.EndAngle - w.StartAngle }

// Mid returns the angle halfway through the wedge, where its label goes.
func (w Wedge) Mid() float64 { return 0.5 * (w.StartAngle + w.EndAngle) }

func (w Wedge) contains(angle float64) bool {
	return w.StartAngle < angle && angle < w.EndAngle
}

// Path returns the outline of the wedge drawn in circle: from the center to the
// start of the arc, along the arc and back to the center. The arc is
// approximated by cubic Béziers to within tolerance.
func (w Wedge) Path(circle Circle, tolerance float64) BezPath {
	arc := circle.Arc(w.StartAngle, w.Sweep()).Path(tolerance)
	p := BezPath{
		MoveTo(circle.Center),
		LineTo(arc[0].P0),
	}
	p = append(p, arc[1:]...)
	p.ClosePath()
	return p
}

// ComputeSlices partitions the circle among the present samples of values, in
// order and proportionally to their values. The wedges are contiguous, start at
// 0° and end at exactly 360° unless no sample is positive, in which case every
// wedge is empty. Negative samples count as zero and get empty wedges.
func ComputeSlices(values Series) []Wedge {
	var total float64
	for _, v := range values.Present() {
		total += max(v, 0)
	}
	share := 360 / total
	if total == 0 {
		share = 0
	}

	var out []Wedge
	var start float64
	for i, v := range values.Present() {
		end := start + max(v, 0)*share
		out = append(out, Wedge{
			StartAngle: start,
			EndAngle:   end,
			Value:      v,
			Index:      i,
		})
		start = end
	}
	if total == 0 {
		return out
	}
	// The last positive wedge closes the circle; empty wedges after it sit at
	// 360°.
	last := len(out) - 1
	for out[last].Value <= 0 {
		last--
	}
	out[last].EndAngle = 360
	for i := last + 1; i < len(out); i++ {
		out[i].StartAngle, out[i].EndAngle = 360, 360
	}
	return out
}

// HitResult is the outcome of [HitTest].
type HitResult int

const (
	// The point lies outside the pie's circle.
	HitOutside HitResult = iota
	// The point lies inside the circle but on no wedge: on a boundary between
	// two wedges, or on an empty pie.
	HitMiss
	// The point lies on a wedge.
	HitWedge
)

func (r HitResult) String() string {
	switch r {
	case HitOutside:
		return "outside"
	case HitMiss:
		return "miss"
	case HitWedge:
		return "wedge"
	default:
		return fmt.Sprintf("HitResult(%d)", int(r))
	}
}

// HitTest finds the wedge under pt, for a pie drawn into the circle inscribed in
// bounds. It returns the wedge's position in wedges and HitWedge, or -1 and
// either HitOutside or HitMiss.
//
// Points exactly on a wedge boundary hit neither wedge.
func HitTest(wedges []Wedge, pt Point, bounds Rect) (int, HitResult) {
	circle := bounds.InscribedCircle()
	if !circle.Contains(pt) {
		return -1, HitOutside
	}
	angle := pt.AngleFrom(circle.Center)
	for i, w := range wedges {
		if w.contains(angle) {
			return i, HitWedge
		}
	}
	return -1, HitMiss
}
