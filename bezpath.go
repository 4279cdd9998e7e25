package chartgeom

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a Bézier path.
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// QuadTo returns a quadratic Bézier element with control point p0 ending at p1.
func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a Bézier path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [QuadBez], and [CubicBez]).
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = PathSegment{}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// Steps returns the straight steps approximating the segment. A line is its own
// single step; curves are split into [FlattenSteps] steps of equal parameter
// length.
func (seg PathSegment) Steps() iter.Seq[Line] {
	switch seg.Kind {
	case LineKind:
		return func(yield func(Line) bool) { yield(seg.Line()) }
	case QuadKind, CubicKind:
		return flatSteps(seg, FlattenSteps)
	default:
		return func(yield func(Line) bool) {}
	}
}

// Arclen returns the flattened length of the segment.
func (seg PathSegment) Arclen() float64 {
	var sum float64
	for l := range seg.Steps() {
		sum += l.Length()
	}
	return sum
}

// LengthTo returns the flattened length of the segment from its start up to the
// first point where it reaches x. Walking stops at the first step that starts
// at or beyond x; a step crossing x contributes the part before x.
func (seg PathSegment) LengthTo(x float64) float64 {
	var sum float64
	for l := range seg.Steps() {
		switch {
		case l.P0.X >= x:
			return sum
		case l.P1.X > x:
			return sum + l.LengthTo(x)
		}
		sum += l.Length()
		if l.P1.X == x {
			return sum
		}
	}
	return sum
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

// BezPath is a Bézier path made of lines and quadratic and cubic Béziers. It may
// contain multiple subpaths. Each subpath begins with a MoveTo, followed by zero
// or more LineTo, QuadTo and CubicTo elements, and optionally ends with a
// ClosePath.
//
// Chart lines are built as BezPaths (see [BuildPath]), and the measuring methods
// on this type back the touch indicator of line charts: [BezPath.LengthTo] turns
// a touch x into an arc length, and [BezPath.PointAtFraction] turns that back
// into a point on the line.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Transform returns a new path with an affine transformation applied to it.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// HasSegments reports whether the path contains any segments. A path that consists only
// of MoveTo and ClosePath elements has no segments.
func (p BezPath) HasSegments() bool {
	for i := range p {
		el := p[i]
		if el.Kind != MoveToKind && el.Kind != ClosePathKind {
			return true
		}
	}
	return false
}

// Length returns the total flattened arc length of the path, including the
// implicit closing lines of closed subpaths.
func (p BezPath) Length() float64 {
	var sum float64
	for seg := range p.Segments() {
		sum += seg.Arclen()
	}
	return sum
}

// LengthTo returns the arc length from the start of the path to the first point
// where the path reaches x.
//
// Elements ending before x count in full. The walk stops inside the first
// element that ends beyond x, after an element ending at x, at a MoveTo beyond
// x, and before an element that doesn't move right, such as the drop to the
// baseline of a closed area. ClosePath elements don't contribute.
func (p BezPath) LengthTo(x float64) float64 {
	var sum float64
	var pen Point
	for _, el := range p {
		var seg PathSegment
		switch el.Kind {
		case MoveToKind:
			if el.P0.X > x {
				return sum
			}
			pen = el.P0
			continue
		case LineToKind:
			seg = Line{pen, el.P0}.Seg()
		case QuadToKind:
			seg = QuadBez{pen, el.P0, el.P1}.Seg()
		case CubicToKind:
			seg = CubicBez{pen, el.P0, el.P1, el.P2}.Seg()
		default:
			continue
		}
		end := seg.End()
		switch {
		case end.X <= pen.X:
			return sum
		case end.X > x:
			return sum + seg.LengthTo(x)
		}
		sum += seg.Arclen()
		if end.X == x {
			return sum
		}
		pen = end
	}
	return sum
}

// Trim returns the part of the path between the arc length fractions from and
// to, both in [0, 1]. The result consists of straight lines only; curves are
// flattened first.
func (p BezPath) Trim(from, to float64) BezPath {
	total := p.Length()
	lo := max(from, 0) * total
	hi := min(to, 1) * total
	var out BezPath
	if total == 0 || lo > hi {
		return out
	}

	var pen option[Point]
	var s float64
	for seg := range p.Segments() {
		for l := range seg.Steps() {
			d := l.Length()
			if d == 0 {
				continue
			}
			if s > hi {
				return out
			}
			if s+d >= lo {
				a := l.Eval((max(lo, s) - s) / d)
				b := l.Eval((min(hi, s+d) - s) / d)
				if !pen.isSet || pen.value != a {
					out.MoveTo(a)
				}
				out.LineTo(b)
				pen.set(b)
			}
			s += d
		}
	}
	return out
}

// trimWindow is the half-width of the window, as a fraction of the total
// length, that PointAtFraction trims around the requested position.
const trimWindow = 0.001

// PointAtFraction returns the point at fraction t of the path's arc length.
//
// It trims a small window around t and returns the center of the window's
// bounding box, which approximates the point well for smooth paths. At the end
// of the path, the window is clamped to [1−0.001, 1]. Fractions above 1 map to 0
// and fractions below 0 map to 1.
func (p BezPath) PointAtFraction(t float64) Point {
	switch {
	case t > 1:
		t = 0
	case t < 0:
		t = 1
	}
	const completion = 1 - trimWindow
	start, end := t-trimWindow, t+trimWindow
	if t > completion {
		start, end = completion, 1
	}
	trimmed := p.Trim(start, end)
	if len(trimmed) == 0 {
		return Point{}
	}
	return trimmed.FlatBoundingBox().Center()
}

// PointAtX returns the point of the path that a touch at x should highlight:
// the point at the arc length fraction where the path reaches x.
func (p BezPath) PointAtX(x float64) Point {
	total := p.Length()
	if total == 0 {
		return Point{}
	}
	return p.PointAtFraction(p.LengthTo(x) / total)
}

// YAtX returns the y coordinate of [BezPath.PointAtX].
func (p BezPath) YAtX(x float64) float64 {
	return p.PointAtX(x).Y
}

// FlatBoundingBox returns the bounding box of the flattened path. MoveTo
// elements count even when they aren't followed by any segments.
func (p BezPath) FlatBoundingBox() Rect {
	var bbox option[Rect]
	add := func(pt Point) {
		if bbox.isSet {
			bbox.set(bbox.value.UnionPoint(pt))
		} else {
			bbox.set(NewRectFromPoints(pt, pt))
		}
	}
	for _, el := range p {
		if el.Kind == MoveToKind {
			add(el.P0)
		}
	}
	for seg := range p.Segments() {
		for l := range seg.Steps() {
			add(l.P0)
			add(l.P1)
		}
	}
	return bbox.value
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}
