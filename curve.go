package chartgeom

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// FlattenSteps is the number of straight steps every curved path segment is
// approximated by when measuring lengths, trimming paths, or computing bounding
// boxes. The number does not depend on the curve's size; it is adequate at the
// scale of a chart on screen but not for precise geometry.
const FlattenSteps = 100

// ParametricCurve describes curves that can be evaluated at t ∈ [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Start returns the point at t = 0.
	Start() Point
	// End returns the point at t = 1.
	End() Point
}

// flatSteps approximates c with n lines of equal parameter length.
func flatSteps(c ParametricCurve, n int) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		a := c.Start()
		for i := 1; i <= n; i++ {
			var b Point
			if i == n {
				b = c.End()
			} else {
				b = c.Eval(float64(i) / float64(n))
			}
			if !yield(Line{a, b}) {
				return
			}
			a = b
		}
	}
}

// Elements converts a sequence of path segments to a sequence of path elements.
func Elements(seq iter.Seq[PathSegment]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var currentPos option[Point]
		for seg := range seq {
			start := seg.Start()
			if !currentPos.isSet || currentPos.value != start {
				if !yield(MoveTo(start)) {
					return
				}
			}
			if !yield(seg.PathElement()) {
				return
			}
			currentPos.set(seg.End())
		}
	}
}

// Segments converts a sequence of path elements to a sequence of path segments.
// ClosePath produces a line back to the start of the subpath, unless the pen is
// already there. A ClosePath before the first point does nothing.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		first := true
		var start, last Point
		for el := range seq {
			if first {
				if el.Kind == ClosePathKind {
					continue
				}
				first = false
				start, _ = el.EndPoint()
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(Line{p, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p := last
				last = el.P1
				if !yield(QuadBez{p, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(Line{p, start}.Seg()) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if n == 0 {
			// Flipping y-up paths into y-down views produces negative zeros.
			n = 0
		}
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
