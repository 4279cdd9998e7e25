// Package chartgeom computes the geometry of bar, line and pie charts: axis
// bounds with "nice" gridlines, line and area paths through series with missing
// samples, pie wedges with hit testing, and bar layout. It draws nothing and
// holds no state; every function maps data and options to geometry, and callers
// recompute whenever either changes.
//
// # Series
//
// A [Series] is a sequence of optional samples. Missing samples are skipped by
// every computation: they split lines into separate runs (see [Series.Runs]),
// they add no wedge to pie charts, and they are left out of axis bounds. A
// [Dataset] groups several series with the labels of their samples.
//
// # Axes
//
// [ComputeBounds] picks the distance between gridlines, the gap, from the
// multiples of a small set of bases, by default 1, 2 and 5 times a power of
// ten (see [NiceGap]). The bounds are then rounded outwards to multiples of the
// gap. The result, [AxisBounds], provides the tick values and their labels.
//
// # Lines
//
// [BuildPath] turns a series into a [BezPath], straight or smoothed with
// quadratic Béziers, optionally closed into an area. Paths are built in chart
// space, which is y-up; [ViewTransform] maps them into a y-down view.
//
// Touch indicators need the inverse: the point of a path at a given x. That
// is what [BezPath.LengthTo] and [BezPath.PointAtFraction] (or their
// combination, [BezPath.PointAtX]) compute. All measurements flatten curves
// into [FlattenSteps] straight steps.
//
// # Path elements and segments
//
// Paths have two representations: [PathElement] and [PathSegment]. Path
// elements are akin to drawing commands, consisting of pen moves ([MoveTo]) and
// drawing commands ([LineTo], [QuadTo], etc.) that start where the pen is.
// Segments are self-contained and carry their start points. [Elements] and
// [Segments] convert between the two.
//
// # Pies
//
// [ComputeSlices] partitions a circle into [Wedge] values, measured in degrees
// clockwise from three o'clock. [HitTest] maps a point back to its wedge and
// [Wedge.Path] outlines a wedge with cubic Béziers.
//
// # Bars
//
// [LayoutBars] places one group of bars per label and one bar per series in
// each group, and [BarIndexAtX] finds the group under a touch.
//
// # Iterators
//
// Functions that produce one value at a time, such as [Series.Present],
// [PointsOf] or [Arc.Cubics], return iterators instead of slices. Use
// [slices.Collect] to turn them into slices.
package chartgeom
