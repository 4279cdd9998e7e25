package main

import (
	"fmt"

	"github.com/chartui/chartgeom"
)

// Tolerance of the arc approximation of pie wedges, in output units.
const arcTolerance = 0.1

var svgOpts = chartgeom.SVGOptions{MaxPrecision: 2}

type tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type axisReport struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Gap       float64 `json:"gap"`
	TickCount int     `json:"tickCount"`
	Ticks     []tick  `json:"ticks"`
}

func axisReportOf(ds chartgeom.Dataset, opts chartgeom.AxisOptions) (axisReport, error) {
	b, err := ds.Bounds(opts)
	if err != nil {
		return axisReport{}, fmt.Errorf("failed computing bounds: %w", err)
	}
	r := axisReport{
		Min:       b.Min,
		Max:       b.Max,
		Gap:       b.Gap,
		TickCount: b.TickCount,
	}
	for _, v := range b.Ticks() {
		r.Ticks = append(r.Ticks, tick{Value: v, Label: chartgeom.FormatTick(v, b)})
	}
	return r, nil
}

type lineFlags struct {
	width, height  float64
	smooth, closed bool
	atValue        float64
	at             *float64
}

type point struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type lineSeries struct {
	Label     string  `json:"label"`
	Path      string  `json:"path"`
	Length    float64 `json:"length"`
	Points    []point `json:"points"`
	Indicator *point  `json:"indicator,omitempty"`
}

// lineReportOf draws all series on one scale, in view coordinates.
func lineReportOf(ds chartgeom.Dataset, f lineFlags) []lineSeries {
	size := chartgeom.Sz(f.width, f.height)
	view := chartgeom.ViewTransform(chartgeom.NewRectFromOrigin(chartgeom.Point{}, size))
	lo, hi, _ := ds.MinMax()
	opts := chartgeom.NewLineOptions(size, ds.Len(), lo, hi)
	opts.Smooth = f.smooth
	opts.Closed = f.closed

	out := make([]lineSeries, 0, len(ds.Series))
	for _, s := range ds.Series {
		path := chartgeom.BuildPath(s.Values, opts)
		ls := lineSeries{
			Label:  s.Label,
			Path:   path.Transform(view).SVG(svgOpts),
			Length: path.Length(),
		}
		for i, pt := range chartgeom.PointsOf(s.Values, opts) {
			pt = pt.Transform(view)
			ls.Points = append(ls.Points, point{Index: i, X: pt.X, Y: pt.Y})
		}
		if f.at != nil && path.HasSegments() {
			x := chartgeom.Pt(*f.at, 0).Transform(view.Invert()).X
			pt := path.PointAtX(x).Transform(view)
			ls.Indicator = &point{
				Index: chartgeom.NearestIndex(x, opts.StepX, ds.Len()),
				X:     pt.X,
				Y:     pt.Y,
			}
		}
		out = append(out, ls)
	}
	return out
}

type pieFlags struct {
	size   float64
	series int
}

func (f pieFlags) slices(ds chartgeom.Dataset) ([]chartgeom.Wedge, error) {
	if f.series < 0 || f.series >= len(ds.Series) {
		return nil, fmt.Errorf("no series %d in a dataset of %d series", f.series, len(ds.Series))
	}
	return chartgeom.ComputeSlices(ds.Series[f.series].Values), nil
}

func (f pieFlags) bounds() chartgeom.Rect {
	return chartgeom.NewRectFromOrigin(chartgeom.Point{}, chartgeom.Sz(f.size, f.size))
}

type wedge struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Path       string  `json:"path"`
}

func pieReportOf(ds chartgeom.Dataset, f pieFlags) ([]wedge, error) {
	wedges, err := f.slices(ds)
	if err != nil {
		return nil, err
	}
	circle := f.bounds().InscribedCircle()
	out := make([]wedge, len(wedges))
	for i, w := range wedges {
		out[i] = wedge{
			Label:      ds.Labels[w.Index],
			Value:      w.Value,
			StartAngle: w.StartAngle,
			EndAngle:   w.EndAngle,
			Path:       w.Path(circle, arcTolerance).SVG(svgOpts),
		}
	}
	return out, nil
}

type hitReport struct {
	Result string `json:"result"`
	Index  int    `json:"index"`
	Label  string `json:"label,omitempty"`
}

func hitReportOf(ds chartgeom.Dataset, f pieFlags, pt chartgeom.Point) (hitReport, error) {
	wedges, err := f.slices(ds)
	if err != nil {
		return hitReport{}, err
	}
	i, res := chartgeom.HitTest(wedges, pt, f.bounds())
	r := hitReport{Result: res.String(), Index: -1}
	if res == chartgeom.HitWedge {
		r.Index = wedges[i].Index
		r.Label = ds.Labels[r.Index]
	}
	return r, nil
}

type bar struct {
	Group  string  `json:"group"`
	Series string  `json:"series"`
	Value  float64 `json:"value"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type barsReport struct {
	Axis axisReport `json:"axis"`
	Bars []bar      `json:"bars"`
}

func barsReportOf(ds chartgeom.Dataset, opts chartgeom.AxisOptions, size chartgeom.Size) (barsReport, error) {
	b, err := ds.Bounds(opts)
	if err != nil {
		return barsReport{}, fmt.Errorf("failed computing bounds: %w", err)
	}
	axis, err := axisReportOf(ds, opts)
	if err != nil {
		return barsReport{}, err
	}
	view := chartgeom.ViewTransform(chartgeom.NewRectFromOrigin(chartgeom.Point{}, size))
	r := barsReport{Axis: axis}
	for _, slot := range chartgeom.LayoutBars(ds, b, size) {
		rect := slot.Rect.Transform(view)
		r.Bars = append(r.Bars, bar{
			Group:  ds.Labels[slot.Group],
			Series: ds.Series[slot.Series].Label,
			Value:  slot.Value,
			X:      rect.X0,
			Y:      rect.Y0,
			Width:  rect.Width(),
			Height: rect.Height(),
		})
	}
	return r, nil
}
