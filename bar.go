package chartgeom

// BarSlot is the rectangle of one bar in chart space.
type BarSlot struct {
	// Group is the index of the label the bar belongs to.
	Group int
	// Series is the index of the series the bar shows.
	Series int
	// Rect is the bar, from the zero line to the value. Bars of negative values
	// extend below the zero line; bars of missing values have no height.
	Rect  Rect
	Value float64
}

// LayoutBars lays out the bars of a grouped bar chart of the given size. Chart
// space is y-up, with the origin at the bottom left and bounds.Min at y = 0.
//
// Every label gets a group of equal width. Groups are separated by a third of
// that width, and bars within a group by a fifth of that separation.
func LayoutBars(ds Dataset, bounds AxisBounds, size Size) []BarSlot {
	groups := ds.Len()
	series := len(ds.Series)
	if groups == 0 || series == 0 {
		return nil
	}

	slot := size.Width / float64(groups)
	spacing := slot / 3
	inner := spacing / 5
	barWidth := max((slot-spacing-inner*float64(series-1))/float64(series), 0)
	ratio := bounds.Ratio(size.Height)
	zero := -bounds.Min * ratio

	out := make([]BarSlot, 0, groups*series)
	for g := range groups {
		x := float64(g)*slot + spacing/2
		for s, ns := range ds.Series {
			var v float64
			if ns.Values[g].Valid {
				v = ns.Values[g].V
			}
			out = append(out, BarSlot{
				Group:  g,
				Series: s,
				Rect:   NewRectFromPoints(Pt(x, zero), Pt(x+barWidth, zero+v*ratio)),
				Value:  v,
			})
			x += barWidth + inner
		}
	}
	return out
}

// BarIndexAtX returns the group under x in a bar chart of the given width,
// clamped to [0, groups−1]. It returns -1 if there are no groups.
func BarIndexAtX(x, width float64, groups int) int {
	if groups <= 0 {
		return -1
	}
	if width <= 0 {
		return 0
	}
	i := int(x / (width / float64(groups)))
	return min(max(i, 0), groups-1)
}
