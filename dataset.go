package chartgeom

// NamedSeries is a series with the label it is shown under in legends.
type NamedSeries struct {
	Label  string
	Values Series
}

// Dataset is the data of one chart: the labels along the category axis and any
// number of series with one sample per label.
type Dataset struct {
	Labels []string
	Series []NamedSeries
}

// NewDataset validates and returns a dataset. Every series must have exactly
// one sample per label; mismatched lengths are reported as an [*InputError]
// rather than padded or truncated.
func NewDataset(labels []string, series ...NamedSeries) (Dataset, error) {
	for i, s := range series {
		if len(s.Values) != len(labels) {
			return Dataset{}, invalid("dataset",
				"series %d (%q) has %d values but there are %d labels",
				i, s.Label, len(s.Values), len(labels))
		}
	}
	return Dataset{
		Labels: labels,
		Series: series,
	}, nil
}

// Len returns the number of samples per series.
func (ds Dataset) Len() int {
	return len(ds.Labels)
}

// Values returns the samples of all series, concatenated. It is the input to
// [ComputeBounds] when one axis is shared by all series.
func (ds Dataset) Values() Series {
	var out Series
	for _, s := range ds.Series {
		out = append(out, s.Values...)
	}
	return out
}

// MinMax returns the smallest and largest present sample across all series.
func (ds Dataset) MinMax() (lo, hi float64, ok bool) {
	return ds.Values().MinMax()
}

// Bounds computes the axis bounds shared by all series of the dataset.
func (ds Dataset) Bounds(opts AxisOptions) (AxisBounds, error) {
	return ComputeBounds(ds.Values(), opts)
}

// GlobalOffset returns the minimum over all series, for drawing several lines
// on the same scale. It returns nil for a dataset without samples.
func (ds Dataset) GlobalOffset() *float64 {
	lo, _, ok := ds.MinMax()
	if !ok {
		return nil
	}
	return &lo
}
