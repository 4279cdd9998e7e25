package chartgeom

import (
	"math"
	"strconv"
)

// AxisOptions configures [ComputeBounds].
type AxisOptions struct {
	// StartAtZero clamps the bound opposite to the data to zero when all samples
	// share one sign.
	StartAtZero bool
	// FixedMin and FixedMax, if set, are used as the bounds as they are. The gap
	// is still derived from the data.
	FixedMin *float64
	FixedMax *float64
	// ShowValues reports whether value labels are drawn next to the data. Such
	// labels would be clipped when a bound is too close to the data, so bounds
	// within 5% of the data are moved out by one more gap.
	ShowValues bool
	// Bases are the mantissas of acceptable gaps, in ascending order and within
	// [1, 10). Nil means {1, 2, 5}.
	Bases []float64
}

// DefaultAxisOptions returns the options of a zero-based value axis with the
// usual 1-2-5 gaps.
func DefaultAxisOptions() AxisOptions {
	return AxisOptions{
		StartAtZero: true,
		Bases:       []float64{1, 2, 5},
	}
}

func (opts AxisOptions) bases() []float64 {
	if opts.Bases == nil {
		return []float64{1, 2, 5}
	}
	return opts.Bases
}

// AxisBounds are the aligned bounds of a value axis and the gap between its
// gridlines.
type AxisBounds struct {
	Min float64
	Max float64
	// Gap is the distance between ticks, one of the bases times a power of ten.
	Gap float64
	// TickCount is the number of gaps between Min and Max, round((Max−Min)/Gap).
	TickCount int
}

// DefaultBounds returns the bounds used when there is no data to scale to.
func DefaultBounds() AxisBounds {
	return AxisBounds{Min: 0, Max: 1, Gap: 0.1, TickCount: 10}
}

// Span returns Max−Min, or 1 if that is zero, so that it can be divided by.
func (b AxisBounds) Span() float64 {
	if s := b.Max - b.Min; s != 0 {
		return s
	}
	return 1
}

// Ratio returns how many units of length one unit of value takes up when the
// axis is drawn with the given length.
func (b AxisBounds) Ratio(length float64) float64 {
	return length / b.Span()
}

// Ticks returns the values of the TickCount+1 gridlines, from Min to Max.
func (b AxisBounds) Ticks() []float64 {
	if b.TickCount <= 0 {
		return []float64{b.Min}
	}
	out := make([]float64, b.TickCount+1)
	step := (b.Max - b.Min) / float64(b.TickCount)
	for i := range out {
		out[i] = b.Min + step*float64(i)
	}
	out[b.TickCount] = b.Max
	return out
}

// FormatTick formats the label of a gridline at v, using as many decimals as
// the gap needs.
func FormatTick(v float64, b AxisBounds) string {
	prec := 0
	if b.Gap > 0 && b.Gap < 1 {
		prec = int(math.Ceil(-math.Log10(b.Gap) - 1e-9))
		// Gaps such as 0.25 need one more digit than their magnitude.
		for prec < 15 && math.Abs(b.Gap*math.Pow10(prec)-math.Round(b.Gap*math.Pow10(prec))) > 1e-9 {
			prec++
		}
	}
	return strconv.FormatFloat(noNegZero(roundTo(v, prec)), 'f', prec, 64)
}

// NiceGap returns the gap between gridlines for data of the given magnitude:
// the smallest number of the form b×10^k, with b one of bases, that is strictly
// greater than magnitude, divided by ten. This results in 4 to 10 gaps from
// zero to the magnitude for the bases {1, 2, 5}.
func NiceGap(magnitude float64, bases []float64) (float64, error) {
	if err := checkBases(bases); err != nil {
		return 0, err
	}
	if !(magnitude > 0) || math.IsInf(magnitude, 0) {
		return 0, invalid("magnitude", "%g is not a positive finite number", magnitude)
	}

	// Find the decade k with bases[0]×10^k ≤ magnitude < bases[0]×10^(k+1),
	// searching down for small magnitudes and up for large ones.
	b0 := bases[0]
	k := 0
	if b0*math.Pow10(k) > magnitude {
		for b0*math.Pow10(k) > magnitude {
			k--
		}
	} else {
		for b0*math.Pow10(k+1) <= magnitude {
			k++
		}
	}
	for {
		for _, b := range bases {
			if b*math.Pow10(k) > magnitude {
				return b * math.Pow10(k-1), nil
			}
		}
		k++
	}
}

func checkBases(bases []float64) error {
	if len(bases) == 0 {
		return invalid("bases", "no bases")
	}
	for i, b := range bases {
		if !(b >= 1 && b < 10) {
			return invalid("bases", "base %g is outside of [1, 10)", b)
		}
		if i > 0 && b <= bases[i-1] {
			return invalid("bases", "bases aren't strictly ascending")
		}
	}
	return nil
}

// ComputeBounds computes the bounds and gap of a value axis showing values.
//
// Without present samples it returns [DefaultBounds]. If every sample is zero,
// the bounds are [0, 1]. Fixed bounds apply in both cases. Otherwise the gap is chosen by [NiceGap] from the
// largest magnitude (or, if the data has both signs, the sum of both
// magnitudes), and the bounds are rounded outwards to multiples of the gap.
//
// An error is returned for invalid bases or for fixed bounds that end up
// reversed; degenerate data never results in an error.
func ComputeBounds(values Series, opts AxisOptions) (AxisBounds, error) {
	bases := opts.bases()
	if err := checkBases(bases); err != nil {
		return AxisBounds{}, err
	}
	if opts.FixedMin != nil && opts.FixedMax != nil && *opts.FixedMin > *opts.FixedMax {
		return AxisBounds{}, invalid("bounds", "fixed min %g is above fixed max %g", *opts.FixedMin, *opts.FixedMax)
	}

	lo, hi, ok := values.MinMax()
	if !ok {
		return fixedDefault(opts, bases)
	}

	var magnitude float64
	if hi > 0 && lo < 0 {
		magnitude = math.Abs(hi) + math.Abs(lo)
	} else {
		magnitude = max(math.Abs(hi), math.Abs(lo))
	}
	if magnitude == 0 {
		return fixedDefault(opts, bases)
	}
	gap, err := NiceGap(magnitude, bases)
	if err != nil {
		return AxisBounds{}, err
	}

	b := AxisBounds{Gap: gap}
	if opts.FixedMax != nil {
		b.Max = *opts.FixedMax
	} else {
		b.Max = alignUp(hi, gap)
		switch {
		case opts.StartAtZero && hi < 0:
			b.Max = 0
		case opts.ShowValues && hi > 0 && hi > 0.95*b.Max:
			b.Max += gap
		}
	}
	if opts.FixedMin != nil {
		b.Min = *opts.FixedMin
	} else {
		b.Min = alignDown(lo, gap)
		switch {
		case opts.StartAtZero && lo > 0:
			b.Min = 0
		case opts.ShowValues && lo < 0 && lo < 0.95*b.Min:
			b.Min -= gap
		}
	}
	b.Min, b.Max = noNegZero(b.Min), noNegZero(b.Max)
	if b.Max < b.Min {
		return AxisBounds{}, invalid("bounds", "max %g is below min %g", b.Max, b.Min)
	}
	b.TickCount = int(math.Round((b.Max - b.Min) / gap))
	return b, nil
}

// fixedDefault returns [DefaultBounds] with the fixed bounds of opts applied.
// A bound that isn't fixed keeps its default unless that would put it past the
// fixed one, in which case it lies one unit beyond it.
func fixedDefault(opts AxisOptions, bases []float64) (AxisBounds, error) {
	b := DefaultBounds()
	if opts.FixedMin == nil && opts.FixedMax == nil {
		return b, nil
	}
	if opts.FixedMax != nil {
		b.Max = *opts.FixedMax
		if opts.FixedMin == nil && b.Min > b.Max {
			b.Min = b.Max - 1
		}
	}
	if opts.FixedMin != nil {
		b.Min = *opts.FixedMin
		if opts.FixedMax == nil && b.Max < b.Min {
			b.Max = b.Min + 1
		}
	}
	if span := b.Max - b.Min; span > 0 && span != 1 {
		gap, err := NiceGap(span, bases)
		if err != nil {
			return AxisBounds{}, err
		}
		b.Gap = gap
	}
	b.Min, b.Max = noNegZero(b.Min), noNegZero(b.Max)
	b.TickCount = int(math.Round((b.Max - b.Min) / b.Gap))
	return b, nil
}

// snap rounds q to the nearest integer if it is within floating point noise of
// it, and applies round otherwise. Without it, 0.7/0.1 would be rounded up to 8.
func snap(q float64, round func(float64) float64) float64 {
	if r := math.Round(q); math.Abs(q-r) < 1e-9 {
		return r
	}
	return round(q)
}

func alignUp(v, gap float64) float64 {
	return snap(v/gap, math.Ceil) * gap
}

func alignDown(v, gap float64) float64 {
	return snap(v/gap, math.Floor) * gap
}

func roundTo(v float64, prec int) float64 {
	p := math.Pow10(prec)
	return math.Round(v*p) / p
}

func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
