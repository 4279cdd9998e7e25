package main

import (
	"fmt"

	"github.com/chartui/chartgeom"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// axisFlags are the flags of commands that scale a value axis.
type axisFlags struct {
	fs          *pflag.FlagSet
	startAtZero bool
	showValues  bool
	min, max    float64
}

func newAxisFlags() *axisFlags {
	f := &axisFlags{fs: pflag.NewFlagSet("axis", pflag.ContinueOnError)}
	f.fs.BoolVar(&f.startAtZero, "start-at-zero", true, "Include zero in the value axis")
	f.fs.BoolVar(&f.showValues, "show-values", false, "Leave room for value labels above the data")
	f.fs.Float64Var(&f.min, "min", 0, "Fixed lower bound of the value axis")
	f.fs.Float64Var(&f.max, "max", 0, "Fixed upper bound of the value axis")
	return f
}

func (f *axisFlags) options() chartgeom.AxisOptions {
	opts := chartgeom.DefaultAxisOptions()
	opts.StartAtZero = f.startAtZero
	opts.ShowValues = f.showValues
	if f.fs.Changed("min") {
		v := f.min
		opts.FixedMin = &v
	}
	if f.fs.Changed("max") {
		v := f.max
		opts.FixedMax = &v
	}
	return opts
}

func newAxisCmd() *cobra.Command {
	af := newAxisFlags()
	cmd := &cobra.Command{
		Use:   "axis FILE",
		Short: "Print the value axis bounds and ticks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], func(ds chartgeom.Dataset) (any, error) {
				return axisReportOf(ds, af.options())
			})
		},
	}
	cmd.Flags().AddFlagSet(af.fs)
	return cmd
}

func newLineCmd() *cobra.Command {
	var lf lineFlags
	cmd := &cobra.Command{
		Use:   "line FILE",
		Short: "Print the paths of a line chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("at") {
				at := lf.atValue
				lf.at = &at
			}
			return run(cmd, args[0], func(ds chartgeom.Dataset) (any, error) {
				return lineReportOf(ds, lf), nil
			})
		},
	}
	cmd.Flags().Float64Var(&lf.width, "width", 300, "Plot width")
	cmd.Flags().Float64Var(&lf.height, "height", 200, "Plot height")
	cmd.Flags().BoolVar(&lf.smooth, "smooth", false, "Draw smooth curves")
	cmd.Flags().BoolVar(&lf.closed, "closed", false, "Close lines into areas")
	cmd.Flags().Float64Var(&lf.atValue, "at", 0, "Report the touch indicator at this x in view coordinates")
	return cmd
}

func newPieCmd() *cobra.Command {
	var pf pieFlags
	cmd := &cobra.Command{
		Use:   "pie FILE",
		Short: "Print the wedges of a pie chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], func(ds chartgeom.Dataset) (any, error) {
				return pieReportOf(ds, pf)
			})
		},
	}
	cmd.Flags().Float64Var(&pf.size, "size", 200, "Width and height of the pie")
	cmd.Flags().IntVar(&pf.series, "series", 0, "Index of the series to show")
	return cmd
}

func newHitCmd() *cobra.Command {
	var pf pieFlags
	var x, y float64
	cmd := &cobra.Command{
		Use:   "hit FILE",
		Short: "Print the pie wedge at a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], func(ds chartgeom.Dataset) (any, error) {
				return hitReportOf(ds, pf, chartgeom.Pt(x, y))
			})
		},
	}
	cmd.Flags().Float64Var(&pf.size, "size", 200, "Width and height of the pie")
	cmd.Flags().IntVar(&pf.series, "series", 0, "Index of the series to show")
	cmd.Flags().Float64Var(&x, "x", 0, "X coordinate of the point")
	cmd.Flags().Float64Var(&y, "y", 0, "Y coordinate of the point")
	return cmd
}

func newBarsCmd() *cobra.Command {
	af := newAxisFlags()
	var width, height float64
	cmd := &cobra.Command{
		Use:   "bars FILE",
		Short: "Print the bars of a bar chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid size %gx%g", width, height)
			}
			return run(cmd, args[0], func(ds chartgeom.Dataset) (any, error) {
				return barsReportOf(ds, af.options(), chartgeom.Sz(width, height))
			})
		},
	}
	cmd.Flags().AddFlagSet(af.fs)
	cmd.Flags().Float64Var(&width, "width", 300, "Plot width")
	cmd.Flags().Float64Var(&height, "height", 200, "Plot height")
	return cmd
}
