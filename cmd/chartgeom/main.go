// Package main provides the chartgeom command, which computes chart geometry
// for tabular data and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chartui/chartgeom"
	"github.com/chartui/chartgeom/internal/source"
	"github.com/spf13/cobra"
)

var (
	sheet  string
	watch  bool
	pretty bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartgeom",
		Short: "Compute chart geometry from tabular data",
		Long: `chartgeom reads a table from a .csv or .xlsx file and prints the
geometry of a chart of it as JSON: axis bounds and ticks, line paths, pie
wedges, or bar rectangles.

The first row of the table names the series, the first column holds the
labels. Empty cells are missing samples.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Worksheet to read from .xlsx files (default: first sheet)")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "Recompute whenever the input file changes")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newAxisCmd(),
		newLineCmd(),
		newPieCmd(),
		newHitCmd(),
		newBarsCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// run loads the dataset at path, computes a report from it and prints the
// report. With --watch, it does so again whenever the file changes.
func run(cmd *cobra.Command, path string, report func(chartgeom.Dataset) (any, error)) error {
	out := cmd.OutOrStdout()
	render := func() error {
		ds, err := source.Load(path, source.Options{Sheet: sheet})
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		v, err := report(ds)
		if err != nil {
			return err
		}
		return writeJSON(out, v)
	}
	if !watch {
		return render()
	}
	return watchFile(cmd.Context(), path, render)
}

func writeJSON(w io.Writer, v any) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
