package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/SeamusWaldron/gocube_twophase/pkg/tables"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the phase-2 pruning depth distribution",
	Long: `Show how many (corner permutation, slice permutation, parity) states lie at
each phase-2 distance from solved, with the mean and standard deviation of
the distribution.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// depthSummary describes the pruning depth distribution.
type depthSummary struct {
	Depths []float64
	Counts []float64
	Total  float64
	Mean   float64
	StdDev float64
}

// summarizeDepths turns a pruning histogram into a weighted sample. The
// unvisited bucket is ignored.
func summarizeDepths(h [tables.Unvisited + 1]int) depthSummary {
	var s depthSummary
	for d := 0; d < tables.Unvisited; d++ {
		if h[d] == 0 {
			continue
		}
		s.Depths = append(s.Depths, float64(d))
		s.Counts = append(s.Counts, float64(h[d]))
	}
	if len(s.Depths) == 0 {
		return s
	}
	s.Total = floats.Sum(s.Counts)
	s.Mean, s.StdDev = stat.MeanStdDev(s.Depths, s.Counts)
	return s
}

func runStats(cmd *cobra.Command, args []string) error {
	set, err := buildTables(cmd.Context())
	if err != nil {
		return err
	}

	h := set.Pruning.Histogram()
	printDepths(cmd.OutOrStdout(), summarizeDepths(h), h[tables.Unvisited])
	return nil
}

func printDepths(w io.Writer, s depthSummary, unvisited int) {
	const barWidth = 40

	fmt.Fprintln(w, titleStyle.Render("Phase-2 pruning depths"))
	fmt.Fprintln(w)

	peak := 0.0
	if len(s.Counts) > 0 {
		peak = floats.Max(s.Counts)
	}
	for i, d := range s.Depths {
		n := int(float64(barWidth) * s.Counts[i] / peak)
		fmt.Fprintf(w, "  %2d %9d %s\n", int(d), int(s.Counts[i]), doneStyle.Render(strings.Repeat("#", n)))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  states  %s\n", valueStyle.Render(fmt.Sprintf("%d", int(s.Total))))
	fmt.Fprintf(w, "  mean    %s\n", valueStyle.Render(fmt.Sprintf("%.3f", s.Mean)))
	fmt.Fprintf(w, "  stddev  %s\n", valueStyle.Render(fmt.Sprintf("%.3f", s.StdDev)))
	if unvisited > 0 {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("  %d states unreached", unvisited)))
	}
}
