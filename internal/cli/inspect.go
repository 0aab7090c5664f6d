package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_twophase/internal/notation"
	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
)

// runInspect applies a move sequence to a solved cube and reports its
// coordinates and phase-2 lower bound.
func runInspect(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Usage()
	}

	moves, err := notation.ParseSequence(args[0])
	if err != nil {
		return err
	}

	c := cube.FromMoves(moves)
	co := c.Coordinates()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Moves: %s (%d)", notation.FormatSequence(moves), len(moves))))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderNet(c.Facelets()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Coordinates"))
	printCoordinates(out, co)
	fmt.Fprintln(out)

	set, err := buildTables(cmd.Context())
	if err != nil {
		return err
	}

	bound, ok := set.Phase2Bound(co)
	if !ok {
		fmt.Fprintln(out, statusStyle.Render("Not in the phase-2 subgroup: corners twisted, edges flipped or slice edges outside the slice."))
		return nil
	}
	fmt.Fprintf(out, "Phase-2 lower bound: %s\n", valueStyle.Render(fmt.Sprint(bound)))

	if merged, ok := set.Merge.Lookup(co.URtoUL, co.UBtoDF); ok {
		fmt.Fprintf(out, "URtoDF from merge:   %s\n", valueStyle.Render(fmt.Sprint(merged)))
	}
	return nil
}
