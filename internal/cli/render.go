package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("15"),
	cube.Yellow: lipgloss.Color("11"),
	cube.Green:  lipgloss.Color("34"),
	cube.Blue:   lipgloss.Color("27"),
	cube.Red:    lipgloss.Color("160"),
	cube.Orange: lipgloss.Color("208"),
}

func sticker(c cube.Color) string {
	return lipgloss.NewStyle().
		Background(stickerColors[c]).
		Foreground(lipgloss.Color("0")).
		Render(" " + c.String() + " ")
}

func renderFace(f *cube.Facelets, face cube.Face) string {
	rows := make([]string, 3)
	for row := 0; row < 3; row++ {
		var sb strings.Builder
		for col := 0; col < 3; col++ {
			sb.WriteString(sticker(f[face][row*3+col]))
		}
		rows[row] = sb.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderNet draws the sticker net with U above and D below the L F R B band.
func renderNet(f cube.Facelets) string {
	indent := lipgloss.NewStyle().PaddingLeft(9)
	band := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(&f, cube.L),
		renderFace(&f, cube.F),
		renderFace(&f, cube.R),
		renderFace(&f, cube.B),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		indent.Render(renderFace(&f, cube.U)),
		band,
		indent.Render(renderFace(&f, cube.D)),
	)
}

// printCoordinates writes every coordinate with its domain size.
func printCoordinates(w io.Writer, co cube.Coordinates) {
	rows := []struct {
		name  string
		value int
		size  int
	}{
		{"twist", co.Twist, cube.NTwist},
		{"flip", co.Flip, cube.NFlip},
		{"parity", co.Parity, cube.NParity},
		{"FRtoBR", co.FRtoBR, cube.NFRtoBR},
		{"URFtoDLF", co.URFtoDLF, cube.NURFtoDLF},
		{"URtoUL", co.URtoUL, cube.NURtoUL},
		{"UBtoDF", co.UBtoDF, cube.NUBtoDF},
		{"URtoDF", co.URtoDF, cube.NURtoDFAll},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-9s %s %s\n", r.name,
			valueStyle.Render(fmt.Sprintf("%6d", r.value)),
			statusStyle.Render(fmt.Sprintf("/ %d", r.size)))
	}
}
