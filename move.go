package twophase

import (
	"github.com/SeamusWaldron/gocube_twophase/internal/notation"
	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

// Move represents a single face turn.
type Move = types.Move

// ParseMoves parses a whitespace-separated sequence in standard notation.
// Examples: "R U R' U'", "F2 B2"
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats a sequence as space-separated standard notation.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// Scramble returns the cube reached by applying s to a solved cube.
func Scramble(s string) (*cube.Cube, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return nil, err
	}
	return cube.FromMoves(moves), nil
}
