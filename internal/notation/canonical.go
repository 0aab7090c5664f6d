// Package notation parses and formats face-turn sequences in standard
// Singmaster notation.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

// ErrInvalidNotation is returned when a token is not a face turn.
var ErrInvalidNotation = errors.New("notation: invalid move")

// ParseNotation parses a single move.
// Examples: R, R', R2, U, U', U2
func ParseNotation(s string) (types.Move, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, false
	}

	var face types.Face
	switch s[0] {
	case 'U':
		face = types.FaceU
	case 'R':
		face = types.FaceR
	case 'F':
		face = types.FaceF
	case 'D':
		face = types.FaceD
	case 'L':
		face = types.FaceL
	case 'B':
		face = types.FaceB
	default:
		return types.Move{}, false
	}

	turn := types.TurnCW
	switch s[1:] {
	case "":
	case "'", "`", "3":
		turn = types.TurnCCW
	case "2", "2'":
		turn = types.Turn180
	default:
		return types.Move{}, false
	}

	return types.Move{Face: face, Turn: turn}, true
}

// ParseSequence parses a whitespace-separated sequence of moves. The first
// token that is not a move fails the whole sequence.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, ok := ParseNotation(part)
		if !ok {
			return nil, fmt.Errorf("token %d %q: %w", i+1, part, ErrInvalidNotation)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
