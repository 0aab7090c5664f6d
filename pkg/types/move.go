// Package types contains shared type definitions for the gocube_twophase module.
package types

import "lukechampine.com/frand"

// NumMoves is the number of distinct face turns.
const NumMoves = 18

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// axes lists the faces in move-table order.
var axes = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Axis returns the position of the face in move-table order (U R F D L B),
// or -1 for an unknown face.
func (f Face) Axis() int {
	for i, a := range axes {
		if a == f {
			return i
		}
	}
	return -1
}

// FaceFromAxis returns the face for a move-table axis in [0,6).
func FaceFromAxis(axis int) Face {
	return axes[axis]
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Power returns how many clockwise quarter turns the turn amounts to.
func (t Turn) Power() int {
	switch t {
	case TurnCW:
		return 1
	case Turn180:
		return 2
	case TurnCCW:
		return 3
	}
	return 0
}

// Move represents a single face turn.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Predefined moves, in move-table order.
var (
	U      = Move{FaceU, TurnCW}
	U2     = Move{FaceU, Turn180}
	UPrime = Move{FaceU, TurnCCW}
	R      = Move{FaceR, TurnCW}
	R2     = Move{FaceR, Turn180}
	RPrime = Move{FaceR, TurnCCW}
	F      = Move{FaceF, TurnCW}
	F2     = Move{FaceF, Turn180}
	FPrime = Move{FaceF, TurnCCW}
	D      = Move{FaceD, TurnCW}
	D2     = Move{FaceD, Turn180}
	DPrime = Move{FaceD, TurnCCW}
	L      = Move{FaceL, TurnCW}
	L2     = Move{FaceL, Turn180}
	LPrime = Move{FaceL, TurnCCW}
	B      = Move{FaceB, TurnCW}
	B2     = Move{FaceB, Turn180}
	BPrime = Move{FaceB, TurnCCW}
)

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// Index encodes the move as 3*axis + power-1, the column used by every move
// table. Axis order is U R F D L B; power 1 is a quarter turn, 2 a half
// turn, 3 the inverse turn.
func (m Move) Index() int {
	return 3*m.Face.Axis() + m.Turn.Power() - 1
}

// Phase2 reports whether the move keeps a cube inside the phase-2 subgroup
// <U, D, R2, F2, L2, B2>.
func (m Move) Phase2() bool {
	switch m.Face {
	case FaceU, FaceD:
		return true
	}
	return m.Turn == Turn180
}

// MoveFromIndex decodes a move-table column back into a Move.
func MoveFromIndex(i int) Move {
	var turn Turn
	switch i % 3 {
	case 0:
		turn = TurnCW
	case 1:
		turn = Turn180
	case 2:
		turn = TurnCCW
	}
	return Move{Face: axes[i/3], Turn: turn}
}

// AllMoves returns the 18 moves in move-table order.
func AllMoves() []Move {
	moves := make([]Move, NumMoves)
	for i := range moves {
		moves[i] = MoveFromIndex(i)
	}
	return moves
}

// InverseSequence returns the sequence that undoes moves.
func InverseSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// RandomSequence returns n uniformly random moves.
func RandomSequence(n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = MoveFromIndex(frand.Intn(NumMoves))
	}
	return moves
}
