package twophase

import (
	"errors"

	"github.com/SeamusWaldron/gocube_twophase/internal/notation"
)

// Sentinel errors for the twophase package.
var (
	// Parsing errors
	ErrInvalidNotation = notation.ErrInvalidNotation

	// State errors
	ErrNotInPhase2 = errors.New("twophase: cube is not in the phase-2 subgroup")
)
