package twophase

import "github.com/SeamusWaldron/gocube_twophase/pkg/types"

// Well-known sequences, handy for checking tables by hand.
var (
	// Sexy move: R U R' U' - one of the most common algorithms
	SexyMove = []types.Move{types.R, types.U, types.RPrime, types.UPrime}

	// Inverse sexy move: U R U' R'
	InverseSexyMove = []types.Move{types.U, types.R, types.UPrime, types.RPrime}

	// T-perm swaps two U-layer corners and two U-layer edges. The result lies
	// in the phase-2 subgroup even though the sequence uses quarter R and F
	// turns.
	TPerm = []types.Move{
		types.R, types.U, types.RPrime, types.UPrime, types.RPrime, types.F, types.R2,
		types.UPrime, types.RPrime, types.UPrime, types.R, types.U, types.RPrime, types.FPrime,
	}
)
