// cubeprune - builds and inspects two-phase solver lookup tables.
package main

import (
	"github.com/SeamusWaldron/gocube_twophase/internal/cli"
)

func main() {
	cli.Execute()
}
