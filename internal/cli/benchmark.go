package cli

import (
	"fmt"
	"math/rand"

	"github.com/ctessum/pic3d"
	"github.com/ctessum/pic3d/distribution"
	"github.com/ctessum/pic3d/solver"
)

// Grid size, cell width and time step the benchmark harness uses for
// every run regardless of distribution or particle count.
const (
	benchmarkGridSize  = 32
	benchmarkCellWidth = 10
	benchmarkDt        = 0.15
)

// newBenchmarkUniverse builds the fixed-size universe the benchmark
// harness uses and generates n particles from the distribution named by
// kind: one of U (uniform), C (cluster), E (explosion), or B (beam).
func newBenchmarkUniverse(kind byte, n int) (*pic3d.Universe, []pic3d.Particle, error) {
	props := pic3d.UniverseProperties{
		Nx: benchmarkGridSize, Ny: benchmarkGridSize, Nz: benchmarkGridSize,
		Dx: benchmarkCellWidth, Dy: benchmarkCellWidth, Dz: benchmarkCellWidth,
		Dt:           benchmarkDt,
		UseCase:      pic3d.Test,
		SpeedOfLight: 1,
	}

	u, err := pic3d.NewUniverse(props, solver.Uniform{})
	if err != nil {
		return nil, nil, err
	}

	var source distribution.Source
	switch kind {
	case 'U':
		source = distribution.Uniform(distribution.DefaultSpecies)
	case 'C':
		source = distribution.Cluster(distribution.DefaultSpecies)
	case 'E':
		source = distribution.Explosion(distribution.DefaultSpecies)
	case 'B':
		source = distribution.Beam(distribution.DefaultSpecies, benchmarkCycles)
	default:
		return nil, nil, fmt.Errorf("pic3d: unknown benchmark distribution %q; want one of U,C,E,B", string(kind))
	}

	rng := rand.New(rand.NewSource(seed))
	particles := source(props, n, rng)
	return u, particles, nil
}
