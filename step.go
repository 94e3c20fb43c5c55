package pic3d

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// log is the package-level logger: a single *logrus.Logger configured
// once at startup rather than threaded through every call.
var log = logrus.StandardLogger()

// Universe is one simulation run: its grids, its field-solver strategy,
// and the cycle count completed so far.
type Universe struct {
	Props    UniverseProperties
	Cells    *CellGrid
	Fields   *FieldGrid
	Centers  *CenterGrid
	Density  *DensityGrid
	Buffers  *TransferBuffers
	Strategy Strategy

	Cycle int
}

// NewUniverse validates props, allocates every grid, and seeds fields
// from strategy. Center-B is seeded from the initial node-B via the N→C
// interpolator so that a forward solver's first cycle starts from a
// self-consistent pair of grids rather than an arbitrary zero center
// field.
func NewUniverse(props UniverseProperties, strategy Strategy) (*Universe, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}

	u := &Universe{
		Props:    props,
		Cells:    NewCellGrid(props),
		Fields:   NewFieldGrid(props),
		Centers:  NewCenterGrid(props),
		Density:  NewDensityGrid(props),
		Strategy: strategy,
	}
	u.Buffers = NewTransferBuffers(u.Cells.Len(), props)

	strategy.InitFields(u.Fields)
	u.Fields.CopyFaceGhosts()
	NodeToCenter(u.Fields, u.Centers)
	u.Centers.CopyFaceGhosts()

	return u, nil
}

// Seed assigns each of the given particles to the cell whose box
// contains its position. It is the sole entry point an external
// distribution generator's output goes through to populate a freshly
// constructed Universe.
func (u *Universe) Seed(particles []Particle) {
	props := u.Props
	for _, p := range particles {
		i := WrapIndex(int(p.Position.X/props.Dx), props.Nx)
		j := WrapIndex(int(p.Position.Y/props.Dy), props.Ny)
		k := WrapIndex(int(p.Position.Z/props.Dz), props.Nz)
		c := u.Cells.At(i, j, k)
		c.Particles = append(c.Particles, p)
	}
}

// Step advances the universe by exactly one cycle, running five phases in
// strict order with a barrier between each: project, ghost update, solve,
// interpolate+Boris+export, import. It returns an *InvariantViolation if
// the total particle count (after accounting for any dropped non-finite
// particles) changes across the cycle, which never happens in a correct
// implementation and always indicates a bug.
func (u *Universe) Step() error {
	before := u.Cells.ParticleCount()

	// Phase 1: project.
	ProjectParticles(u.Cells, u.Density)

	// Phase 2: ghost update.
	u.Fields.CopyFaceGhosts()
	u.Centers.CopyFaceGhosts()

	// Phase 3: solve.
	u.Strategy.Solve(u.Fields, u.Centers, u.Density)

	// Phase 4: interpolate + Boris + export. A particle whose push leaves
	// it with a non-finite position or velocity is dropped and logged
	// rather than aborting the run; this never happens in a correct field
	// solve, so it costs no extra allocation on the common case.
	var dropCount int64
	forEachCell(u.Cells.Len(), func(n int) {
		c := u.Cells.Cell(n)
		var dropped []int
		for i, p := range c.Particles {
			e, b := InterpolateFields(u.Fields, p.Position, c.I, c.J, c.K, u.Props)
			advanced := Advance(p, e, b, u.Props.Dt)
			if !advanced.Finite() {
				log.WithError(newDomainf("particle in cell (%d,%d,%d) became non-finite: %+v", c.I, c.J, c.K, advanced)).Warn("dropping particle")
				dropped = append(dropped, i)
				continue
			}
			c.Particles[i] = advanced
		}
		for j := len(dropped) - 1; j >= 0; j-- {
			i := dropped[j]
			c.Particles = append(c.Particles[:i], c.Particles[i+1:]...)
		}
		atomic.AddInt64(&dropCount, int64(len(dropped)))
	})
	Export(u.Cells, u.Buffers)

	// Phase 5: import.
	Import(u.Cells, u.Buffers)

	after := u.Cells.ParticleCount()
	if want := before - int(dropCount); after != want {
		return newInvariantf("particle count changed from %d to %d during cycle %d (expected %d after %d drop(s))", before, after, u.Cycle, want, dropCount)
	}
	u.Cycle++
	return nil
}

// Run advances the universe through ncycles, calling onCycle (if
// non-nil) after every completed cycle for diagnostics reporting. It
// stops at the first error; the driver never attempts to silently
// recover from an InvariantViolation or a DomainError.
func (u *Universe) Run(ncycles int, onCycle func(u *Universe)) error {
	for i := 0; i < ncycles; i++ {
		if err := u.Step(); err != nil {
			log.WithError(err).WithField("cycle", u.Cycle).Error("cycle failed")
			return err
		}
		if onCycle != nil {
			onCycle(u)
		}
	}
	return nil
}
