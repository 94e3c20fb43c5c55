package solver

import "github.com/ctessum/pic3d"

// Uniform is the Strategy for the Test and ParticleWave use cases: no
// central object, so Bext stays zero, and B starts at (and never departs
// from) the run's prescribed initial field. It is also the default
// strategy for an unrecognised Case configuration value.
type Uniform struct {
	B0 pic3d.Vec3
}

// InitFields sets every node's B to the prescribed initial field; Bext
// stays at its zero value since there is no central object.
func (u Uniform) InitFields(fields *pic3d.FieldGrid) {
	props := fields.Props
	for p := 0; p <= props.Nx; p++ {
		for q := 0; q <= props.Ny; q++ {
			for r := 0; r <= props.Nz; r++ {
				fields.At(p, q, r).B = u.B0
			}
		}
	}
	fields.CopyFaceGhosts()
}

// Solve is a no-op: with no field dynamics specified for this use case,
// E and B hold at their initial values every cycle.
func (u Uniform) Solve(*pic3d.FieldGrid, *pic3d.CenterGrid, *pic3d.DensityGrid) {}
