package solver

import (
	"github.com/ctessum/pic3d"
	"github.com/ctessum/pic3d/vec3"
)

// Static is the Strategy for the Dipole use case's non-self-consistent
// variant: E is always zero, and B is recomputed every cycle directly
// from the dipole formula rather than evolved from Maxwell's equations.
// Bext is seeded once at InitFields with the same formula, relative to
// the object center, so that a Static run's B and Bext agree exactly.
type Static struct {
	B0           float64
	PlanetRadius float64
	ObjectCenter vec3.Vec3
}

// InitFields seeds Bext on every node from the dipole formula.
func (s Static) InitFields(fields *pic3d.FieldGrid) {
	fields.InitBext(func(pos vec3.Vec3) vec3.Vec3 {
		r := vec3.Sub(pos, s.ObjectCenter)
		return dipoleField(r, s.B0, s.PlanetRadius)
	})
	s.Solve(fields, nil, nil)
}

// Solve recomputes E=0, B=dipole(position) at every node; it ignores the
// density and center grids entirely since the static field never
// responds to particle motion.
func (s Static) Solve(fields *pic3d.FieldGrid, _ *pic3d.CenterGrid, _ *pic3d.DensityGrid) {
	props := fields.Props
	for p := 0; p <= props.Nx; p++ {
		for q := 0; q <= props.Ny; q++ {
			for r := 0; r <= props.Nz; r++ {
				n := fields.At(p, q, r)
				pos := props.CellOrigin(p, q, r)
				rel := vec3.Sub(pos, s.ObjectCenter)
				n.E = vec3.Vec3{}
				n.B = dipoleField(rel, s.B0, s.PlanetRadius)
			}
		}
	}
	fields.CopyFaceGhosts()
}
