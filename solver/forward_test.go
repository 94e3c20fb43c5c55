package solver

import (
	"testing"

	"github.com/ctessum/pic3d"
)

// With no projected current and a uniform (curl-free) dipole Bext, a
// Forward solve leaves E and center/node B at their starting zero value.
func TestForwardSolveZeroCurrentStaysZero(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 3, Ny: 3, Nz: 3, Dx: 1, Dy: 1, Dz: 1, Dt: 0.1, SpeedOfLight: 1}
	fields := pic3d.NewFieldGrid(props)
	centers := pic3d.NewCenterGrid(props)
	density := pic3d.NewDensityGrid(props)

	f := Forward{B0: 0, PlanetRadius: 0, ObjectCenter: pic3d.Vec3{}}
	f.InitFields(fields)
	f.Solve(fields, centers, density)

	for p := 0; p <= props.Nx; p++ {
		for q := 0; q <= props.Ny; q++ {
			for r := 0; r <= props.Nz; r++ {
				n := fields.At(p, q, r)
				if n.E != (pic3d.Vec3{}) {
					t.Errorf("node (%d,%d,%d): E = %+v, want zero", p, q, r, n.E)
				}
				if n.B != (pic3d.Vec3{}) {
					t.Errorf("node (%d,%d,%d): B = %+v, want zero", p, q, r, n.B)
				}
			}
		}
	}
}

// With center-B starting at zero, curl-B vanishes and the E update is
// J·Δt, so a uniform current density along x gives the same E at every
// interior node.
func TestForwardSolveUniformCurrentProducesUniformE(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 3, Ny: 3, Nz: 3, Dx: 1, Dy: 1, Dz: 1, Dt: 0.1, SpeedOfLight: 1}
	fields := pic3d.NewFieldGrid(props)
	centers := pic3d.NewCenterGrid(props)
	density := pic3d.NewDensityGrid(props)

	for p := 0; p < props.Nx; p++ {
		for q := 0; q < props.Ny; q++ {
			for r := 0; r < props.Nz; r++ {
				density.At(p, q, r).J = pic3d.Vec3{X: 0.5}
			}
		}
	}

	f := Forward{B0: 0, PlanetRadius: 0}
	f.InitFields(fields)
	f.Solve(fields, centers, density)

	want := fields.At(1, 1, 1).E
	if want == (pic3d.Vec3{}) {
		t.Fatal("expected nonzero E after a uniform-current solve")
	}
	for p := 1; p < props.Nx; p++ {
		for q := 1; q < props.Ny; q++ {
			for r := 1; r < props.Nz; r++ {
				got := fields.At(p, q, r).E
				if got != want {
					t.Errorf("node (%d,%d,%d): E = %+v, want uniform %+v", p, q, r, got, want)
				}
			}
		}
	}
}
