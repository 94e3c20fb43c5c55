package solver

import "github.com/ctessum/pic3d"

// Forward is the Strategy for the self-consistent Dipole use case: it
// integrates Maxwell's equations explicitly on the staggered node/center
// grid. Bext is seeded once from the dipole formula exactly as Static
// does; E and center-B then evolve from the projected current density
// each cycle.
type Forward struct {
	B0           float64
	PlanetRadius float64
	ObjectCenter pic3d.Vec3
}

// InitFields seeds Bext from the dipole formula; E and center-B start at
// their zero value and evolve from the first Solve call onward.
func (f Forward) InitFields(fields *pic3d.FieldGrid) {
	fields.InitBext(func(pos pic3d.Vec3) pic3d.Vec3 {
		r := pic3d.Vec3{X: pos.X - f.ObjectCenter.X, Y: pos.Y - f.ObjectCenter.Y, Z: pos.Z - f.ObjectCenter.Z}
		return dipoleField(r, f.B0, f.PlanetRadius)
	})
	fields.CopyFaceGhosts()
}

// Solve advances E and center/node B by one cycle in five steps: curl-B
// updates E from the projected current, curl-E updates center-B, and
// node-B is recovered as the average of its eight surrounding centers.
// Ghost layers are refreshed after each grid write so the next stencil
// sees consistent neighbor values.
func (f Forward) Solve(fields *pic3d.FieldGrid, centers *pic3d.CenterGrid, density *pic3d.DensityGrid) {
	props := fields.Props
	dt := props.Dt

	// Steps 1-2: curl B from the eight centers surrounding node p updates
	// E[p]. The field array index of node p is p+1 (ghost offset); the
	// surrounding centers sit at array indices p and p+1, i.e. the same
	// array index shifted by -1 and 0. The current density J[p-(1,1,1)]
	// in that array-index notation is density's own un-ghosted physical
	// index p, since density carries no ghost layer of its own.
	for p := 0; p <= props.Nx; p++ {
		for q := 0; q <= props.Ny; q++ {
			for r := 0; r <= props.Nz; r++ {
				ia, ja, ka := p+1, q+1, r+1
				var co octet
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						for k := 0; k < 2; k++ {
							co[i][j][k] = *centers.AtArray(ia-1+i, ja-1+j, ka-1+k)
						}
					}
				}
				curlB := curl(co, props.Dx, props.Dy, props.Dz)
				j := density.At(p, q, r).J

				n := fields.At(p, q, r)
				n.E.X += (curlB.X + j.X) * dt
				n.E.Y += (curlB.Y + j.Y) * dt
				n.E.Z += (curlB.Z + j.Z) * dt
			}
		}
	}
	fields.CopyFaceGhosts()

	// Steps 3-4: curl E from the eight nodes surrounding center p updates
	// Bc[p]. Center p's array index is p+1; its surrounding nodes sit at
	// array indices p+1 and p+2, the same array index shifted by 0 and 1.
	for p := 0; p < props.Nx; p++ {
		for q := 0; q < props.Ny; q++ {
			for r := 0; r < props.Nz; r++ {
				ic, jc, kc := p+1, q+1, r+1
				var no octet
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						for k := 0; k < 2; k++ {
							no[i][j][k] = fields.AtArray(ic+i, jc+j, kc+k).E
						}
					}
				}
				curlE := curl(no, props.Dx, props.Dy, props.Dz)
				bc := centers.At(p, q, r)
				bc.X -= curlE.X * dt
				bc.Y -= curlE.Y * dt
				bc.Z -= curlE.Z * dt
			}
		}
	}
	centers.CopyFaceGhosts()

	// Step 5: node-B is the unweighted average of the eight surrounding
	// centers, via the same C→N interpolator the rest of the package uses.
	pic3d.CenterToNode(centers, fields)
	fields.CopyFaceGhosts()
}
