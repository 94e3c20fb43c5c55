package pic3d

import "testing"

// N→C followed by C→N on a uniform B field is the identity.
func TestNodeCenterRoundTripIdentity(t *testing.T) {
	props := UniverseProperties{Nx: 4, Ny: 3, Nz: 2, Dx: 1, Dy: 1, Dz: 1, Dt: 1}
	fields := NewFieldGrid(props)
	uniform := Vec3{X: 0.3, Y: -0.7, Z: 1.4}

	for p := 0; p <= props.Nx; p++ {
		for q := 0; q <= props.Ny; q++ {
			for r := 0; r <= props.Nz; r++ {
				fields.At(p, q, r).B = uniform
			}
		}
	}
	fields.CopyFaceGhosts()

	centers := NewCenterGrid(props)
	NodeToCenter(fields, centers)
	centers.CopyFaceGhosts()

	roundTripped := NewFieldGrid(props)
	CenterToNode(centers, roundTripped)

	for p := 0; p <= props.Nx; p++ {
		for q := 0; q <= props.Ny; q++ {
			for r := 0; r <= props.Nz; r++ {
				got := roundTripped.At(p, q, r).B
				if absDifferent(got.X, uniform.X, 1e-12) || absDifferent(got.Y, uniform.Y, 1e-12) || absDifferent(got.Z, uniform.Z, 1e-12) {
					t.Errorf("node (%d,%d,%d): round-tripped B = %+v, want %+v", p, q, r, got, uniform)
				}
			}
		}
	}
}
