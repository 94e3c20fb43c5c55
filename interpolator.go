package pic3d

import (
	"github.com/ctessum/pic3d/interp"
	"github.com/ctessum/pic3d/vec3"
)

// fractionalOffset returns the particle's position relative to the
// low-corner node of cell (i,j,k), normalised to [0,1] per axis. The
// interpolator calls it; the projector computes the same (u,v,w) inline.
// The two
// formulas are algebraically identical whether expressed relative to
// the cell's origin node or its center.
func fractionalOffset(pos vec3.Vec3, i, j, k int, props UniverseProperties) (u, v, w float64) {
	origin := props.CellOrigin(i, j, k)
	u = (pos.X - origin.X) / props.Dx
	v = (pos.Y - origin.Y) / props.Dy
	w = (pos.Z - origin.Z) / props.Dz
	return
}

// InterpolateFields returns the electric field and the total magnetic
// field (self-consistent B plus the static external field Bext) at the
// given particle's position, trilinearly interpolated from the eight
// nodes surrounding the owning cell.
func InterpolateFields(fields *FieldGrid, pos vec3.Vec3, i, j, k int, props UniverseProperties) (e, b vec3.Vec3) {
	u, v, w := fractionalOffset(pos, i, j, k, props)
	var eOctet, bOctet interp.Corners8Vec
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				n := fields.At(i+di, j+dj, k+dk)
				eOctet[di][dj][dk] = n.E
				bOctet[di][dj][dk] = vec3.Add(n.B, n.Bext)
			}
		}
	}
	e = interp.Vec3(eOctet, u, v, w)
	b = interp.Vec3(bOctet, u, v, w)
	return
}
