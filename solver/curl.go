// Package solver implements the Strategy contract (pic3d.Strategy) for
// each use case: a static dipole field with no self-consistent evolution,
// and the forward (explicit) solver that integrates Maxwell's equations
// on the staggered node/center grid.
package solver

import "github.com/ctessum/pic3d/vec3"

// octet is a 2x2x2 sample of a vector field, addressed [i][j][k] with
// i,j,k in {0,1}, used by curl to approximate ∂/∂axis by a forward
// difference across that axis averaged over the face perpendicular to
// it.
type octet = [2][2][2]vec3.Vec3

// curl approximates the curl of the vector field sampled at octet,
// given the grid spacing along each axis. The same formula serves both
// curl-B (sampled from an octet of centers surrounding a node) and
// curl-E (sampled from an octet of nodes surrounding a center); only the
// octet's provenance differs.
func curl(o octet, dx, dy, dz float64) vec3.Vec3 {
	var dZdY, dYdZ, dXdZ, dZdX, dYdX, dXdY float64

	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			dZdY += (o[i][1][k].Z - o[i][0][k].Z) / dy
			dXdY += (o[i][1][k].X - o[i][0][k].X) / dy
		}
	}
	dZdY /= 4
	dXdY /= 4

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			dYdZ += (o[i][j][1].Y - o[i][j][0].Y) / dz
			dXdZ += (o[i][j][1].X - o[i][j][0].X) / dz
		}
	}
	dYdZ /= 4
	dXdZ /= 4

	for j := 0; j < 2; j++ {
		for k := 0; k < 2; k++ {
			dZdX += (o[1][j][k].Z - o[0][j][k].Z) / dx
			dYdX += (o[1][j][k].Y - o[0][j][k].Y) / dx
		}
	}
	dZdX /= 4
	dYdX /= 4

	return vec3.Vec3{
		X: dZdY - dYdZ,
		Y: dXdZ - dZdX,
		Z: dYdX - dXdY,
	}
}
