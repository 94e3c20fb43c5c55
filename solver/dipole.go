package solver

import (
	"math"

	"github.com/ctessum/pic3d/vec3"
)

// dipoleField evaluates the planetary-dipole magnetic field at r, a
// position relative to the object center, with surface field strength
// b0 and planet radius r0. At and inside the planet (|r|<=r0) the field
// is zero, the "no field inside the conductor" convention.
func dipoleField(r vec3.Vec3, b0, r0 float64) vec3.Vec3 {
	d2 := vec3.Norm2(r)
	if d2 == 0 {
		return vec3.Vec3{}
	}
	d := math.Sqrt(d2)
	if d <= r0 {
		return vec3.Vec3{}
	}
	k := -b0 * r0 * r0 * r0 / (d2 * d2 * d)
	return vec3.Vec3{
		X: k * 3 * r.X * r.Z,
		Y: k * 3 * r.Y * r.Z,
		Z: k * (2*r.Z*r.Z - r.X*r.X - r.Y*r.Y),
	}
}
