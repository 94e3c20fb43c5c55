package pic3d

import (
	"math"

	"github.com/ctessum/pic3d/vec3"
)

// Advance applies the canonical Boris push to particle p given the
// interpolated electric and magnetic field at its position, returning its
// new velocity and position. It is the sole integrator the main per-cycle
// pipeline uses; Δt may be a full step or one of several equal substeps
// (see AdvanceSubcycled).
func Advance(p Particle, e, b vec3.Vec3, dt float64) Particle {
	k := p.ChargeOverMass() * dt / 2

	t := vec3.Scale(b, k)
	denom := 1 + vec3.Norm2(t)
	var s vec3.Vec3
	if denom != 0 {
		// 1+|t|² cannot be zero for finite B; if it underflows to zero
		// anyway, treat the particle as force-free for this step by
		// leaving s at its zero value.
		s = vec3.Scale(t, 2/denom)
	}

	vMinus := vec3.Add(p.Velocity, vec3.Scale(e, k))
	vPrime := vec3.Add(vMinus, vec3.Cross(vMinus, t))
	vPlus := vec3.Add(vMinus, vec3.Cross(vPrime, s))
	vNew := vec3.Add(vPlus, vec3.Scale(e, k))

	p.UHalf = vMinus
	p.Velocity = vNew
	p.Position = vec3.Add(p.Position, vec3.Scale(vNew, dt))
	return p
}

// SubcycleCount returns the number of equal substeps an adaptive push
// would split dt into for the given charge-to-mass ratio, field
// magnitude, speed of light and requested step, so that no substep
// exceeds π·c/(4·|q/m|·|B|), an eighth of the gyroperiod
// 2π·c/(|q/m|·|B|). It returns 1 (no sub-cycling) when b or qOverM is
// zero.
func SubcycleCount(qOverM, bMagnitude, speedOfLight, dt float64) int {
	if bMagnitude == 0 || qOverM == 0 {
		return 1
	}
	gyroPeriod := math.Pi * speedOfLight / (4 * math.Abs(qOverM) * bMagnitude)
	if gyroPeriod <= 0 {
		return 1
	}
	n := int(math.Ceil(dt / gyroPeriod))
	if n < 1 {
		n = 1
	}
	return n
}

// AdvanceSubcycled applies the Boris push over n equal substeps of dt/n,
// holding e and b fixed across the substeps. The main per-cycle pipeline
// always calls Advance directly with n=1; this variant is for callers
// that need finer sub-cycling, e.g. around SubcycleCount's recommendation.
func AdvanceSubcycled(p Particle, e, b vec3.Vec3, dt float64, n int) Particle {
	if n < 1 {
		n = 1
	}
	sub := dt / float64(n)
	for i := 0; i < n; i++ {
		p = Advance(p, e, b, sub)
	}
	return p
}
