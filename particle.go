package pic3d

import "github.com/ctessum/pic3d/vec3"

// Particle is a point mass owned exclusively by the Cell whose spatial
// domain contains its Position. It is created during initialisation,
// mutated only by its owning cell's phase-4 activity, and destroyed only
// if it leaves the universe; under the periodic boundary conditions this
// core implements, destruction never occurs in the nominal model.
type Particle struct {
	Position vec3.Vec3
	Velocity vec3.Vec3
	Charge   float64
	Mass     float64

	// UHalf caches a half-step velocity for integrator variants that need
	// it (e.g. an energy-conserving leapfrog). The canonical Boris push
	// stores v⁻ (the velocity after the first half electric kick) here but
	// never reads it back.
	UHalf vec3.Vec3
}

// ChargeOverMass returns q/m.
func (p Particle) ChargeOverMass() float64 {
	return p.Charge / p.Mass
}

// Finite reports whether the particle's position and velocity are both
// finite; a false result marks the particle for the DomainError drop
// path in release builds.
func (p Particle) Finite() bool {
	return p.Position.Finite() && p.Velocity.Finite()
}
