// Package pic3d implements the per-cycle electromagnetic particle-in-cell
// pipeline: particle-to-grid projection, a static or forward field solve,
// grid-to-particle interpolation with a Boris push, and periodic particle
// migration across cell boundaries.
package pic3d

import (
	"fmt"

	"github.com/ctessum/pic3d/vec3"
)

// UseCase selects the field-solver strategy and initial conditions for a run.
type UseCase int

const (
	// Test is a minimal use case with zero fields unless overridden; it is
	// the default for unrecognised configuration values.
	Test UseCase = iota
	// Dipole models an Earth-like magnetic dipole at ObjectCenter.
	Dipole
	// ParticleWave models a uniform drifting field with no central object.
	ParticleWave
)

func (u UseCase) String() string {
	switch u {
	case Dipole:
		return "Dipole"
	case ParticleWave:
		return "ParticleWave"
	default:
		return "Test"
	}
}

// UniverseProperties holds the immutable parameters of one simulation run.
type UniverseProperties struct {
	Nx, Ny, Nz    int     // cell count per axis
	Dx, Dy, Dz    float64 // cell widths
	Dt            float64 // time step
	UseCase       UseCase
	PlanetRadius  float64 // L_square
	ObjectCenter  Vec3
	B0            Vec3 // prescribed initial magnetic field
	SpeedOfLight  float64
}

// Vec3 is re-exported at package level for convenience; see package vec3
// for the implementation shared with the rest of the module.
type Vec3 = vec3.Vec3

// CellVolume returns Dx*Dy*Dz.
func (u UniverseProperties) CellVolume() float64 {
	return u.Dx * u.Dy * u.Dz
}

// CellOrigin returns the low corner of cell (i,j,k) in index space, i.e.
// the position of node (i,j,k).
func (u UniverseProperties) CellOrigin(i, j, k int) Vec3 {
	return Vec3{X: float64(i) * u.Dx, Y: float64(j) * u.Dy, Z: float64(k) * u.Dz}
}

// CellCenter returns the spatial center of cell (i,j,k).
func (u UniverseProperties) CellCenter(i, j, k int) Vec3 {
	return Vec3{
		X: (float64(i) + 0.5) * u.Dx,
		Y: (float64(j) + 0.5) * u.Dy,
		Z: (float64(k) + 0.5) * u.Dz,
	}
}

// Extent returns the physical size of the universe (Lx, Ly, Lz).
func (u UniverseProperties) Extent() Vec3 {
	return Vec3{X: float64(u.Nx) * u.Dx, Y: float64(u.Ny) * u.Dy, Z: float64(u.Nz) * u.Dz}
}

// Validate returns a *ConfigError if the universe properties are
// structurally invalid (non-positive cell widths/time step, zero grid
// extent along any axis).
func (u UniverseProperties) Validate() error {
	if u.Nx <= 0 || u.Ny <= 0 || u.Nz <= 0 {
		return &ConfigError{Msg: fmt.Sprintf("grid size must be positive, got (%d,%d,%d)", u.Nx, u.Ny, u.Nz)}
	}
	if u.Dx <= 0 || u.Dy <= 0 || u.Dz <= 0 {
		return &ConfigError{Msg: fmt.Sprintf("cell width must be positive, got (%g,%g,%g)", u.Dx, u.Dy, u.Dz)}
	}
	if u.Dt <= 0 {
		return &ConfigError{Msg: fmt.Sprintf("dt must be positive, got %g", u.Dt)}
	}
	return nil
}
