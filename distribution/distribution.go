// Package distribution generates the initial Particle populations the
// benchmark CLI modes use: one of four named distributions (uniform,
// cluster, explosion, beam) selected by the benchmark designation. It
// draws from gonum.org/v1/gonum/stat/distuv rather than hand-rolling
// sampling.
package distribution

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ctessum/pic3d"
)

// Species is the charge and mass every generated particle in a source
// carries; the benchmark harness uses a single species throughout.
type Species struct {
	Charge, Mass float64
}

// DefaultSpecies is an electron-like species (q=-1, m=1) in normalized
// units, the default charge/mass pairing for benchmark runs.
var DefaultSpecies = Species{Charge: -1, Mass: 1}

// Source produces n particles for a given universe and random source.
type Source func(props pic3d.UniverseProperties, n int, rng *rand.Rand) []pic3d.Particle

// Uniform scatters particles uniformly over the universe's full extent
// with velocity components drawn uniformly from [-0.2, 0.2]; this is
// the `:U:N` benchmark distribution.
func Uniform(sp Species) Source {
	return func(props pic3d.UniverseProperties, n int, rng *rand.Rand) []pic3d.Particle {
		ext := props.Extent()
		posX := distuv.Uniform{Min: 0, Max: ext.X, Src: rng}
		posY := distuv.Uniform{Min: 0, Max: ext.Y, Src: rng}
		posZ := distuv.Uniform{Min: 0, Max: ext.Z, Src: rng}
		vel := distuv.Uniform{Min: -0.2, Max: 0.2, Src: rng}

		out := make([]pic3d.Particle, n)
		for i := range out {
			out[i] = pic3d.Particle{
				Position: pic3d.Vec3{X: posX.Rand(), Y: posY.Rand(), Z: posZ.Rand()},
				Velocity: pic3d.Vec3{X: vel.Rand(), Y: vel.Rand(), Z: vel.Rand()},
				Charge:   sp.Charge,
				Mass:     sp.Mass,
			}
		}
		return out
	}
}

// Cluster draws positions from a normal distribution centered on the
// universe with standard deviation extent/5, and velocities uniformly
// from [-0.2, 0.2]; this is the `:C:N` benchmark distribution.
func Cluster(sp Species) Source {
	return func(props pic3d.UniverseProperties, n int, rng *rand.Rand) []pic3d.Particle {
		ext := props.Extent()
		posX := distuv.Normal{Mu: ext.X / 2, Sigma: ext.X / 5, Src: rng}
		posY := distuv.Normal{Mu: ext.Y / 2, Sigma: ext.Y / 5, Src: rng}
		posZ := distuv.Normal{Mu: ext.Z / 2, Sigma: ext.Z / 5, Src: rng}
		vel := distuv.Uniform{Min: -0.2, Max: 0.2, Src: rng}

		out := make([]pic3d.Particle, n)
		for i := range out {
			out[i] = pic3d.Particle{
				Position: wrapPosition(pic3d.Vec3{X: posX.Rand(), Y: posY.Rand(), Z: posZ.Rand()}, props),
				Velocity: pic3d.Vec3{X: vel.Rand(), Y: vel.Rand(), Z: vel.Rand()},
				Charge:   sp.Charge,
				Mass:     sp.Mass,
			}
		}
		return out
	}
}

// Explosion places particles within a sphere of radius extent.X/10
// centered on the universe: each at a distance drawn uniformly from
// [0, radius] along a direction normalized from a uniform sample of the
// cube [-1,1]³, so the density is not uniform in volume and is highest
// near the center. Velocity components are drawn from a zero-mean normal
// distribution with standard deviation 1.5. This is the `:E:N`
// benchmark distribution.
func Explosion(sp Species) Source {
	return func(props pic3d.UniverseProperties, n int, rng *rand.Rand) []pic3d.Particle {
		ext := props.Extent()
		center := pic3d.Vec3{X: ext.X / 2, Y: ext.Y / 2, Z: ext.Z / 2}
		radius := ext.X / 10
		dirComp := distuv.Uniform{Min: -1, Max: 1, Src: rng}
		radial := distuv.Uniform{Min: 0, Max: radius, Src: rng}
		vel := distuv.Normal{Mu: 0, Sigma: 1.5, Src: rng}

		out := make([]pic3d.Particle, n)
		for i := range out {
			d := pic3d.Vec3{X: dirComp.Rand(), Y: dirComp.Rand(), Z: dirComp.Rand()}
			d = vec3Normalize(d)
			r := radial.Rand()
			pos := pic3d.Vec3{X: center.X + d.X*r, Y: center.Y + d.Y*r, Z: center.Z + d.Z*r}
			out[i] = pic3d.Particle{
				Position: wrapPosition(pos, props),
				Velocity: pic3d.Vec3{X: vel.Rand(), Y: vel.Rand(), Z: vel.Rand()},
				Charge:   sp.Charge,
				Mass:     sp.Mass,
			}
		}
		return out
	}
}

// Beam places particles in a narrow cluster near one corner of the
// universe (mean extent/100, stddev extent/500) and gives them a strong
// shared drift velocity sized to cross the universe over numCycles
// steps; this is the `:B:N` benchmark distribution.
func Beam(sp Species, numCycles int) Source {
	return func(props pic3d.UniverseProperties, n int, rng *rand.Rand) []pic3d.Particle {
		ext := props.Extent()
		posX := distuv.Normal{Mu: ext.X / 100, Sigma: ext.X / 500, Src: rng}
		posY := distuv.Normal{Mu: ext.Y / 100, Sigma: ext.Y / 500, Src: rng}
		posZ := distuv.Normal{Mu: ext.Z / 100, Sigma: ext.Z / 500, Src: rng}

		drift := func(l float64) float64 {
			if numCycles <= 0 || props.Dt <= 0 {
				return 0
			}
			return l / float64(numCycles) * 0.95 / props.Dt
		}
		velX := distuv.Normal{Mu: drift(ext.X), Sigma: drift(ext.X) / 5, Src: rng}
		velY := distuv.Normal{Mu: drift(ext.Y), Sigma: drift(ext.Y) / 5, Src: rng}
		velZ := distuv.Normal{Mu: drift(ext.Z), Sigma: drift(ext.Z) / 5, Src: rng}

		out := make([]pic3d.Particle, n)
		for i := range out {
			out[i] = pic3d.Particle{
				Position: wrapPosition(pic3d.Vec3{X: posX.Rand(), Y: posY.Rand(), Z: posZ.Rand()}, props),
				Velocity: pic3d.Vec3{X: velX.Rand(), Y: velY.Rand(), Z: velZ.Rand()},
				Charge:   sp.Charge,
				Mass:     sp.Mass,
			}
		}
		return out
	}
}

// wrapPosition folds a sampled position back into [0,extent) per axis,
// since normal and radial sampling can land a particle outside the
// universe before its first migration phase ever runs.
func wrapPosition(pos pic3d.Vec3, props pic3d.UniverseProperties) pic3d.Vec3 {
	ext := props.Extent()
	return pic3d.Vec3{
		X: wrapAxis(pos.X, ext.X),
		Y: wrapAxis(pos.Y, ext.Y),
		Z: wrapAxis(pos.Z, ext.Z),
	}
}

func wrapAxis(x, l float64) float64 {
	if l <= 0 {
		return x
	}
	for x < 0 {
		x += l
	}
	for x >= l {
		x -= l
	}
	return x
}

func vec3Normalize(v pic3d.Vec3) pic3d.Vec3 {
	n := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if n == 0 {
		return pic3d.Vec3{X: 1}
	}
	return pic3d.Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}
