package cli

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ctessum/pic3d"
	"github.com/ctessum/pic3d/config"
)

// seedSpecies populates every cell of u with npcelx*npcely*npcelz
// particles per configured species, positioned uniformly within the
// cell's box and given a Maxwellian velocity: a per-axis drift (u0, v0,
// w0) plus a normally-distributed thermal component scaled by (uth,
// vth, wth). Each particle's charge is rhoINIT·cellVolume divided by
// the particles per cell, so that one cell's particles, summed,
// reproduce the configured initial charge density; its mass follows
// from the species' charge-to-mass ratio (1 when qom is zero).
func seedSpecies(u *pic3d.Universe, species []config.Species, seedVal int64) {
	rng := rand.New(rand.NewSource(seedVal))
	props := u.Props
	volume := props.CellVolume()

	for _, sp := range species {
		perCell := sp.NPCelX * sp.NPCelY * sp.NPCelZ
		if perCell <= 0 {
			continue
		}
		charge := sp.RhoInit * volume / float64(perCell)
		mass := 1.0
		if sp.QOM != 0 {
			mass = charge / sp.QOM
		}

		thermalU := distuv.Normal{Mu: 0, Sigma: sp.Uth, Src: rng}
		thermalV := distuv.Normal{Mu: 0, Sigma: sp.Vth, Src: rng}
		thermalW := distuv.Normal{Mu: 0, Sigma: sp.Wth, Src: rng}

		for k := 0; k < props.Nz; k++ {
			for j := 0; j < props.Ny; j++ {
				for i := 0; i < props.Nx; i++ {
					origin := props.CellOrigin(i, j, k)
					cell := u.Cells.At(i, j, k)
					for n := 0; n < perCell; n++ {
						pos := pic3d.Vec3{
							X: origin.X + rng.Float64()*props.Dx,
							Y: origin.Y + rng.Float64()*props.Dy,
							Z: origin.Z + rng.Float64()*props.Dz,
						}
						vel := pic3d.Vec3{
							X: sp.U0 + thermalU.Rand(),
							Y: sp.V0 + thermalV.Rand(),
							Z: sp.W0 + thermalW.Rand(),
						}
						cell.Particles = append(cell.Particles, pic3d.Particle{
							Position: pos,
							Velocity: vel,
							Charge:   charge,
							Mass:     mass,
						})
					}
				}
			}
		}
	}
}
