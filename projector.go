package pic3d

import (
	"github.com/ctessum/pic3d/interp"
	"github.com/ctessum/pic3d/vec3"
)

// cellContribution is the local, race-free accumulation of one cell's
// particles onto its eight surrounding density nodes. Phase 1 computes
// one of these per cell concurrently; a sequential reduction sweep then
// folds them into the shared DensityGrid. Each cell owning its own
// contribution and reducing afterward avoids atomic adds into shared
// density nodes that neighbouring cells also write.
type cellContribution struct {
	rho [2][2][2]float64
	j   [2][2][2]vec3.Vec3
}

// ProjectParticles aggregates every cell's particles onto the density
// grid (current density J and charge density Rho), dividing by cell
// volume once at the end. It is phase 1 of the step driver.
func ProjectParticles(cells *CellGrid, density *DensityGrid) {
	density.Reset()

	contributions := make([]cellContribution, cells.Len())
	forEachCell(cells.Len(), func(n int) {
		c := cells.Cell(n)
		var contrib cellContribution
		origin := cells.Props.CellOrigin(c.I, c.J, c.K)
		for _, p := range c.Particles {
			u := (p.Position.X - origin.X) / cells.Props.Dx
			v := (p.Position.Y - origin.Y) / cells.Props.Dy
			w := (p.Position.Z - origin.Z) / cells.Props.Dz
			interp.DepositScalar(u, v, w, p.Charge, func(i, j, k int, contribution float64) {
				contrib.rho[i][j][k] += contribution
			})
			interp.Deposit(u, v, w, vec3.Scale(p.Velocity, p.Charge), func(i, j, k int, contribution vec3.Vec3) {
				contrib.j[i][j][k] = vec3.Add(contrib.j[i][j][k], contribution)
			})
		}
		contributions[n] = contrib
	})

	for n := 0; n < cells.Len(); n++ {
		c := cells.Cell(n)
		contrib := contributions[n]
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				for k := 0; k < 2; k++ {
					node := density.At(c.I+i, c.J+j, c.K+k)
					node.Rho += contrib.rho[i][j][k]
					node.J = vec3.Add(node.J, contrib.j[i][j][k])
				}
			}
		}
	}

	density.NormalizeVolume(cells.Props.CellVolume())
}
