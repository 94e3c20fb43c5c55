// Package partition models MPI-rank-to-subgrid assignment as an
// abstract local-region provider: an injected configuration record
// instead of hidden global state.
package partition

import "github.com/ctessum/pic3d"

// Region describes one rank's portion of the global cell grid: the
// half-open index ranges it owns along each axis, and the ranks holding
// the neighboring regions it must ghost-exchange with. The core package
// itself never references Region; it is the shape an external
// decomposition layer would use to slice a pic3d.Universe's CellGrid and
// drive ghost exchange across rank boundaries.
type Region struct {
	Rank int

	IMin, IMax int // [IMin, IMax) along x
	JMin, JMax int // [JMin, JMax) along y
	KMin, KMax int // [KMin, KMax) along z

	// Neighbors maps each of the 26 non-zero (dx,dy,dz) directions this
	// region borders to the rank owning the adjacent region, mirroring
	// the same direction encoding pic3d's transfer buffers use.
	Neighbors map[[3]int]int
}

// Contains reports whether cell (i,j,k) falls within this region's index
// ranges.
func (r Region) Contains(i, j, k int) bool {
	return i >= r.IMin && i < r.IMax &&
		j >= r.JMin && j < r.JMax &&
		k >= r.KMin && k < r.KMax
}

// Size returns the number of cells this region owns along each axis.
func (r Region) Size() (nx, ny, nz int) {
	return r.IMax - r.IMin, r.JMax - r.JMin, r.KMax - r.KMin
}

// SingleRegion returns the trivial one-rank decomposition covering the
// whole universe, used whenever a run isn't actually distributed across
// multiple processes.
func SingleRegion(props pic3d.UniverseProperties) Region {
	return Region{
		Rank: 0,
		IMin: 0, IMax: props.Nx,
		JMin: 0, JMax: props.Ny,
		KMin: 0, KMax: props.Nz,
		Neighbors: map[[3]int]int{},
	}
}

// SplitAlongX divides the universe into n equal (as close as possible)
// slabs along the x axis, one per rank, each a Region whose only
// neighbors are its x-predecessor and x-successor (wrapping under the
// grid's periodic topology).
func SplitAlongX(props pic3d.UniverseProperties, n int) []Region {
	if n <= 0 {
		n = 1
	}
	regions := make([]Region, n)
	base := props.Nx / n
	rem := props.Nx % n
	start := 0
	for rank := 0; rank < n; rank++ {
		width := base
		if rank < rem {
			width++
		}
		r := Region{
			Rank: rank,
			IMin: start, IMax: start + width,
			JMin: 0, JMax: props.Ny,
			KMin: 0, KMax: props.Nz,
			Neighbors: map[[3]int]int{
				{-1, 0, 0}: (rank - 1 + n) % n,
				{1, 0, 0}:  (rank + 1) % n,
			},
		}
		regions[rank] = r
		start += width
	}
	return regions
}
