package pic3d

import "github.com/ctessum/pic3d/vec3"

// DensityNode holds the node-centered current density J and charge
// density Rho aggregated from particle contributions during the
// projection phase. It carries no ghost layer of its own: the forward
// solver reaches it through a one-cell index shift relative to the
// (ghosted) node field array.
type DensityNode struct {
	J   vec3.Vec3
	Rho float64
}

// DensityGrid is the node-centered density grid, indexed directly by
// physical node index p in [0,Nx] (Nx+1 values per axis, no ghost).
type DensityGrid struct {
	Props UniverseProperties
	grid  *Grid3D[DensityNode]
}

// NewDensityGrid allocates a zeroed density grid for the given universe.
func NewDensityGrid(props UniverseProperties) *DensityGrid {
	return &DensityGrid{
		Props: props,
		grid:  NewGrid3D[DensityNode](props.Nx+1, props.Ny+1, props.Nz+1),
	}
}

// At returns the density node at physical node index (p,q,r).
func (d *DensityGrid) At(p, q, r int) *DensityNode {
	return d.grid.At(p, q, r)
}

// InBounds reports whether (p,q,r) addresses a node in this grid.
func (d *DensityGrid) InBounds(p, q, r int) bool {
	return d.grid.InBounds(p, q, r)
}

// Reset clears all accumulated density, implicitly discarding the
// previous cycle's contributions before re-aggregation.
func (d *DensityGrid) Reset() {
	d.grid.Fill(DensityNode{})
}

// NormalizeVolume divides every accumulated J and Rho by the cell
// volume, turning a raw charge*velocity (resp. charge) sum into a
// density. It runs once, after all cells have finished projecting.
func (d *DensityGrid) NormalizeVolume(volume float64) {
	inv := 1 / volume
	for k := 0; k < d.grid.Nz; k++ {
		for j := 0; j < d.grid.Ny; j++ {
			for i := 0; i < d.grid.Nx; i++ {
				n := d.grid.At(i, j, k)
				n.J = vec3.Scale(n.J, inv)
				n.Rho *= inv
			}
		}
	}
}
