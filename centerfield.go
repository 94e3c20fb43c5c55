package pic3d

import "github.com/ctessum/pic3d/vec3"

// CenterGrid holds B interpolated to cell centers, staggered with
// respect to the node grid: centers sit at the centroids of node
// octets. Physical centers are indexed 0<=c<Nx and stored at array
// index c+1, giving the array index range [0, Nx+1].
type CenterGrid struct {
	Props UniverseProperties
	grid  *Grid3D[vec3.Vec3]
}

// NewCenterGrid allocates a zeroed center field grid for the given
// universe.
func NewCenterGrid(props UniverseProperties) *CenterGrid {
	return &CenterGrid{
		Props: props,
		grid:  NewGrid3D[vec3.Vec3](props.Nx+2, props.Ny+2, props.Nz+2),
	}
}

// At returns a pointer to Bc at physical center index (p,q,r), each in
// [0,Nx), [0,Ny), [0,Nz).
func (c *CenterGrid) At(p, q, r int) *vec3.Vec3 {
	return c.grid.At(p+ghostOffset, q+ghostOffset, r+ghostOffset)
}

// AtArray returns Bc at raw array index (i,j,k).
func (c *CenterGrid) AtArray(i, j, k int) *vec3.Vec3 {
	return c.grid.At(i, j, k)
}

func (c *CenterGrid) NxA() int { return c.grid.Nx }
func (c *CenterGrid) NyA() int { return c.grid.Ny }
func (c *CenterGrid) NzA() int { return c.grid.Nz }

// CopyFaceGhosts mirrors the interior slabs into the ghost slabs on all
// six faces.
func (c *CenterGrid) CopyFaceGhosts() { c.grid.CopyFaceGhosts() }
