package pic3d

import "github.com/ctessum/pic3d/vec3"

// FieldNode holds the electromagnetic state at one grid node: the
// self-consistent electric and magnetic field, and the static externally
// imposed field (e.g. a planetary dipole) that is added to it.
type FieldNode struct {
	E, B, Bext vec3.Vec3
}

// FieldGrid is the node field grid. Physical nodes are indexed
// 0<=p<=Nx (Nx+1 of them per axis); they are stored at array index p+1
// so that a single ghost slab fits on either side, giving the array
// index range [0, Nx+2].
type FieldGrid struct {
	Props UniverseProperties
	grid  *Grid3D[FieldNode]
}

// NewFieldGrid allocates a zeroed node field grid for the given universe.
func NewFieldGrid(props UniverseProperties) *FieldGrid {
	return &FieldGrid{
		Props: props,
		grid:  NewGrid3D[FieldNode](props.Nx+3, props.Ny+3, props.Nz+3),
	}
}

// ghostOffset shifts a physical node index into array space.
const ghostOffset = 1

// At returns the field node at physical node index (p,q,r), each in
// [0,Nx], [0,Ny], [0,Nz].
func (f *FieldGrid) At(p, q, r int) *FieldNode {
	return f.grid.At(p+ghostOffset, q+ghostOffset, r+ghostOffset)
}

// AtArray returns the field node at raw array index (i,j,k), i.e.
// including the ghost offset; used by the solver stencils which walk
// array-space octets directly.
func (f *FieldGrid) AtArray(i, j, k int) *FieldNode {
	return f.grid.At(i, j, k)
}

// NxA, NyA, NzA return the array-space sizes (Nx+3 etc.), i.e. the
// exclusive upper bound for AtArray indices.
func (f *FieldGrid) NxA() int { return f.grid.Nx }
func (f *FieldGrid) NyA() int { return f.grid.Ny }
func (f *FieldGrid) NzA() int { return f.grid.Nz }

// CopyFaceGhosts mirrors the interior slabs into the ghost slabs on all
// six faces.
func (f *FieldGrid) CopyFaceGhosts() { f.grid.CopyFaceGhosts() }

// InitBext computes the static external field at every node once, using
// solver-supplied dipole math, and stores it alongside E and B.
func (f *FieldGrid) InitBext(bext func(pos vec3.Vec3) vec3.Vec3) {
	for p := 0; p <= f.Props.Nx; p++ {
		for q := 0; q <= f.Props.Ny; q++ {
			for r := 0; r <= f.Props.Nz; r++ {
				n := f.At(p, q, r)
				pos := f.Props.CellOrigin(p, q, r)
				n.Bext = bext(pos)
			}
		}
	}
}
