package pic3d

// Cell is an axis-aligned rectangular region in index space at integer
// coordinates (I,J,K) with 0 <= I < Nx (similarly J,K). It holds an
// unordered collection of the particles currently located inside its
// spatial box. The post-migration invariant (every owned particle lies
// within the cell's half-open box, modulo periodic wrap) is restored at
// the end of every cycle by the import phase.
type Cell struct {
	I, J, K   int
	Particles []Particle
}

// CellIndex identifies a cell by its integer grid coordinates.
type CellIndex struct {
	I, J, K int
}

// Add returns c offset by (di,dj,dk). The result is not wrapped; see
// WrapIndex for periodic wrap-around.
func (c CellIndex) Add(di, dj, dk int) CellIndex {
	return CellIndex{I: c.I + di, J: c.J + dj, K: c.K + dk}
}

// CellGrid is a flat array of Nx*Ny*Nz cells addressed by (i,j,k).
type CellGrid struct {
	Props UniverseProperties
	cells []Cell
}

// NewCellGrid allocates an empty cell grid for the given universe.
func NewCellGrid(props UniverseProperties) *CellGrid {
	g := &CellGrid{Props: props}
	g.cells = make([]Cell, props.Nx*props.Ny*props.Nz)
	for k := 0; k < props.Nz; k++ {
		for j := 0; j < props.Ny; j++ {
			for i := 0; i < props.Nx; i++ {
				g.cells[g.index(i, j, k)] = Cell{I: i, J: j, K: k}
			}
		}
	}
	return g
}

func (g *CellGrid) index(i, j, k int) int {
	return (k*g.Props.Ny+j)*g.Props.Nx + i
}

// At returns the cell at (i,j,k). i,j,k must already be in range
// [0,Nx), [0,Ny), [0,Nz); callers crossing a periodic boundary must wrap
// first (see WrapIndex).
func (g *CellGrid) At(i, j, k int) *Cell {
	return &g.cells[g.index(i, j, k)]
}

// Len returns the number of cells in the grid.
func (g *CellGrid) Len() int {
	return len(g.cells)
}

// Cell returns the n-th cell in iteration order, used by the per-phase
// worker pools to stride over the grid without nested loops.
func (g *CellGrid) Cell(n int) *Cell {
	return &g.cells[n]
}

// ParticleCount returns the total number of particles currently owned by
// the grid, used to check the count-conservation invariant.
func (g *CellGrid) ParticleCount() int {
	n := 0
	for i := range g.cells {
		n += len(g.cells[i].Particles)
	}
	return n
}

// WrapIndex wraps a single-axis cell index into [0,n) under periodic
// boundary conditions.
func WrapIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	if i >= n {
		return i - n
	}
	return i
}
