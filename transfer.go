package pic3d

// TransferBuffers is the 27-way directional outbox lattice: for each cell
// and each of the 27 relative directions (dx,dy,dz) ∈ {-1,0,+1}³, a list
// of particles that crossed into a neighbouring cell this cycle. Buffers
// are only ever non-empty between the export and import phases of a
// single cycle.
type TransferBuffers struct {
	props UniverseProperties
	boxes [][3][3][3][]Particle
}

// NewTransferBuffers allocates an empty outbox lattice for a grid with
// the given number of cells.
func NewTransferBuffers(nCells int, props UniverseProperties) *TransferBuffers {
	return &TransferBuffers{props: props, boxes: make([][3][3][3][]Particle, nCells)}
}

// enqueue appends p to the outbox of cell n in direction (dx,dy,dz),
// each in {-1,0,1}. Only called by the export phase, and only ever by
// the goroutine that owns cell n, so no synchronisation is needed: each
// source cell writes only to its own 27 buffers.
func (t *TransferBuffers) enqueue(n, dx, dy, dz int, p Particle) {
	t.boxes[n][dx+1][dy+1][dz+1] = append(t.boxes[n][dx+1][dy+1][dz+1], p)
}

// drain removes and returns all particles queued in the outbox of cell
// n in direction (dx,dy,dz), leaving that outbox empty.
func (t *TransferBuffers) drain(n, dx, dy, dz int) []Particle {
	box := t.boxes[n][dx+1][dy+1][dz+1]
	t.boxes[n][dx+1][dy+1][dz+1] = nil
	return box
}

// Empty reports whether every outbox is empty; used by tests to check
// that outside the export/import window all buffers stay empty.
func (t *TransferBuffers) Empty() bool {
	for _, cell := range t.boxes {
		for _, plane := range cell {
			for _, row := range plane {
				for _, box := range row {
					if len(box) != 0 {
						return false
					}
				}
			}
		}
	}
	return true
}
