package pic3d

// classifyDirection returns the per-axis direction code for an offset r
// from the cell center, given half-width halfDelta: -1 if r<-halfDelta,
// +1 if r>halfDelta, 0 otherwise. A particle exactly on the boundary
// (|r|==halfDelta) is owned by the lower-index cell, i.e. direction 0.
func classifyDirection(r, halfDelta float64) int {
	if r < -halfDelta {
		return -1
	}
	if r > halfDelta {
		return 1
	}
	return 0
}

// Export classifies every particle in every cell, wraps positions that
// cross a periodic face, and enqueues migrators into the transfer
// buffers, leaving non-migrating particles in place. It is safe to run
// concurrently across cells because each cell only ever writes its own 27
// outboxes.
func Export(cells *CellGrid, buffers *TransferBuffers) {
	props := cells.Props
	forEachCell(cells.Len(), func(n int) {
		c := cells.Cell(n)
		center := props.CellCenter(c.I, c.J, c.K)
		kept := c.Particles[:0]
		for _, p := range c.Particles {
			r := Vec3{X: p.Position.X - center.X, Y: p.Position.Y - center.Y, Z: p.Position.Z - center.Z}
			dx := classifyDirection(r.X, props.Dx/2)
			dy := classifyDirection(r.Y, props.Dy/2)
			dz := classifyDirection(r.Z, props.Dz/2)

			if dx == 0 && dy == 0 && dz == 0 {
				kept = append(kept, p)
				continue
			}

			p.Position.X, _ = wrapAxis(c.I, dx, props.Nx, props.Dx, p.Position.X)
			p.Position.Y, _ = wrapAxis(c.J, dy, props.Ny, props.Dy, p.Position.Y)
			p.Position.Z, _ = wrapAxis(c.K, dz, props.Nz, props.Dz, p.Position.Z)

			buffers.enqueue(n, dx, dy, dz, p)
		}
		c.Particles = kept
	})
}

// wrapAxis computes the destination cell index along one axis for a
// particle moving in direction d from cell index i, applying the
// periodic position adjustment when it crosses the domain edge. It
// returns the (possibly adjusted) position component and the destination
// cell index.
func wrapAxis(i, d, n int, delta, pos float64) (newPos float64, destIndex int) {
	dest := i + d
	if dest < 0 {
		dest = n - 1
		pos += float64(n) * delta
	} else if dest >= n {
		dest = 0
		pos -= float64(n) * delta
	}
	return pos, dest
}

// Import drains, for every cell, the outboxes of its 26 neighbours that
// would land on it (the cell's own (0,0,0) outbox is skipped, since
// Export never fills it), appending the particles
// they contain to the cell's local list. After Import every outbox is
// empty. Safe to run concurrently across destination cells: each (source
// cell, direction) outbox is read by exactly one destination.
func Import(cells *CellGrid, buffers *TransferBuffers) {
	props := cells.Props
	forEachCell(cells.Len(), func(n int) {
		dst := cells.Cell(n)
		for dx := -1; dx <= 1; dx++ {
			si := WrapIndex(dst.I-dx, props.Nx)
			for dy := -1; dy <= 1; dy++ {
				sj := WrapIndex(dst.J-dy, props.Ny)
				for dz := -1; dz <= 1; dz++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					sk := WrapIndex(dst.K-dz, props.Nz)
					srcIdx := cells.index(si, sj, sk)
					incoming := buffers.drain(srcIdx, dx, dy, dz)
					dst.Particles = append(dst.Particles, incoming...)
				}
			}
		}
	})
}
