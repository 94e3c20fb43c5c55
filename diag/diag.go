// Package diag writes per-cycle diagnostic records: a tab-separated
// energy/momentum summary, and optional per-frame CSV snapshots of cell
// density. Output goes through an injected github.com/spf13/afero
// filesystem rather than the os package directly, so tests can swap in
// an in-memory filesystem; retryable write failures go through
// github.com/cenkalti/backoff.
package diag

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ctessum/pic3d"
)

// Record is one cycle's summary line: the sum of per-particle momentum
// magnitudes, electric and magnetic field energy, and total kinetic
// energy.
type Record struct {
	Cycle       int
	TotalMoment float64
	EEnergy     float64
	BEnergy     float64
	TotalKE     float64
}

// Summarize computes a Record for the universe's current state. It is
// called once per recorded cycle; the driver never computes these
// quantities itself.
func Summarize(cycle int, u *pic3d.Universe) Record {
	var moment, ke float64
	for n := 0; n < u.Cells.Len(); n++ {
		c := u.Cells.Cell(n)
		for _, p := range c.Particles {
			v2 := p.Velocity.X*p.Velocity.X + p.Velocity.Y*p.Velocity.Y + p.Velocity.Z*p.Velocity.Z
			ke += 0.5 * p.Mass * v2
			moment += p.Mass * math.Sqrt(v2)
		}
	}

	var eEnergy, bEnergy float64
	for p := 0; p <= u.Props.Nx; p++ {
		for q := 0; q <= u.Props.Ny; q++ {
			for r := 0; r <= u.Props.Nz; r++ {
				n := u.Fields.At(p, q, r)
				eEnergy += 0.5 * (n.E.X*n.E.X + n.E.Y*n.E.Y + n.E.Z*n.E.Z)
				bTotal := pic3d.Vec3{X: n.B.X + n.Bext.X, Y: n.B.Y + n.Bext.Y, Z: n.B.Z + n.Bext.Z}
				bEnergy += 0.5 * (bTotal.X*bTotal.X + bTotal.Y*bTotal.Y + bTotal.Z*bTotal.Z)
			}
		}
	}

	return Record{Cycle: cycle, TotalMoment: moment, EEnergy: eEnergy, BEnergy: bEnergy, TotalKE: ke}
}

// Writer writes Records to a tab-separated file, one line per Write
// call, retrying the initial file creation (the only step prone to
// transient failure, e.g. a not-yet-mounted output volume) with
// exponential backoff.
type Writer struct {
	fs      afero.Fs
	path    string
	file    afero.File
	records int
}

// NewWriter opens path on fs for writing, creating it (and retrying
// transient creation failures) before the header line is written.
func NewWriter(fs afero.Fs, path string) (*Writer, error) {
	var f afero.File
	err := backoff.RetryNotify(
		func() error {
			var createErr error
			f, createErr = fs.Create(path)
			return createErr
		},
		backoff.NewExponentialBackOff(),
		func(err error, d time.Duration) {
			logrus.WithError(err).WithField("path", path).Warnf("retrying diagnostic file creation in %v", d)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("diag: creating %s: %w", path, err)
	}
	if _, err := io.WriteString(f, "Cycle\tTotalMoment\tE_energy\tB_energy\tTotal_KE\n"); err != nil {
		return nil, fmt.Errorf("diag: writing header to %s: %w", path, err)
	}
	return &Writer{fs: fs, path: path, file: f}, nil
}

// Write appends one record's tab-separated line. Write failures are
// reported to the caller but never stop the simulation.
func (w *Writer) Write(r Record) error {
	_, err := fmt.Fprintf(w.file, "%d\t%g\t%g\t%g\t%g\n", r.Cycle, r.TotalMoment, r.EEnergy, r.BEnergy, r.TotalKE)
	w.records++
	return err
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	return w.file.Close()
}

// WriteFrame writes one per-frame CSV snapshot of cell density, with
// header "t,x,y,z,density", one line per cell, to path on fs.
func WriteFrame(fs afero.Fs, path string, t float64, cells *pic3d.CellGrid, density *pic3d.DensityGrid) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("diag: creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, "t,x,y,z,density\n"); err != nil {
		return err
	}
	props := cells.Props
	for n := 0; n < cells.Len(); n++ {
		c := cells.Cell(n)
		center := props.CellCenter(c.I, c.J, c.K)
		rho := density.At(c.I, c.J, c.K).Rho
		if _, err := fmt.Fprintf(f, "%g,%g,%g,%g,%g\n", t, center.X, center.Y, center.Z, rho); err != nil {
			return err
		}
	}
	return nil
}
