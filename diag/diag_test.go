package diag

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ctessum/pic3d"
	"github.com/ctessum/pic3d/solver"
)

func newTestUniverse(t *testing.T) *pic3d.Universe {
	t.Helper()
	props := pic3d.UniverseProperties{Nx: 2, Ny: 2, Nz: 2, Dx: 1, Dy: 1, Dz: 1, Dt: 0.1, SpeedOfLight: 1}
	u, err := pic3d.NewUniverse(props, solver.Uniform{B0: pic3d.Vec3{X: 0.1}})
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestSummarizeZeroForEmptyUniverseWithZeroField(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 2, Ny: 2, Nz: 2, Dx: 1, Dy: 1, Dz: 1, Dt: 0.1, SpeedOfLight: 1}
	u, err := pic3d.NewUniverse(props, solver.Uniform{})
	if err != nil {
		t.Fatal(err)
	}
	r := Summarize(0, u)
	if r.TotalKE != 0 || r.TotalMoment != 0 || r.EEnergy != 0 || r.BEnergy != 0 {
		t.Errorf("expected all-zero record for an empty, fieldless universe, got %+v", r)
	}
}

func TestSummarizeReflectsParticleKineticEnergy(t *testing.T) {
	u := newTestUniverse(t)
	u.Seed([]pic3d.Particle{
		{Position: pic3d.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Velocity: pic3d.Vec3{X: 2}, Charge: 1, Mass: 2},
	})
	r := Summarize(0, u)
	want := 0.5 * 2 * 4.0
	if r.TotalKE != want {
		t.Errorf("TotalKE = %v, want %v", r.TotalKE, want)
	}
	if r.BEnergy <= 0 {
		t.Errorf("BEnergy = %v, want > 0 for a nonzero uniform B field", r.BEnergy)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	w, err := NewWriter(fs, "/out/energy.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(Record{Cycle: 0, TotalMoment: 1, EEnergy: 2, BEnergy: 3, TotalKE: 4}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := afero.ReadFile(fs, "/out/energy.tsv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 record", len(lines))
	}
	if lines[0] != "Cycle\tTotalMoment\tE_energy\tB_energy\tTotal_KE" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "0\t1\t2\t3\t4" {
		t.Errorf("record line = %q", lines[1])
	}
}

func TestWriteFrameOneLinePerCell(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 2, Ny: 2, Nz: 2, Dx: 1, Dy: 1, Dz: 1, Dt: 0.1, SpeedOfLight: 1}
	cells := pic3d.NewCellGrid(props)
	density := pic3d.NewDensityGrid(props)

	fs := afero.NewMemMapFs()
	if err := WriteFrame(fs, "/out/frame.csv", 0.5, cells, density); err != nil {
		t.Fatal(err)
	}
	data, err := afero.ReadFile(fs, "/out/frame.csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	wantLines := 1 + cells.Len()
	if len(lines) != wantLines {
		t.Errorf("got %d lines, want %d (header + one per cell)", len(lines), wantLines)
	}
	if lines[0] != "t,x,y,z,density" {
		t.Errorf("header = %q", lines[0])
	}
}
