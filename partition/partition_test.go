package partition

import (
	"testing"

	"github.com/ctessum/pic3d"
)

func TestSingleRegionCoversWholeUniverse(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 4, Ny: 5, Nz: 6, Dx: 1, Dy: 1, Dz: 1, Dt: 1}
	r := SingleRegion(props)
	nx, ny, nz := r.Size()
	if nx != 4 || ny != 5 || nz != 6 {
		t.Errorf("Size() = (%d,%d,%d), want (4,5,6)", nx, ny, nz)
	}
	if !r.Contains(0, 0, 0) || !r.Contains(3, 4, 5) {
		t.Error("SingleRegion should contain every corner cell")
	}
	if r.Contains(4, 0, 0) {
		t.Error("SingleRegion should not contain an out-of-range cell")
	}
}

func TestSplitAlongXPartitionsEveryCellExactlyOnce(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 10, Ny: 3, Nz: 3, Dx: 1, Dy: 1, Dz: 1, Dt: 1}
	regions := SplitAlongX(props, 3)
	if len(regions) != 3 {
		t.Fatalf("got %d regions, want 3", len(regions))
	}

	owner := make(map[int]int)
	for _, r := range regions {
		for i := r.IMin; i < r.IMax; i++ {
			if prev, ok := owner[i]; ok {
				t.Fatalf("x-index %d claimed by both rank %d and rank %d", i, prev, r.Rank)
			}
			owner[i] = r.Rank
		}
	}
	for i := 0; i < props.Nx; i++ {
		if _, ok := owner[i]; !ok {
			t.Errorf("x-index %d not covered by any region", i)
		}
	}
}

func TestSplitAlongXNeighborsWrapPeriodically(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 9, Ny: 1, Nz: 1, Dx: 1, Dy: 1, Dz: 1, Dt: 1}
	regions := SplitAlongX(props, 3)

	first, last := regions[0], regions[len(regions)-1]
	if first.Neighbors[[3]int{-1, 0, 0}] != last.Rank {
		t.Errorf("rank 0's -x neighbor = %d, want last rank %d", first.Neighbors[[3]int{-1, 0, 0}], last.Rank)
	}
	if last.Neighbors[[3]int{1, 0, 0}] != first.Rank {
		t.Errorf("last rank's +x neighbor = %d, want rank 0", last.Neighbors[[3]int{1, 0, 0}])
	}
}

func TestSplitAlongXZeroOrNegativeDefaultsToOneRegion(t *testing.T) {
	props := pic3d.UniverseProperties{Nx: 4, Ny: 1, Nz: 1, Dx: 1, Dy: 1, Dz: 1, Dt: 1}
	regions := SplitAlongX(props, 0)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].IMin != 0 || regions[0].IMax != 4 {
		t.Errorf("single region = [%d,%d), want [0,4)", regions[0].IMin, regions[0].IMax)
	}
}
