package pic3d

import (
	"runtime"
	"sync"
)

// forEachCell runs fn(n) for every cell index n in [0,total) using
// runtime.GOMAXPROCS(0) worker goroutines striding over the index space,
// and blocks until all of them finish. It is the one concurrency
// primitive the per-cycle phases are built on: a fixed worker pool plus
// one sync.WaitGroup barrier per phase, never a goroutine per cell.
func forEachCell(total int, fn func(n int)) {
	if total == 0 {
		return
	}
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > total {
		nprocs = total
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			defer wg.Done()
			for n := p; n < total; n += nprocs {
				fn(n)
			}
		}(p)
	}
	wg.Wait()
}
