package codelet

import (
	"runtime"
	"sync"
)

func effectiveWorkers(workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// parallelFor splits [0, tasks) into contiguous chunks and runs fn once
// per chunk, across at most workers goroutines, waiting for all chunks to
// finish. With one worker or one task it runs fn inline.
func parallelFor(workers, tasks int, fn func(start, end int)) {
	if tasks <= 0 {
		return
	}
	if workers <= 1 || tasks == 1 {
		fn(0, tasks)
		return
	}

	chunk := (tasks + workers - 1) / workers
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= tasks {
			break
		}
		end := start + chunk
		if end > tasks {
			end = tasks
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}

	wg.Wait()
}
