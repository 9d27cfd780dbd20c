package sitegen

import "runtime"

// Worker count bounds for parallel page generation.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// ResolveWorkers returns the number of pages to convert in parallel.
// An explicit positive value wins; otherwise GOMAXPROCS is used (set by
// automaxprocs in containers), clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
