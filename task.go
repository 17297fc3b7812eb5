package chisel

import "sync"

// DEFAULT_WORKERS is the worker count used when a caller leaves it unset.
const DEFAULT_WORKERS = 1

// Task splits data into contiguous chunks and runs fn over them on
// workersCount goroutines, blocking until every element has been handled.
func Task[T any](workersCount int, data []T, fn func(data T)) {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

// TaskCollect is Task with one result per element, kept in input order.
// Each worker writes only its own chunk of the result slice, so no
// synchronization beyond the final wait is needed.
func TaskCollect[T, R any](workersCount int, data []T, fn func(data T) R) []R {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	results := make([]R, len(data))
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
	return results
}
