package batch

import (
	"fmt"
	"sync"

	"github.com/rzyyz/graphwork"
)

// Executor runs independent queries against a shared graphwork.Graph on a
// fixed-size worker pool. It holds no reference to any Graph between calls.
type Executor struct {
	numThread int
}

// NewExecutor returns an Executor with the given worker count. A count
// below 1 is treated as 1.
func NewExecutor(numThread int) *Executor {
	if numThread < 1 {
		numThread = 1
	}
	return &Executor{numThread: numThread}
}

// runOrdered runs task(0..n-1) across e.numThread workers and returns their
// results in input order regardless of completion order. The first error
// or recovered panic cancels outstanding dispatch and is returned; tasks
// already in flight finish their current step before the pool exits.
func runOrdered[T any](numThread, n int, task func(i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	if n == 0 {
		return results, nil
	}

	if numThread <= 1 {
		for i := 0; i < n; i++ {
			res, err := runGuarded(task, i)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	workers := numThread
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	done := make(chan struct{})
	errCh := make(chan error, 1)
	var once sync.Once
	reportErr := func(err error) {
		once.Do(func() {
			errCh <- err
			close(done)
		})
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					res, err := runGuarded(task, i)
					if err != nil {
						reportErr(err)
						return
					}
					results[i] = res
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case jobs <- i:
		case <-done:
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
		return results, nil
	}
}

// runGuarded recovers a task panic into graphwork.ErrInternal so a single
// misbehaving query cannot take down the whole batch silently.
func runGuarded[T any](task func(i int) (T, error), i int) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: task %d panicked: %v", graphwork.ErrInternal, i, r)
		}
	}()
	return task(i)
}

// MultiSingleSourceCost runs one single-source cost query per entry of
// sources, in input order.
func (e *Executor) MultiSingleSourceCost(g *graphwork.Graph, sources []graphwork.NodeID, opts graphwork.SearchOptions) ([]map[graphwork.NodeID]float64, error) {
	return runOrdered(e.numThread, len(sources), func(i int) (map[graphwork.NodeID]float64, error) {
		return g.SingleSourceCost(sources[i], opts)
	})
}

// MultiSingleSourcePath runs one single-source path query per entry of
// sources, in input order.
func (e *Executor) MultiSingleSourcePath(g *graphwork.Graph, sources []graphwork.NodeID, opts graphwork.SearchOptions) ([]map[graphwork.NodeID][]graphwork.NodeID, error) {
	return runOrdered(e.numThread, len(sources), func(i int) (map[graphwork.NodeID][]graphwork.NodeID, error) {
		return g.SingleSourcePath(sources[i], opts)
	})
}

// MultiSingleSourceAll runs one single-source all-shapes query per entry
// of sources, in input order.
func (e *Executor) MultiSingleSourceAll(g *graphwork.Graph, sources []graphwork.NodeID, opts graphwork.SearchOptions) ([]graphwork.SearchResult, error) {
	return runOrdered(e.numThread, len(sources), func(i int) (graphwork.SearchResult, error) {
		return g.SingleSourceAll(sources[i], opts)
	})
}

// MultiMultiSourceCost runs one multi-source cost query per entry of
// sourceSets, in input order.
func (e *Executor) MultiMultiSourceCost(g *graphwork.Graph, sourceSets [][]graphwork.NodeID, opts graphwork.SearchOptions) ([]map[graphwork.NodeID]float64, error) {
	return runOrdered(e.numThread, len(sourceSets), func(i int) (map[graphwork.NodeID]float64, error) {
		return g.MultiSourceCost(sourceSets[i], opts)
	})
}

// MultiMultiSourcePath runs one multi-source path query per entry of
// sourceSets, in input order.
func (e *Executor) MultiMultiSourcePath(g *graphwork.Graph, sourceSets [][]graphwork.NodeID, opts graphwork.SearchOptions) ([]map[graphwork.NodeID][]graphwork.NodeID, error) {
	return runOrdered(e.numThread, len(sourceSets), func(i int) (map[graphwork.NodeID][]graphwork.NodeID, error) {
		return g.MultiSourcePath(sourceSets[i], opts)
	})
}

// MultiMultiSourceAll runs one multi-source all-shapes query per entry of
// sourceSets, in input order.
func (e *Executor) MultiMultiSourceAll(g *graphwork.Graph, sourceSets [][]graphwork.NodeID, opts graphwork.SearchOptions) ([]graphwork.SearchResult, error) {
	return runOrdered(e.numThread, len(sourceSets), func(i int) (graphwork.SearchResult, error) {
		return g.MultiSourceAll(sourceSets[i], opts)
	})
}
