// Package parallel builds counters from concurrently-produced
// elements. The element extraction runs across multiple goroutines;
// the results are gathered into an index-ordered slice and then fed,
// single-threaded, into the counter's update path. Counting is
// commutative, so the final counts do not depend on how the workers
// were interleaved.
package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"go.lepak.sg/multiset/counter"
)

// Count extracts one element from each item of list using f, with at
// most inflight extractions running concurrently, then counts the
// extracted elements. f receives the item's index and the item.
//
// Context cancellation: if the context is canceled, Count will
// immediately stop extracting from new items, wait for workers
// running to exit, then return the context error.
func Count[S ~[]T, T any, E comparable](
	ctx context.Context, list S, f func(int, T) E, inflight int,
) (counter.Counter[E, int], error) {
	elements := make([]E, len(list))

	sema := semaphore.NewWeighted(int64(inflight))

	var err error
	for i, v := range list {
		err = sema.Acquire(ctx, 1)
		if err != nil {
			// ctx was canceled
			break
		}

		go func(i int, v T) {
			defer sema.Release(1)
			elements[i] = f(i, v)
		}(i, v)
	}

	if err == nil {
		// possible that the context is canceled after we started the last worker
		// but before we acquired the entire semaphore
		err = sema.Acquire(ctx, int64(inflight))
		if err != nil {
			for sema.Acquire(ctx, int64(inflight)) != nil {
			}
		}
	} else {
		// context is already canceled, this will eventually acquire
		for sema.Acquire(ctx, int64(inflight)) != nil {
		}
	}

	if err != nil {
		return nil, err
	}

	return counter.Init(elements), nil
}

// CountPool is like Count, but runs the extractions on a fixed-size
// pool of workers instead of capping in-flight goroutines with a
// semaphore.
//
// Context cancellation: if the context is canceled, CountPool will
// immediately stop extracting from new items, wait for workers
// running to exit, then return the context error.
func CountPool[S ~[]T, T any, E comparable](
	ctx context.Context, list S, f func(int, T) E, workers int,
) (counter.Counter[E, int], error) {
	elements := make([]E, len(list))
	indices := make(chan int, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-indices:
					if !ok {
						return
					}
					elements[j] = f(j, list[j])
				}
			}
		}()
	}

	var err error
producer:
	for i := range list {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break producer
		case indices <- i:
		}
	}
	close(indices)

	wg.Wait()

	if err != nil {
		return nil, err
	}

	return counter.Init(elements), nil
}
