// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"fmt"
	"sync"
)

type task[T any] struct {
	idx  int
	item T
}

// Map runs fn over items with workerCount workers and returns the results in
// the order of items. The first error cancels the remaining work and is
// returned wrapped with the index of the failing item.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	tasks := make(chan task[T], workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-tasks:
					if !ok {
						return
					}
					res, err := fn(ctx, t.item)
					if err != nil {
						select {
						case errs <- fmt.Errorf("item %d: %w", t.idx, err):
						default:
						}
						cancel()
						return
					}
					// each index is written by exactly one worker
					results[t.idx] = res
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for idx, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- task[T]{idx: idx, item: item}:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
