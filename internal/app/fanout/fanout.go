// Package fanout runs one function over a slice of items with bounded
// concurrency. The board uses it to push a snapshot to every configured
// mirror endpoint at once without opening an unbounded number of requests.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result is the outcome for a single item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item using at most maxWorkers goroutines at a time
// and returns the results in input order. A maxWorkers below 1 is treated
// as 1.
//
// Items still waiting for a worker when ctx is canceled record ctx.Err()
// without calling fn. Calls already running are left to observe ctx
// themselves. Run returns once every item has a result; for no items it
// returns an empty, non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		}()
	}

	wg.Wait()
	return results
}

// Errors joins the failures in results, each prefixed with its item index.
// It returns nil when every item succeeded.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, r.Err))
		}
	}
	return errors.Join(errs...)
}

// Failed counts the results that carry an error.
func Failed[R any](results []Result[R]) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
