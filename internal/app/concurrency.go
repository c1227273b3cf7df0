package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel2 executes two functions concurrently and returns both results
// or the first error. Both goroutines are canceled when either function
// returns an error.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		result1 T1
		result2 T2
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := fn1(ctx)
		if err != nil {
			return err
		}
		result1 = r
		return nil
	})

	g.Go(func() error {
		r, err := fn2(ctx)
		if err != nil {
			return err
		}
		result2 = r
		return nil
	})

	if err := g.Wait(); err != nil {
		var zero1 T1
		var zero2 T2
		return zero1, zero2, fmt.Errorf("parallel execution failed: %w", err)
	}

	return result1, result2, nil
}
