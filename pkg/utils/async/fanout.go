package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Map calls fn for every item on at most workers goroutines and returns the
// results in input order. The first error cancels the context passed to the
// remaining calls. A panic in fn is recovered and returned as an error.
func Map[T, R any](ctx context.Context, items []T, workers int, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}
	if workers < 1 {
		workers = 1
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, item := range items {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					ctxlog.From(egCtx).Error("Panic in async worker",
						"recover", r,
						"stack", string(debug.Stack()),
					)
					err = goerr.New("panic in async worker", goerr.V("recover", r), goerr.V("index", i))
				}
			}()

			if err := egCtx.Err(); err != nil {
				return goerr.Wrap(err, "async worker cancelled", goerr.V("index", i))
			}

			result, err := fn(egCtx, item)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
